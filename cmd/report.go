package cmd

import (
	"time"

	"github.com/masmgr/git-report/internal/git"
	"github.com/masmgr/git-report/internal/output"
	"github.com/urfave/cli/v2"
)

// ReportCmd returns the report command.
func ReportCmd() *cli.Command {
	return &cli.Command{
		Name:    "report",
		Aliases: []string{"r"},
		Usage:   "Generate a per-branch commit activity report for a time window",
		Flags:   commonFlags(),
		Action:  reportAction,
	}
}

func reportAction(c *cli.Context) error {
	return runReport(c, "")
}

func runReport(c *cli.Context, repoPath string) error {
	ctx, err := NewCommandContext(c, repoPath, git.SystemClock{})
	if err != nil {
		return err
	}

	report := &output.ActivityReport{
		RepoPath:    ctx.RepoPath,
		Range:       ctx.Range,
		Author:      ctx.Author,
		GeneratedAt: time.Now(),
		Commits:     ctx.Aggregate(c),
	}

	return writeActivityReport(c, ctx, report)
}
