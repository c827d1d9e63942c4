package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/masmgr/git-report/internal/git"
	"github.com/urfave/cli/v2"
)

// BranchesCmd returns the branches command, which lists the branches the
// report command would scan after deduplication and glob filtering.
func BranchesCmd() *cli.Command {
	return &cli.Command{
		Name:    "branches",
		Aliases: []string{"b"},
		Usage:   "List the branches a report would cover",
		Flags:   commonFlags(),
		Action:  branchesAction,
	}
}

func branchesAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c, "", git.SystemClock{})
	if err != nil {
		return err
	}

	color.Green("Branches in %s (%d):", ctx.RepoPath, len(ctx.Branches))
	for _, branch := range ctx.Branches {
		fmt.Printf("  %s\n", branch)
	}
	return nil
}
