package cmd

import (
	"fmt"

	"github.com/masmgr/git-report/config"
	"github.com/masmgr/git-report/internal/aggregation"
	"github.com/masmgr/git-report/internal/daterange"
	"github.com/masmgr/git-report/internal/git"
	"github.com/masmgr/git-report/internal/output"
	"github.com/urfave/cli/v2"
)

// CommandContext holds common state for command execution.
// It encapsulates the shared setup logic across commands: configuration
// loading, range resolution, repository opening, and branch selection.
type CommandContext struct {
	Config   *config.Config
	RepoPath string
	Range    daterange.Range
	Author   string
	Branches []string

	reader *git.RepoReader
	engine string
}

// NewCommandContext creates a context from CLI flags. The repoPath argument
// wins over the --repo flag so legacy positional invocation can reuse it.
func NewCommandContext(c *cli.Context, repoPath string, clock git.Clock) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	rng, err := resolveRange(c, cfg, clock)
	if err != nil {
		return nil, err
	}

	if repoPath == "" {
		repoPath = c.String("repo")
	}

	reader, err := git.NewRepoReader(repoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	branches := c.StringSlice("branch")
	if len(branches) == 0 {
		branches = reader.ListBranches(c.Context)
	}
	branches = git.FilterBranches(branches, cfg.Branches.Include, cfg.Branches.Exclude)

	author := c.String("author")
	if author == "" {
		author = cfg.Authors.Filter
	}

	return &CommandContext{
		Config:   cfg,
		RepoPath: repoPath,
		Range:    rng,
		Author:   author,
		Branches: branches,
		reader:   reader,
		engine:   c.String("engine"),
	}, nil
}

// resolveRange maps explicit from/to flags or the period keyword to a
// concrete range. Explicit bounds take priority and must come paired.
func resolveRange(c *cli.Context, cfg *config.Config, clock git.Clock) (daterange.Range, error) {
	from, to := c.String("from"), c.String("to")
	if from != "" || to != "" {
		if from == "" || to == "" {
			return daterange.Range{}, fmt.Errorf("--from and --to must be used together")
		}
		return daterange.ResolveExplicit(from, to)
	}

	period := c.String("period")
	if period == "" {
		period = cfg.Report.DefaultPeriod
	}
	return daterange.Resolve(period, clock.Now()), nil
}

// Provider returns the log provider selected by the --engine flag.
func (ctx *CommandContext) Provider() git.LogProvider {
	if ctx.engine == "cli" {
		return git.NewCLIProvider(ctx.RepoPath)
	}
	return ctx.reader
}

// Aggregate runs the commit aggregation over the selected branches.
func (ctx *CommandContext) Aggregate(c *cli.Context) aggregation.BranchCommits {
	aggregator := aggregation.NewAggregator(ctx.Provider())
	return aggregator.Aggregate(c.Context, ctx.Branches, ctx.Range, ctx.Author)
}

// OutputOptions creates OutputOptions from CLI flags, falling back to the
// configured defaults.
func OutputOptions(c *cli.Context, cfg *config.Config) output.OutputOptions {
	format := c.String("format")
	if format == "" {
		format = cfg.Report.DefaultFormat
	}
	top := c.Int("top")
	if top == 0 {
		top = cfg.Report.MaxCommitsPerBranch
	}
	return output.OutputOptions{
		Format:     getOutputFormat(format),
		Top:        top,
		OutputPath: c.String("output"),
	}
}
