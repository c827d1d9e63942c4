package cmd

import (
	"fmt"
	"os"

	"github.com/masmgr/git-report/config"
	"github.com/masmgr/git-report/internal/output"
	"github.com/urfave/cli/v2"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "git-report",
		Usage:   "Branch activity report generator for Git repositories",
		Version: "1.0.0",
		Commands: []*cli.Command{
			ReportCmd(),
			BranchesCmd(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
		},
		Action: legacyAction,
	}
}

// Common flags shared across commands
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to Git repository",
			Value:   ".",
		},
		&cli.StringFlag{
			Name:    "period",
			Aliases: []string{"p"},
			Usage:   "Period keyword (week, thisweek, month, thismonth, quarter, year, thisyear)",
		},
		&cli.StringFlag{
			Name:  "from",
			Usage: "Explicit range start (YYYY-MM-DD), overrides --period with --to",
		},
		&cli.StringFlag{
			Name:  "to",
			Usage: "Explicit range end (YYYY-MM-DD), overrides --period with --from",
		},
		&cli.StringFlag{
			Name:    "author",
			Aliases: []string{"a"},
			Usage:   "Only include commits whose author matches this substring",
		},
		&cli.StringSliceFlag{
			Name:    "branch",
			Aliases: []string{"b"},
			Usage:   "Branch to include (can be specified multiple times, skips enumeration)",
		},
		&cli.StringSliceFlag{
			Name:  "include-branch",
			Usage: "Glob patterns for branch names to include (can be specified multiple times)",
		},
		&cli.StringSliceFlag{
			Name:  "exclude-branch",
			Usage: "Glob patterns for branch names to exclude (can be specified multiple times)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (console, json, csv, markdown, ci)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: stdout)",
		},
		&cli.IntFlag{
			Name:    "top",
			Aliases: []string{"n"},
			Usage:   "Maximum commits to show per branch (0 = unlimited)",
		},
		&cli.StringFlag{
			Name:  "engine",
			Usage: "Log engine (go-git, cli)",
			Value: "go-git",
		},
	}
}

// getOutputFormat parses the output format flag.
func getOutputFormat(s string) output.OutputFormat {
	switch s {
	case "json":
		return output.FormatJSON
	case "csv":
		return output.FormatCSV
	case "markdown", "md":
		return output.FormatMarkdown
	case "ci", "ndjson":
		return output.FormatCI
	default:
		return output.FormatConsole
	}
}

// loadConfig loads configuration from file or defaults.
func loadConfig(c *cli.Context) (*config.Config, error) {
	configPath := c.String("config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Apply branch filter overrides from CLI
	if includes := c.StringSlice("include-branch"); len(includes) > 0 {
		cfg.Branches.Include = includes
	}
	if excludes := c.StringSlice("exclude-branch"); len(excludes) > 0 {
		cfg.Branches.Exclude = excludes
	}

	return cfg, nil
}

// legacyAction handles the default command behavior. When a repository path
// is provided as an argument, it runs the report command against it with the
// configured defaults.
func legacyAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.ShowAppHelp(c)
	}

	return runReport(c, c.Args().Get(0))
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
