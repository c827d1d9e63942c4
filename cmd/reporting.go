package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/masmgr/git-report/internal/output"
)

func writeActivityReport(c *cli.Context, ctx *CommandContext, report *output.ActivityReport) error {
	opts := OutputOptions(c, ctx.Config)
	writer := output.NewReportWriter(opts.Format)
	return writer.Write(report, opts)
}
