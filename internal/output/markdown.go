package output

import (
	"fmt"
	"strings"
)

// MarkdownWriter writes activity reports as Markdown.
type MarkdownWriter struct{}

// Write outputs the activity report as Markdown.
func (w *MarkdownWriter) Write(report *ActivityReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	// Header
	fmt.Fprintln(out, "# Branch Activity Report")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "**Repository:** %s\n\n", report.RepoPath)
	fmt.Fprintf(out, "**Period:** %s to %s\n\n",
		report.Range.Start.Format(reportDateLayout), report.Range.End.Format(reportDateLayout))
	if report.Author != "" {
		fmt.Fprintf(out, "**Author:** %s\n\n", report.Author)
	}
	fmt.Fprintf(out, "**Total Commits:** %d across %d branches\n\n", report.TotalCommits(), len(report.Commits))

	if len(report.Commits) == 0 {
		fmt.Fprintln(out, "No commits found in the specified range.")
		return nil
	}

	for _, branch := range report.Branches() {
		commits := limitTop(report.Commits[branch], options.Top)

		fmt.Fprintf(out, "## %s (%d commits)\n", escapeMarkdown(branch), len(report.Commits[branch]))
		fmt.Fprintln(out)
		fmt.Fprintln(out, "| SHA | Date | Author | Message |")
		fmt.Fprintln(out, "|-----|------|--------|---------|")

		for _, c := range commits {
			fmt.Fprintf(out, "| `%s` | %s | %s | %s |\n",
				c.ShortSHA, c.When.Format(reportDateTimeLayout),
				escapeMarkdown(c.Author), escapeMarkdown(c.Message))
		}
		fmt.Fprintln(out)
	}

	return nil
}

func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer(
		"|", "\\|",
		"*", "\\*",
		"_", "\\_",
		"`", "\\`",
	)
	return replacer.Replace(s)
}
