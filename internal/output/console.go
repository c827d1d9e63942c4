package output

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
)

// ConsoleWriter writes activity reports to the console.
type ConsoleWriter struct{}

// Write outputs the activity report to the console.
func (w *ConsoleWriter) Write(report *ActivityReport, options OutputOptions) error {
	color.Green("Branch Activity Report")
	fmt.Printf("Repository: %s\n", report.RepoPath)
	fmt.Printf("Period: %s\n", report.Range)
	if report.Author != "" {
		fmt.Printf("Author: %s\n", report.Author)
	}
	fmt.Printf("Total commits: %d across %d branches\n\n", report.TotalCommits(), len(report.Commits))

	if len(report.Commits) == 0 {
		fmt.Println("No commits found in the specified range.")
		return nil
	}

	branchTitle := color.New(color.FgGreen).Add(color.Underline)

	for _, branch := range report.Branches() {
		commits := limitTop(report.Commits[branch], options.Top)

		branchTitle.Printf("%s (%d commits)\n", branch, len(report.Commits[branch]))

		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, c := range commits {
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n",
				c.ShortSHA, c.When.Format(reportDateTimeLayout), c.Author, c.Message)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Println()
	}

	return nil
}
