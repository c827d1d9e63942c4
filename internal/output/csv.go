package output

import (
	"encoding/csv"
	"time"
)

// CSVWriter writes activity reports as CSV.
type CSVWriter struct{}

// Write outputs the activity report as CSV, one row per commit.
func (w *CSVWriter) Write(report *ActivityReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	cw := csv.NewWriter(out)
	if err := cw.Write([]string{"branch", "sha", "short_sha", "when", "author", "message"}); err != nil {
		return err
	}

	for _, branch := range report.Branches() {
		for _, c := range limitTop(report.Commits[branch], options.Top) {
			record := []string{
				branch,
				c.SHA,
				c.ShortSHA,
				c.When.Format(time.RFC3339),
				c.Author,
				c.Message,
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
