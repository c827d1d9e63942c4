package output

import (
	"encoding/json"
	"time"
)

// CIWriter writes activity reports as newline-delimited JSON, one record per
// commit, for machine consumption in CI pipelines.
type CIWriter struct{}

// CIRecord is a single NDJSON record.
type CIRecord struct {
	Branch  string `json:"branch"`
	SHA     string `json:"sha"`
	When    string `json:"when"`
	Author  string `json:"author"`
	Message string `json:"message"`
}

// Write outputs the activity report as NDJSON.
func (w *CIWriter) Write(report *ActivityReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	enc := json.NewEncoder(out)
	for _, branch := range report.Branches() {
		for _, c := range limitTop(report.Commits[branch], options.Top) {
			record := CIRecord{
				Branch:  branch,
				SHA:     c.SHA,
				When:    c.When.Format(time.RFC3339),
				Author:  c.Author,
				Message: c.Message,
			}
			if err := enc.Encode(record); err != nil {
				return err
			}
		}
	}

	return nil
}
