package output

import (
	"encoding/json"
	"time"
)

// JSONWriter writes activity reports as JSON.
type JSONWriter struct{}

// JSONReport is the JSON output structure for an activity report.
type JSONReport struct {
	RepoPath     string       `json:"repo"`
	From         string       `json:"from"`
	To           string       `json:"to"`
	Author       string       `json:"author,omitempty"`
	GeneratedAt  string       `json:"generatedAt"`
	TotalCommits int          `json:"totalCommits"`
	Branches     []JSONBranch `json:"branches"`
}

// JSONBranch is the JSON output structure for a single branch.
type JSONBranch struct {
	Name    string       `json:"name"`
	Commits []JSONCommit `json:"commits"`
}

// JSONCommit is the JSON output structure for a single commit.
type JSONCommit struct {
	SHA      string `json:"sha"`
	ShortSHA string `json:"shortSha"`
	When     string `json:"when"`
	Author   string `json:"author"`
	Message  string `json:"message"`
}

// Write outputs the activity report as JSON.
func (w *JSONWriter) Write(report *ActivityReport, options OutputOptions) error {
	branches := make([]JSONBranch, 0, len(report.Commits))
	for _, branch := range report.Branches() {
		commits := limitTop(report.Commits[branch], options.Top)

		jsonCommits := make([]JSONCommit, len(commits))
		for i, c := range commits {
			jsonCommits[i] = JSONCommit{
				SHA:      c.SHA,
				ShortSHA: c.ShortSHA,
				When:     c.When.Format(time.RFC3339),
				Author:   c.Author,
				Message:  c.Message,
			}
		}
		branches = append(branches, JSONBranch{Name: branch, Commits: jsonCommits})
	}

	jsonReport := JSONReport{
		RepoPath:     report.RepoPath,
		From:         report.Range.Start.Format(reportDateLayout),
		To:           report.Range.End.Format(reportDateLayout),
		Author:       report.Author,
		GeneratedAt:  report.GeneratedAt.Format(time.RFC3339),
		TotalCommits: report.TotalCommits(),
		Branches:     branches,
	}

	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport)
}
