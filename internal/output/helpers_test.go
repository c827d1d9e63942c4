package output

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/masmgr/git-report/internal/aggregation"
	"github.com/masmgr/git-report/internal/daterange"
	"github.com/masmgr/git-report/internal/git"
)

func sampleReport() *ActivityReport {
	when := time.Date(2026, time.August, 24, 10, 30, 0, 0, time.UTC)
	return &ActivityReport{
		RepoPath: "/repos/demo",
		Range: daterange.Range{
			Start: time.Date(2026, time.August, 23, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2026, time.August, 29, 23, 59, 59, 0, time.UTC),
		},
		Author:      "",
		GeneratedAt: time.Date(2026, time.August, 31, 9, 0, 0, 0, time.UTC),
		Commits: aggregation.BranchCommits{
			"main": {
				git.Commit{
					SHA:      "0123456789abcdef0123456789abcdef01234567",
					ShortSHA: "0123456",
					Message:  "fix parser | edge case",
					Author:   "Alice",
					When:     when,
				},
			},
			"feature/login": {
				git.Commit{
					SHA:      "89abcdef0123456789abcdef0123456789abcdef",
					ShortSHA: "89abcde",
					Message:  "add login form",
					Author:   "Bob",
					When:     when.Add(-time.Hour),
				},
				git.Commit{
					SHA:      "fedcba9876543210fedcba9876543210fedcba98",
					ShortSHA: "fedcba9",
					Message:  "wire session store",
					Author:   "Bob",
					When:     when.Add(-2 * time.Hour),
				},
			},
		},
	}
}

// writeToFile runs the writer with a temp file output path and returns the
// file contents.
func writeToFile(t *testing.T, w ReportWriter, report *ActivityReport, opts OutputOptions) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "report.out")
	opts.OutputPath = path
	if err := w.Write(report, opts); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	return string(data)
}
