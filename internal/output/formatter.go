package output

import (
	"time"

	"github.com/masmgr/git-report/internal/aggregation"
	"github.com/masmgr/git-report/internal/daterange"
)

// Compile-time interface conformance checks.
var (
	_ ReportWriter = (*ConsoleWriter)(nil)
	_ ReportWriter = (*JSONWriter)(nil)
	_ ReportWriter = (*CSVWriter)(nil)
	_ ReportWriter = (*MarkdownWriter)(nil)
	_ ReportWriter = (*CIWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole  OutputFormat = "console"
	FormatJSON     OutputFormat = "json"
	FormatCSV      OutputFormat = "csv"
	FormatMarkdown OutputFormat = "markdown"
	FormatCI       OutputFormat = "ci"
)

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	Top        int // cap on commits shown per branch, 0 = unlimited
	OutputPath string
}

// ActivityReport holds the results of a branch activity aggregation.
type ActivityReport struct {
	RepoPath    string
	Range       daterange.Range
	Author      string
	GeneratedAt time.Time
	Commits     aggregation.BranchCommits
}

// Branches returns the report's branch names in lexicographic order. The
// aggregator itself guarantees no ordering; presentation order is decided
// here.
func (r *ActivityReport) Branches() []string {
	return r.Commits.Branches()
}

// TotalCommits returns the number of unique commits across all branches.
func (r *ActivityReport) TotalCommits() int {
	return r.Commits.TotalCommits()
}

// ReportWriter writes activity reports.
type ReportWriter interface {
	Write(report *ActivityReport, options OutputOptions) error
}

// NewReportWriter creates a report writer for the specified format.
func NewReportWriter(format OutputFormat) ReportWriter {
	switch format {
	case FormatJSON:
		return &JSONWriter{}
	case FormatCSV:
		return &CSVWriter{}
	case FormatMarkdown:
		return &MarkdownWriter{}
	case FormatCI:
		return &CIWriter{}
	default:
		return &ConsoleWriter{}
	}
}
