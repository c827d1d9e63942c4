package git

import (
	"context"
	"time"
)

// Clock provides the current instant in the local time zone.
// It exists so period resolution can be tested against fixed instants.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by the wall clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// BranchLister enumerates the branch names of a repository. Names are
// deduplicated with remote-tracking prefixes stripped; failures yield an
// empty sequence rather than an error.
type BranchLister interface {
	ListBranches(ctx context.Context) []string
}

// LogProvider lists the commits reachable from a branch whose committer
// timestamp falls within [start, end], most recent first. The author filter
// is applied by the provider; an empty filter matches all commits.
type LogProvider interface {
	ListCommits(ctx context.Context, branch string, start, end time.Time, author string) ([]Commit, error)
}

// Compile-time interface conformance checks.
var (
	_ Clock = SystemClock{}

	_ BranchLister = (*RepoReader)(nil)

	_ LogProvider = (*RepoReader)(nil)
	_ LogProvider = (*CLIProvider)(nil)
	_ LogProvider = (*MockProvider)(nil)
)
