package aggregation

import (
	"context"
	"sort"

	"github.com/masmgr/git-report/internal/daterange"
	"github.com/masmgr/git-report/internal/git"
)

// BranchCommits maps a branch name to its unique commits within a window,
// most recent first as returned by the log provider.
type BranchCommits map[string][]git.Commit

// TotalCommits returns the number of commits across all branches. Because
// deduplication is global, this equals the number of distinct commit
// identities seen in the window.
func (m BranchCommits) TotalCommits() int {
	total := 0
	for _, commits := range m {
		total += len(commits)
	}
	return total
}

// Branches returns the branch names present in the mapping, sorted
// lexicographically for stable presentation.
func (m BranchCommits) Branches() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Aggregator reduces per-branch commit logs to a branch-to-unique-commits
// mapping, deduplicated globally by full SHA.
type Aggregator struct {
	provider git.LogProvider
}

// NewAggregator creates an aggregator over the given log provider.
func NewAggregator(provider git.LogProvider) *Aggregator {
	return &Aggregator{provider: provider}
}

// Aggregate walks the branches in order and collects each branch's commits
// within the range, dropping any commit already attributed to an earlier
// branch. A commit reachable from several branches therefore belongs to the
// first visited branch that contains it (first seen wins). Branches that
// contribute no unique commits are omitted from the result, and a provider
// failure for one branch is treated as an empty result for that branch
// without aborting the rest.
//
// The seen-identity set is local to the call, so an Aggregator is safely
// reusable across invocations.
func (a *Aggregator) Aggregate(ctx context.Context, branches []string, rng daterange.Range, author string) BranchCommits {
	seen := make(map[string]struct{})
	result := make(BranchCommits)

	for _, branch := range dedupeBranches(branches) {
		commits, err := a.provider.ListCommits(ctx, branch, rng.Start, rng.End, author)
		if err != nil {
			continue
		}

		unique := make([]git.Commit, 0, len(commits))
		for _, c := range commits {
			if _, ok := seen[c.SHA]; ok {
				continue
			}
			seen[c.SHA] = struct{}{}
			unique = append(unique, c)
		}

		if len(unique) == 0 {
			continue
		}
		result[branch] = unique
	}

	return result
}

// dedupeBranches collapses duplicate branch names, keeping the position of
// the first occurrence. A remote-tracking branch and a local branch sharing
// a short name arrive here as the same value.
func dedupeBranches(branches []string) []string {
	seen := make(map[string]struct{}, len(branches))
	deduped := make([]string, 0, len(branches))
	for _, name := range branches {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		deduped = append(deduped, name)
	}
	return deduped
}
