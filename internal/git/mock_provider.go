package git

import (
	"context"
	"time"
)

// MockProvider is a test double for LogProvider. It serves canned per-branch
// commits without needing a real Git repository, applying the same window and
// author semantics a real provider would.
type MockProvider struct {
	Commits map[string][]Commit
	Errs    map[string]error

	// Calls records the branch names queried, in order.
	Calls []string
}

// NewMockProvider creates a MockProvider with the given per-branch commits.
func NewMockProvider(commits map[string][]Commit) *MockProvider {
	return &MockProvider{Commits: commits}
}

// ListCommits returns the canned commits for branch that fall inside
// [start, end] and match the author filter, or the injected error.
func (m *MockProvider) ListCommits(_ context.Context, branch string, start, end time.Time, author string) ([]Commit, error) {
	m.Calls = append(m.Calls, branch)

	if err := m.Errs[branch]; err != nil {
		return nil, err
	}

	var commits []Commit
	for _, c := range m.Commits[branch] {
		if c.When.Before(start) || c.When.After(end) {
			continue
		}
		if !matchesAuthor(c.Author, c.Email, author) {
			continue
		}
		commits = append(commits, c)
	}
	return commits, nil
}
