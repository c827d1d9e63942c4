package git

import (
	"context"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// RepoReader reads branch and commit information from a Git repository
// through go-git. It implements both BranchLister and LogProvider.
type RepoReader struct {
	repo *gogit.Repository
	path string
}

// NewRepoReader opens the repository at the given path.
func NewRepoReader(path string) (*RepoReader, error) {
	repo, err := gogit.PlainOpen(path)
	if err != nil {
		return nil, err
	}
	return &RepoReader{repo: repo, path: path}, nil
}

// ListBranches returns the deduplicated short names of all local and
// remote-tracking branches. The remote name prefix is stripped, so
// "origin/main" and a local "main" collapse to a single entry. Enumeration
// failures yield an empty list.
func (r *RepoReader) ListBranches(_ context.Context) []string {
	var names []string
	seen := make(map[string]struct{})

	add := func(name string) {
		if name == "" || name == "HEAD" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	branches, err := r.repo.Branches()
	if err != nil {
		return nil
	}
	_ = branches.ForEach(func(ref *plumbing.Reference) error {
		add(ref.Name().Short())
		return nil
	})

	refs, err := r.repo.References()
	if err != nil {
		return names
	}
	_ = refs.ForEach(func(ref *plumbing.Reference) error {
		if !ref.Name().IsRemote() {
			return nil
		}
		add(stripRemotePrefix(ref.Name().Short()))
		return nil
	})

	return names
}

// stripRemotePrefix drops the leading remote name from a remote-tracking
// short name, e.g. "origin/feature/login" -> "feature/login".
func stripRemotePrefix(short string) string {
	if idx := strings.IndexByte(short, '/'); idx >= 0 {
		return short[idx+1:]
	}
	return short
}

// ListCommits returns the commits reachable from branch whose committer
// timestamp falls within [start, end], most recent first. The branch name is
// resolved against local refs first, then remote-tracking refs.
func (r *RepoReader) ListCommits(ctx context.Context, branch string, start, end time.Time, author string) ([]Commit, error) {
	hash, err := r.resolveBranch(branch)
	if err != nil {
		return nil, err
	}

	iter, err := r.repo.Log(&gogit.LogOptions{From: hash, Since: &start, Until: &end})
	if err != nil {
		return nil, err
	}

	var commits []Commit
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !matchesAuthor(c.Author.Name, c.Author.Email, author) {
			return nil
		}
		sha := c.Hash.String()
		commits = append(commits, Commit{
			SHA:      sha,
			ShortSHA: ShortSHA(sha),
			Message:  firstLine(c.Message),
			Author:   c.Author.Name,
			Email:    c.Author.Email,
			When:     c.Committer.When,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return commits, nil
}

func (r *RepoReader) resolveBranch(branch string) (plumbing.Hash, error) {
	rev := strings.TrimSpace(branch)
	if rev == "" || strings.EqualFold(rev, "HEAD") {
		head, err := r.repo.Head()
		if err != nil {
			return plumbing.ZeroHash, err
		}
		return head.Hash(), nil
	}

	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err == nil {
		return *hash, nil
	}

	// Branch may only exist as a remote-tracking ref after the prefix strip
	// performed by ListBranches.
	hash, remoteErr := r.repo.ResolveRevision(plumbing.Revision("origin/" + rev))
	if remoteErr != nil {
		return plumbing.ZeroHash, err
	}
	return *hash, nil
}
