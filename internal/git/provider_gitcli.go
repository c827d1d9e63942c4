package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"
)

// CLIProvider is a LogProvider backed by the git binary instead of go-git.
// Useful on repositories where subprocess git is faster, and as a
// cross-check against the in-process reader.
type CLIProvider struct {
	RepoPath string
}

// NewCLIProvider creates a provider running git against the given repository.
func NewCLIProvider(repoPath string) *CLIProvider {
	return &CLIProvider{RepoPath: repoPath}
}

// ListCommits shells out to git log. Each record is prefixed by 0x1e (record
// separator) with NUL-separated fields, which keeps the output reliably
// parseable regardless of subject content.
func (p *CLIProvider) ListCommits(ctx context.Context, branch string, start, end time.Time, author string) ([]Commit, error) {
	const format = "%x1e%H%x00%cI%x00%an%x00%ae%x00%s%n"

	args := []string{
		"-C", p.RepoPath,
		"log",
		"--no-color",
		"--pretty=format:" + format,
		fmt.Sprintf("--since=@%d", start.Unix()),
		fmt.Sprintf("--until=@%d", end.Unix()),
	}

	if author != "" {
		// git interprets --author as a regex; quoting keeps the provider
		// contract at plain substring matching.
		args = append(args, "--author="+regexp.QuoteMeta(author))
	}

	rev := strings.TrimSpace(branch)
	if rev != "" && !strings.EqualFold(rev, "HEAD") {
		args = append(args, rev)
	}
	args = append(args, "--")

	out, err := exec.CommandContext(ctx, "git", args...).Output()
	if err != nil {
		return nil, fmt.Errorf("git log failed: %w", err)
	}

	return parseCommitRecords(out)
}

func parseCommitRecords(out []byte) ([]Commit, error) {
	records := bytes.Split(out, []byte{0x1e})

	var commits []Commit
	for _, rec := range records {
		rec = bytes.TrimSpace(rec)
		if len(rec) == 0 {
			continue
		}

		fields := bytes.SplitN(rec, []byte{0x00}, 5)
		if len(fields) < 5 {
			return nil, fmt.Errorf("unexpected git log record format")
		}

		when, err := time.Parse(time.RFC3339, string(fields[1]))
		if err != nil {
			return nil, fmt.Errorf("parse committer date: %w", err)
		}

		sha := string(fields[0])
		commits = append(commits, Commit{
			SHA:      sha,
			ShortSHA: ShortSHA(sha),
			Message:  strings.TrimRight(string(fields[4]), "\n"),
			Author:   string(fields[2]),
			Email:    string(fields[3]),
			When:     when,
		})
	}

	return commits, nil
}
