package git

import (
	"strings"
	"time"
)

// Commit represents minimal information about a Git commit.
type Commit struct {
	SHA      string
	ShortSHA string
	Message  string
	Author   string
	Email    string
	When     time.Time
}

// shortSHALength is the display truncation applied to full SHAs. The short
// form carries no uniqueness guarantee; the full SHA is the identity.
const shortSHALength = 7

// ShortSHA truncates a full SHA for display.
func ShortSHA(sha string) string {
	if len(sha) <= shortSHALength {
		return sha
	}
	return sha[:shortSHALength]
}

// firstLine extracts the subject line of a commit message.
func firstLine(message string) string {
	if idx := strings.IndexAny(message, "\r\n"); idx != -1 {
		return message[:idx]
	}
	return message
}

// matchesAuthor reports whether a commit signature matches the author filter.
// An empty filter matches everything; otherwise a substring match against the
// author name or email, consistent with git log --author.
func matchesAuthor(name, email, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(name, filter) || strings.Contains(email, filter)
}
