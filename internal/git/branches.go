package git

import "github.com/bmatcuk/doublestar/v4"

// FilterBranches applies include/exclude glob patterns to branch names.
// Exclude patterns win over include patterns; an empty include list accepts
// every name. Patterns use doublestar syntax so "feature/**" matches nested
// branch names.
func FilterBranches(names, include, exclude []string) []string {
	filtered := make([]string, 0, len(names))
	for _, name := range names {
		if matchesBranchFilters(name, include, exclude) {
			filtered = append(filtered, name)
		}
	}
	return filtered
}

func matchesBranchFilters(name string, include, exclude []string) bool {
	for _, pattern := range exclude {
		if matched, _ := doublestar.Match(pattern, name); matched {
			return false
		}
	}

	if len(include) == 0 {
		return true
	}

	for _, pattern := range include {
		if matched, _ := doublestar.Match(pattern, name); matched {
			return true
		}
	}

	return false
}
