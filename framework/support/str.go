package support

import (
	"regexp"
	"strings"
)

// Is determines whether value matches a glob-style pattern where * stands
// for any sequence of characters — mirrors Laravel's Str::is.
//
//	support.Is("items.*", "items.2.name")  // true
//	support.Is("email", "email")           // true
//	support.Is("email", "email.work")      // false
func Is(pattern, value string) bool {
	if pattern == value {
		return true
	}
	if !strings.Contains(pattern, "*") {
		return false
	}

	quoted := regexp.QuoteMeta(pattern)
	quoted = strings.ReplaceAll(quoted, `\*`, `.*`)

	matched, err := regexp.MatchString("^"+quoted+"$", value)
	if err != nil {
		return false
	}
	return matched
}

// IsAny reports whether value matches at least one of the given patterns.
func IsAny(patterns []string, value string) bool {
	for _, pattern := range patterns {
		if Is(pattern, value) {
			return true
		}
	}
	return false
}

// BeforeFirstDot returns the portion of path before its first dot,
// or the whole path if it contains none.
//
//	support.BeforeFirstDot("items.2.name")  // "items"
func BeforeFirstDot(path string) string {
	before, _, _ := strings.Cut(path, ".")
	return before
}

// AfterFirstDot returns the portion of path after its first dot,
// or "" if it contains none.
//
//	support.AfterFirstDot("author.email")  // "email"
func AfterFirstDot(path string) string {
	_, after, _ := strings.Cut(path, ".")
	return after
}
