package livewire

import (
	"strings"

	"github.com/km-arc/go-livewire/framework/validation"
)

// canonicalizePath replaces every numeric path segment with the wildcard
// token *, so a concretely indexed path resolves to the declared rule key
// that governs it:
//
//	canonicalizePath("items.2.name") // "items.*.name"
//	canonicalizePath("list.3")       // "list.*"
//	canonicalizePath("a.3.4.b")      // "a.*.*.b"
//
// A leading numeric segment is left alone — an index can only follow a
// collection field, never open a path.
func canonicalizePath(path string) string {
	segs := strings.Split(path, ".")
	for i := 1; i < len(segs); i++ {
		if isNumericSegment(segs[i]) {
			segs[i] = "*"
		}
	}
	return strings.Join(segs, ".")
}

func isNumericSegment(seg string) bool {
	if seg == "" {
		return false
	}
	for _, r := range seg {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// HasRuleFor reports whether path is governed by one of the declared rule
// keys.
//
// An indexed path (items.2.name) matches when its canonical form
// (items.*.name) is a literal rule key. A plain path matches when it equals
// a rule key truncated at its first wildcard segment — so a bare collection
// field ("items") counts as ruled when only a wildcarded sub-path rule
// ("items.*.name") exists for it. The truncated match answers "is this field
// validated at all"; it deliberately coalesces multiple wildcard rules with
// the same prefix.
func HasRuleFor(path string, rules validation.Rules) bool {
	canonical := canonicalizePath(path)
	if canonical != path {
		_, ok := rules[canonical]
		return ok
	}

	for key := range rules {
		if beforeFirstWildcard(key) == path {
			return true
		}
	}
	return false
}

// MissingRuleFor is the negation of HasRuleFor.
func MissingRuleFor(path string, rules validation.Rules) bool {
	return !HasRuleFor(path, rules)
}

// beforeFirstWildcard returns the rule key truncated at its first * segment.
func beforeFirstWildcard(key string) string {
	segs := strings.Split(key, ".")
	for i, seg := range segs {
		if seg == "*" {
			return strings.Join(segs[:i], ".")
		}
	}
	return key
}

// ruleKeyMatches reports whether a declared rule key governs one concrete
// path: segment counts must agree and every key segment must equal the path
// segment or be the wildcard *. This is the scoping test for single-field
// validation — the path is concrete, the key may be wildcarded.
func ruleKeyMatches(key, path string) bool {
	if key == path {
		return true
	}

	keySegs := strings.Split(key, ".")
	pathSegs := strings.Split(path, ".")
	if len(keySegs) != len(pathSegs) {
		return false
	}
	for i, seg := range keySegs {
		if seg != "*" && seg != pathSegs[i] {
			return false
		}
	}
	return true
}

// topLevelField returns the pre-dot segment of a rule key.
func topLevelField(key string) string {
	return strings.Split(key, ".")[0]
}
