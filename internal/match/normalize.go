package match

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	// Characters outside the comparison alphabet become spaces so they
	// act as word separators rather than gluing tokens together.
	disallowedChars = regexp.MustCompile(`[^a-z0-9äöü .\-/]`)
)

// Normalize canonicalizes free text for comparison: lower-case, single
// spaces, ß expanded to ss, everything outside the allow-list stripped.
// The same normalization must be applied to both sides of a comparison.
// Normalize is idempotent.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = whitespaceRun.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "ß", "ss")
	s = disallowedChars.ReplaceAllString(s, " ")
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
