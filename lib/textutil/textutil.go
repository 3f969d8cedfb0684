package textutil

import (
	"regexp"
	"strings"
)

var footnoteSuffix = regexp.MustCompile(`\s*\d+$`)

// StripFootnote removes a trailing whitespace-plus-digits footnote
// marker, e.g. "Equalization 12" -> "Equalization".
func StripFootnote(s string) string {
	s = footnoteSuffix.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// Fold produces a case-insensitive comparison key for a label.
func Fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func MatchName(name string, matchers []string) bool {
	name = Fold(name)
	for _, m := range matchers {
		if Fold(m) == name {
			return true
		}
	}
	return false
}
