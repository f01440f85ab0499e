package parser

import (
	"regexp"
	"strings"
)

// Formats with no native element attributes (plain text, PDF, DOCX) carry
// keywords through an inline "[keys: a b c]" marker instead.
var markerPattern = regexp.MustCompile(`\[keys:\s*([^\]]*)\]`)

// extractMarker pulls the first keyword marker out of s, returning the
// keyword string and s with the marker removed. Missing or empty markers
// yield "" — never an error.
func extractMarker(s string) (keys, rest string) {
	m := markerPattern.FindStringSubmatchIndex(s)
	if m == nil {
		return "", s
	}
	keys = strings.TrimSpace(s[m[2]:m[3]])
	rest = strings.TrimSpace(s[:m[0]] + s[m[1]:])
	return keys, rest
}

// leadingMarker applies extractMarker only when the marker is the first
// line of the block, which is how paragraph- and page-level keywords are
// declared.
func leadingMarker(block string) (keys, rest string) {
	first, remainder, found := strings.Cut(block, "\n")
	if !markerPattern.MatchString(first) {
		return "", block
	}
	keys, lead := extractMarker(first)
	if !found {
		return keys, lead
	}
	if lead != "" {
		return keys, lead + "\n" + remainder
	}
	return keys, remainder
}
