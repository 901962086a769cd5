package pathenv

import "strings"

// Normalize returns the canonical comparison key for a path-like entry:
// surrounding whitespace trimmed, one layer of double quotes stripped, a
// single trailing path separator removed, and the result case-folded.
// Two entries are considered the same iff their normalized keys are
// equal. Empty input normalizes to the empty string.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = stripQuotes(s)
	if n := len(s); n > 1 && (s[n-1] == '\\' || s[n-1] == '/') {
		s = s[:n-1]
	}
	return strings.ToLower(s)
}

// stripQuotes removes one layer of surrounding double quotes.
func stripQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
