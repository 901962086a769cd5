package pathenv

import (
	"regexp"
	"strings"
)

// Default syntax for Windows-style path variables.
const (
	DefaultDelimiter = ";"
	DefaultWrap      = "%"
)

// Syntax carries the two reserved characters of the path grammar: the
// field delimiter separating entries and the wrap character delimiting
// variable names in a reference token. All splitting, joining and
// reference classification goes through it.
type Syntax struct {
	Delimiter string
	Wrap      string

	refRe *regexp.Regexp
}

// NewSyntax builds a Syntax for the given delimiter and variable wrap
// character. Empty arguments fall back to the Windows-style defaults.
func NewSyntax(delimiter, wrap string) Syntax {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	if wrap == "" {
		wrap = DefaultWrap
	}
	w := regexp.QuoteMeta(wrap)
	// A wrapped name (alphanumerics, underscore, parentheses), optionally
	// followed by a path separator and an arbitrary sub-path.
	re := regexp.MustCompile(`^` + w + `[A-Za-z0-9_()]+` + w + `(?:[\\/].*)?$`)
	return Syntax{Delimiter: delimiter, Wrap: wrap, refRe: re}
}

// DefaultSyntax returns the Windows-style ";" / "%" syntax.
func DefaultSyntax() Syntax {
	return NewSyntax(DefaultDelimiter, DefaultWrap)
}

// Token returns the reference form of a variable name, e.g. "%PATH_EXT1%".
func (s Syntax) Token(name string) string {
	return s.Wrap + name + s.Wrap
}

// IsVariableReference reports whether entry is a variable reference,
// optionally followed by a sub-path. One layer of surrounding quotes is
// ignored. This classification is the sole basis for protection during
// overflow eviction.
func (s Syntax) IsVariableReference(entry string) bool {
	entry = stripQuotes(strings.TrimSpace(entry))
	return s.refRe.MatchString(entry)
}

// Split breaks a raw delimited string into entries, trimming surrounding
// whitespace and discarding empty pieces. No substitution or
// deduplication is performed.
func (s Syntax) Split(raw string) []string {
	var out []string
	for _, piece := range strings.Split(raw, s.Delimiter) {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		out = append(out, piece)
	}
	return out
}

// Join serializes entries with the field delimiter.
func (s Syntax) Join(entries []string) string {
	return strings.Join(entries, s.Delimiter)
}

// SerializedLen returns the length of Join(entries) without building the
// string: entry lengths plus one delimiter per junction.
func (s Syntax) SerializedLen(entries []string) int {
	if len(entries) == 0 {
		return 0
	}
	n := (len(entries) - 1) * len(s.Delimiter)
	for _, e := range entries {
		n += len(e)
	}
	return n
}
