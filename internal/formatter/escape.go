package formatter

import (
	"strings"
	"unicode"
)

const (
	// MaxCellLength is the maximum number of runes in a table cell
	MaxCellLength = 80

	// EmptyCell is rendered for missing descriptions and languages
	EmptyCell = "-"
)

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// EscapeCell makes text safe to place inside a Markdown table cell.
// Pipes are escaped, line breaks become spaces, surrounding whitespace is
// trimmed and the result is cut to MaxCellLength runes.
// Applying it twice yields the same string.
func EscapeCell(text string) string {
	if text == "" {
		return EmptyCell
	}

	s := escapePipes(text)
	s = lineBreaks.Replace(s)
	s = strings.TrimSpace(s)
	s = strings.TrimRightFunc(TruncateString(s, MaxCellLength), unicode.IsSpace)

	if s == "" {
		return EmptyCell
	}
	return s
}

// escapePipes prefixes every pipe not already preceded by a backslash
func escapePipes(s string) string {
	if !strings.Contains(s, "|") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)

	var prev rune
	for _, r := range s {
		if r == '|' && prev != '\\' {
			b.WriteRune('\\')
		}
		b.WriteRune(r)
		prev = r
	}

	return b.String()
}
