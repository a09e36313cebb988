package formatter

import "unicode/utf8"

// TruncateString cuts s to at most maxLen runes without splitting a UTF-8 sequence
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	count := 0
	for i := range s {
		if count == maxLen {
			return s[:i]
		}
		count++
	}
	return s
}

// TruncateWithEllipsis truncates a string and adds "..." if truncated
func TruncateWithEllipsis(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return TruncateString(s, maxLen)
	}

	return TruncateString(s, maxLen-3) + "..."
}
