package logutil

import "unicode/utf8"

// TruncateForLog shortens s to at most maxLen runes, appending "..." when
// anything was cut. Used for response bodies and descriptions in log lines.
func TruncateForLog(s string, maxLen int) string {
	if maxLen <= 0 {
		return "..."
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen]) + "..."
}
