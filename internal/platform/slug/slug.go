package slug

import (
	"strings"
	"unicode"
)

const maxLen = 64

// Make lowercases input and joins its letter and digit runs with "-".
// Non-ASCII letters are dropped. fallback is returned when nothing is left.
func Make(input, fallback string) string {
	var sb strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(input) {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			pendingDash = sb.Len() > 0
			continue
		}
		if pendingDash {
			sb.WriteByte('-')
			pendingDash = false
		}
		sb.WriteRune(r)
		if sb.Len() >= maxLen {
			break
		}
	}
	s := sb.String()
	if len(s) > maxLen {
		s = s[:maxLen]
	}
	s = strings.TrimRight(s, "-")
	if s == "" {
		return fallback
	}
	return s
}
