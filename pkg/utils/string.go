// Package utils provides common string helpers for the scraper.
package utils

import (
	"strings"
	"unicode"
)

// Truncate shortens s to at most limit runes, appending "..." when
// anything was cut.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit]) + "..."
}

// NormalizeWhitespace replaces runs of whitespace with single spaces.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SanitizeFilename keeps letters, digits, spaces, dashes and
// underscores and replaces everything else with an underscore, so
// article titles map to portable filenames.
func SanitizeFilename(title string) string {
	var sb strings.Builder

	for _, r := range title {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}

	return sb.String()
}
