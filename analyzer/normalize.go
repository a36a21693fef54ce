package analyzer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalize folds width and compatibility variants (NFKC) and lower-cases
// the result. Bucket names and match candidates must both pass through it.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	return cases.Lower(language.Und).String(norm.NFKC.String(text))
}

// CleanText trims surrounding whitespace and drops control characters other
// than newlines and tabs. It is applied to raw input before analysis.
func CleanText(text string) string {
	text = strings.TrimSpace(text)
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, text)
}

// truncateRunes cuts s to at most n characters without splitting a rune.
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
