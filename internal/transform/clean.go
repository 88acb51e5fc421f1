package transform

import (
	"strings"
	"unicode"
)

// RemoveExtraSpaces collapses every run of whitespace to a single space and
// trims the ends.
func RemoveExtraSpaces(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// RemoveNumbers deletes every decimal digit.
func RemoveNumbers(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return -1
		}
		return r
	}, text)
}

// RemoveSpecialChars keeps only ASCII letters, ASCII digits and whitespace.
func RemoveSpecialChars(text string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case unicode.IsSpace(r):
			return r
		default:
			return -1
		}
	}, text)
}

// RemoveEmptyLines drops lines that contain only whitespace, together with
// their terminators. Remaining lines keep their order.
func RemoveEmptyLines(text string) string {
	lines := splitLines(text)
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, lineTerminator)
}
