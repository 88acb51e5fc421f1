package transform

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// locale-independent casers; language.Und avoids Turkic/Lithuanian special rules
var (
	upperCaser = cases.Upper(language.Und)
	lowerCaser = cases.Lower(language.Und)
)

// Upper converts every code point of text to upper case.
func Upper(text string) string {
	return upperCaser.String(text)
}

// Lower converts every code point of text to lower case.
func Lower(text string) string {
	return lowerCaser.String(text)
}

// Capitalize upper-cases the first code point of each space-separated segment
// and lower-cases the remainder. Consecutive spaces are kept as empty segments.
func Capitalize(text string) string {
	segments := strings.Split(text, " ")
	for i, segment := range segments {
		segments[i] = capitalizeSegment(segment)
	}
	return strings.Join(segments, " ")
}

func capitalizeSegment(segment string) string {
	if segment == "" {
		return segment
	}
	runes := []rune(segment)
	var b strings.Builder
	b.Grow(len(segment))
	b.WriteRune(unicode.ToUpper(runes[0]))
	for _, r := range runes[1:] {
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// SentenceCase lower-cases text, then upper-cases the first letter of the
// text and the first letter after each '.', '!' or '?' (whitespace may sit
// in between).
func SentenceCase(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	capitalizeNext := true
	for _, r := range Lower(text) {
		if capitalizeNext {
			switch {
			case unicode.IsSpace(r):
				// keep waiting for the first word character
			case isWordRune(r):
				r = unicode.ToUpper(r)
				capitalizeNext = false
			default:
				capitalizeNext = false
			}
		}
		if isSentenceEnd(r) {
			capitalizeNext = true
		}
		b.WriteRune(r)
	}
	return b.String()
}

// AlternatingCase lower-cases code points at even positions and upper-cases
// those at odd positions. Every code point counts toward the position.
func AlternatingCase(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	i := 0
	for _, r := range text {
		if i%2 == 0 {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(unicode.ToUpper(r))
		}
		i++
	}
	return b.String()
}

// InverseCase flips the case of every cased letter.
func InverseCase(text string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsUpper(r):
			return unicode.ToLower(r)
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		default:
			return r
		}
	}, text)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
