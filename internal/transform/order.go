package transform

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
)

const lineTerminator = "\n"

// DefaultLineNumberDelimiter separates the index from the line in AddLineNumbers.
const DefaultLineNumberDelimiter = ". "

func splitLines(text string) []string {
	return strings.Split(text, lineTerminator)
}

// AddLineNumbers prefixes each line with its 1-based index and delimiter.
// A trailing terminator yields a numbered empty final line.
func AddLineNumbers(text, delimiter string) string {
	lines := splitLines(text)
	for i, line := range lines {
		lines[i] = fmt.Sprintf("%d%s%s", i+1, delimiter, line)
	}
	return strings.Join(lines, lineTerminator)
}

// ReverseText reverses the code-point sequence of text.
func ReverseText(text string) string {
	runes := []rune(text)
	slices.Reverse(runes)
	return string(runes)
}

// ReverseWords reverses the order of space-separated segments. Empty segments
// from consecutive spaces are kept.
func ReverseWords(text string) string {
	words := strings.Split(text, " ")
	slices.Reverse(words)
	return strings.Join(words, " ")
}

// SortLines sorts lines in ascending code-point order.
func SortLines(text string) string {
	lines := splitLines(text)
	// UTF-8 byte order matches code-point order
	slices.Sort(lines)
	return strings.Join(lines, lineTerminator)
}

// ShuffleWords returns the space-separated segments of text in a uniformly
// random order drawn from rng. A nil rng uses the global source.
func ShuffleWords(text string, rng *rand.Rand) string {
	words := strings.Split(text, " ")

	intN := rand.IntN
	if rng != nil {
		intN = rng.IntN
	}

	// Fisher-Yates
	for i := len(words) - 1; i > 0; i-- {
		j := intN(i + 1)
		words[i], words[j] = words[j], words[i]
	}
	return strings.Join(words, " ")
}
