// Package counter measures text in one of several units: words, characters
// (with or without whitespace), lines, or tiktoken tokens.
//
//	c, err := counter.NewCounter(counter.Lines)
//	n := c.Count("a\nb") // 2
//
// Counters are stateless apart from the loaded token encoding and may be
// shared between goroutines.
package counter

import (
	"fmt"
	"strings"
)

// Counter defines the interface for different text counting strategies.
type Counter interface {
	// Count returns the number of units (tokens, words, characters or lines) in given text.
	Count(text string) int

	// Name is the label shown next to the count in reports.
	Name() string
}

// CountingMethod represents the different available counting strategies.
type CountingMethod int

const (
	// Words counts words using whitespace splitting (default)
	Words CountingMethod = iota
	// Characters counts individual characters including whitespace
	Characters
	// NonSpaceCharacters counts characters excluding whitespace
	NonSpaceCharacters
	// Lines counts newline-delimited lines
	Lines
	// Tokens uses tiktoken with cl100k_base encoding
	Tokens
)

// String returns the string representation of the counting method.
func (cm CountingMethod) String() string {
	switch cm {
	case Words:
		return "words"
	case Characters:
		return "characters"
	case NonSpaceCharacters:
		return "characters-no-spaces"
	case Lines:
		return "lines"
	case Tokens:
		return "tokens"
	default:
		return "unknown"
	}
}

// Methods returns every counting method.
func Methods() []CountingMethod {
	return []CountingMethod{Words, Characters, NonSpaceCharacters, Lines, Tokens}
}

// ParseCountingMethod looks up a counting method by its String() name.
func ParseCountingMethod(name string) (CountingMethod, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, cm := range Methods() {
		if cm.String() == name {
			return cm, nil
		}
	}
	return 0, fmt.Errorf("unknown counting method %q", name)
}

// NewCounter returns the Counter for method. Unknown methods fall back to
// words. Only the token counter can fail, when its encoding cannot be loaded.
func NewCounter(method CountingMethod) (Counter, error) {
	switch method {
	case Words:
		return NewWordCounter(), nil
	case Characters:
		return NewCharCounter(), nil
	case NonSpaceCharacters:
		return NewNonSpaceCharCounter(), nil
	case Lines:
		return NewLineCounter(), nil
	case Tokens:
		return NewTokenCounter()
	default:
		return NewWordCounter(), nil // fallback to default
	}
}
