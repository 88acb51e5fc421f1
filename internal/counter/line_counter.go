package counter

import "strings"

// LineCounter counts newline-delimited segments. Empty text is one line.
type LineCounter struct{}

// NewLineCounter creates a new LineCounter instance.
func NewLineCounter() Counter {
	return &LineCounter{}
}

// Count returns the number of lines in text; a trailing newline starts a new, empty line.
func (lc *LineCounter) Count(text string) int {
	return strings.Count(text, "\n") + 1
}

// Name returns the name of this counting method for logging and debugging.
func (lc *LineCounter) Name() string {
	return "lines"
}
