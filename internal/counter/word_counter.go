package counter

import (
	"log/slog"
	"unicode"
)

// WordCounter counts maximal runs of non-whitespace runes.
type WordCounter struct{}

// NewWordCounter creates a new WordCounter instance.
func NewWordCounter() Counter {
	return &WordCounter{}
}

// Count returns the number of whitespace-separated words in text.
// It matches len(strings.Fields(text)) without allocating the slice.
func (wc *WordCounter) Count(text string) int {
	wordCount := 0
	inWord := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			inWord = false
			continue
		}
		if !inWord {
			wordCount++
			inWord = true
		}
	}

	slog.Debug("Word count calculated", "textLength", len(text), "wordCount", wordCount)
	return wordCount
}

// Name returns the name of this counting method for logging and debugging.
func (wc *WordCounter) Name() string {
	return "words"
}
