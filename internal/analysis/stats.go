// Package analysis derives statistics and frequency reports from a text.
//
// All functions are pure and run in time linear in the length of the text.
// Nothing is cached: callers recompute a report whenever the text changes.
package analysis

import (
	"log/slog"
	"strings"

	"github.com/chriscorrea/textutils/internal/counter"
)

// DefaultWordsPerMinute is the reading speed used by ReadingTime.
const DefaultWordsPerMinute = 200

// Statistics is a snapshot of counts for one text.
type Statistics struct {
	Words              int `json:"words"`
	Characters         int `json:"characters"`
	CharactersNoSpaces int `json:"characters_no_spaces"`
	Lines              int `json:"lines"`
	Paragraphs         int `json:"paragraphs"`
	Sentences          int `json:"sentences"`
	ReadingTimeMinutes int `json:"reading_time_minutes"`
}

// Analyze computes every Statistics field for text. A non-positive
// wordsPerMinute falls back to DefaultWordsPerMinute.
func Analyze(text string, wordsPerMinute int) Statistics {
	words := WordCount(text)
	stats := Statistics{
		Words:              words,
		Characters:         CharCount(text),
		CharactersNoSpaces: CharCountNoSpaces(text),
		Lines:              LineCount(text),
		Paragraphs:         ParagraphCount(text),
		Sentences:          SentenceCount(text),
		ReadingTimeMinutes: ReadingTime(words, wordsPerMinute),
	}

	slog.Debug("Statistics calculated", "textLength", len(text), "words", stats.Words, "paragraphs", stats.Paragraphs)
	return stats
}

// WordCount returns the number of whitespace-separated words.
func WordCount(text string) int {
	return counter.NewWordCounter().Count(text)
}

// CharCount returns the number of code points in text.
func CharCount(text string) int {
	return counter.NewCharCounter().Count(text)
}

// CharCountNoSpaces returns the number of non-whitespace code points.
func CharCountNoSpaces(text string) int {
	return counter.NewNonSpaceCharCounter().Count(text)
}

// LineCount returns the number of newline-delimited lines; empty text is one line.
func LineCount(text string) int {
	return counter.NewLineCounter().Count(text)
}

// ParagraphCount returns the number of blocks separated by blank lines,
// ignoring blocks made only of whitespace.
func ParagraphCount(text string) int {
	return countNonBlank(getRegexPatterns().paragraphSeparator.Split(text, -1))
}

// SentenceCount returns the number of segments between runs of '.', '!'
// and '?', ignoring whitespace-only segments.
func SentenceCount(text string) int {
	return countNonBlank(getRegexPatterns().sentenceSeparator.Split(text, -1))
}

// ReadingTime returns ceil(words / wordsPerMinute) in minutes.
func ReadingTime(words, wordsPerMinute int) int {
	if wordsPerMinute <= 0 {
		wordsPerMinute = DefaultWordsPerMinute
	}
	if words <= 0 {
		return 0
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

func countNonBlank(segments []string) int {
	n := 0
	for _, s := range segments {
		if strings.TrimSpace(s) != "" {
			n++
		}
	}
	return n
}
