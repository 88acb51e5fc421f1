package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chriscorrea/textutils/internal/analysis"
	"github.com/chriscorrea/textutils/internal/tfidf"
)

// Format defines the output format for reports
type Format int

const (
	// markdown output format (default)
	Markdown Format = iota
	// plaintext output format
	Text
	// JSON output format
	JSON
)

// String returns the string representation of the output
func (f Format) String() string {
	switch f {
	case Markdown:
		return "markdown"
	case Text:
		return "text"
	case JSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat looks up a format by name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "markdown", "md":
		return Markdown, nil
	case "text", "txt":
		return Text, nil
	case "json":
		return JSON, nil
	default:
		return 0, fmt.Errorf("unknown output format %q", name)
	}
}

// Writer renders one kind of report per call.
type Writer interface {
	WriteStatistics(stats analysis.Statistics) error
	WriteFrequencies(title string, freqs []analysis.Frequency) error
	WriteKeywords(terms []tfidf.TermScore) error
	WriteCount(method string, count int) error
}

// NewWriter returns the Writer for format, writing to output.
func NewWriter(format Format, output io.Writer) Writer {
	switch format {
	case Text:
		return NewTextWriter(output)
	case JSON:
		return NewJSONWriter(output, WithPrettyPrint())
	default:
		return NewMarkdownWriter(output)
	}
}

// row is one labelled value shared by the text and markdown writers
type row struct {
	label string
	value string
}

func statisticsRows(stats analysis.Statistics) []row {
	return []row{
		{"Words", strconv.Itoa(stats.Words)},
		{"Characters", strconv.Itoa(stats.Characters)},
		{"Characters (no spaces)", strconv.Itoa(stats.CharactersNoSpaces)},
		{"Lines", strconv.Itoa(stats.Lines)},
		{"Paragraphs", strconv.Itoa(stats.Paragraphs)},
		{"Sentences", strconv.Itoa(stats.Sentences)},
		{"Reading time", readingTimeLabel(stats.ReadingTimeMinutes)},
	}
}

func readingTimeLabel(minutes int) string {
	if minutes == 1 {
		return "1 minute"
	}
	return strconv.Itoa(minutes) + " minutes"
}

func frequencyRows(freqs []analysis.Frequency) []row {
	rows := make([]row, len(freqs))
	for i, f := range freqs {
		rows[i] = row{f.Token, strconv.Itoa(f.Count)}
	}
	return rows
}

func keywordRows(terms []tfidf.TermScore) []row {
	rows := make([]row, len(terms))
	for i, t := range terms {
		rows[i] = row{t.Term, strconv.FormatFloat(t.Score, 'f', 4, 64)}
	}
	return rows
}
