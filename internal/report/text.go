package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chriscorrea/textutils/internal/analysis"
	"github.com/chriscorrea/textutils/internal/tfidf"
	"github.com/mattn/go-runewidth"
)

// TextWriter renders reports as aligned plain text.
// Labels are padded by display width so CJK and emoji tokens line up.
type TextWriter struct {
	output io.Writer
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{output: output}
}

// WriteStatistics writes one "label: value" line per metric.
func (w *TextWriter) WriteStatistics(stats analysis.Statistics) error {
	return w.writeRows("Statistics", statisticsRows(stats), false)
}

// WriteFrequencies writes a ranked list of tokens and counts.
func (w *TextWriter) WriteFrequencies(title string, freqs []analysis.Frequency) error {
	return w.writeRows(title, frequencyRows(freqs), true)
}

// WriteKeywords writes a ranked list of terms and scores.
func (w *TextWriter) WriteKeywords(terms []tfidf.TermScore) error {
	return w.writeRows("Keywords", keywordRows(terms), true)
}

// WriteCount writes the bare count followed by a newline.
func (w *TextWriter) WriteCount(_ string, count int) error {
	_, err := fmt.Fprintln(w.output, count)
	return err
}

func (w *TextWriter) writeRows(title string, rows []row, ranked bool) error {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", runewidth.StringWidth(title)))
	b.WriteString("\n")

	if len(rows) == 0 {
		b.WriteString("No data.\n")
		_, err := io.WriteString(w.output, b.String())
		return err
	}

	width := 0
	for _, r := range rows {
		width = max(width, runewidth.StringWidth(r.label))
	}
	rankWidth := len(strconv.Itoa(len(rows)))

	for i, r := range rows {
		if ranked {
			fmt.Fprintf(&b, "%*d. ", rankWidth, i+1)
		}
		b.WriteString(runewidth.FillRight(r.label, width))
		b.WriteString("  ")
		b.WriteString(r.value)
		b.WriteString("\n")
	}

	_, err := io.WriteString(w.output, b.String())
	return err
}
