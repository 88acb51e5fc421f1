package report

import (
	"encoding/json"
	"io"

	"github.com/chriscorrea/textutils/internal/analysis"
	"github.com/chriscorrea/textutils/internal/tfidf"
)

// JSONWriter renders reports as JSON documents for other tools.
type JSONWriter struct {
	output io.Writer
	indent string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithPrettyPrint enables two-space indented output.
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = "  "
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{output: output}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

type frequencyReport struct {
	Title string               `json:"title"`
	Items []analysis.Frequency `json:"items"`
}

type keywordReport struct {
	Keywords []tfidf.TermScore `json:"keywords"`
}

type countReport struct {
	Method string `json:"method"`
	Count  int    `json:"count"`
}

// WriteStatistics writes the statistics object.
func (w *JSONWriter) WriteStatistics(stats analysis.Statistics) error {
	return w.encode(stats)
}

// WriteFrequencies writes {"title": ..., "items": [...]}.
func (w *JSONWriter) WriteFrequencies(title string, freqs []analysis.Frequency) error {
	if freqs == nil {
		freqs = []analysis.Frequency{}
	}
	return w.encode(frequencyReport{Title: title, Items: freqs})
}

// WriteKeywords writes {"keywords": [...]}.
func (w *JSONWriter) WriteKeywords(terms []tfidf.TermScore) error {
	if terms == nil {
		terms = []tfidf.TermScore{}
	}
	return w.encode(keywordReport{Keywords: terms})
}

// WriteCount writes {"method": ..., "count": ...}.
func (w *JSONWriter) WriteCount(method string, count int) error {
	return w.encode(countReport{Method: method, Count: count})
}

func (w *JSONWriter) encode(v any) error {
	enc := json.NewEncoder(w.output)
	if w.indent != "" {
		enc.SetIndent("", w.indent)
	}
	return enc.Encode(v)
}
