package report

import (
	"io"
	"strconv"

	"github.com/chriscorrea/textutils/internal/analysis"
	"github.com/chriscorrea/textutils/internal/tfidf"
	"github.com/nao1215/markdown"
)

// MarkdownWriter renders reports as GitHub-flavored Markdown tables.
type MarkdownWriter struct {
	output io.Writer
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{output: output}
}

// WriteStatistics writes the statistics table.
func (w *MarkdownWriter) WriteStatistics(stats analysis.Statistics) error {
	return w.writeTable("Statistics", []string{"Metric", "Value"}, cells(statisticsRows(stats)))
}

// WriteFrequencies writes a ranked frequency table.
func (w *MarkdownWriter) WriteFrequencies(title string, freqs []analysis.Frequency) error {
	return w.writeTable(title, []string{"#", "Token", "Count"}, numbered(frequencyRows(freqs)))
}

// WriteKeywords writes the TF-IDF keyword table.
func (w *MarkdownWriter) WriteKeywords(terms []tfidf.TermScore) error {
	return w.writeTable("Keywords", []string{"#", "Term", "Score"}, numbered(keywordRows(terms)))
}

// WriteCount writes a single count as a one-row table.
func (w *MarkdownWriter) WriteCount(method string, count int) error {
	return w.writeTable("Count", []string{"Method", "Count"}, [][]string{{method, strconv.Itoa(count)}})
}

func (w *MarkdownWriter) writeTable(title string, header []string, rows [][]string) error {
	md := markdown.NewMarkdown(w.output)
	md.H2(title)
	md.PlainText("")

	if len(rows) == 0 {
		md.PlainText("No data.")
	} else {
		md.Table(markdown.TableSet{Header: header, Rows: rows})
	}
	return md.Build()
}

func cells(rows []row) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = []string{r.label, r.value}
	}
	return out
}

// numbered prefixes each row with its 1-based rank
func numbered(rows []row) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = []string{strconv.Itoa(i + 1), r.label, r.value}
	}
	return out
}
