// Package tfidf provides TF-IDF (Term Frequency-Inverse Document Frequency) keyword ranking.
//
// This package implements a corpus-based approach to term weighting using classical
// information retrieval techniques. It pre-calculates term frequencies and document
// frequencies so that the most distinctive terms of a text can be ranked.
//
// The TF-IDF algorithm combines:
//   - Term Frequency (TF): How frequently a term appears in a document
//   - Inverse Document Frequency (IDF): How rare a term is across the corpus
//
// Usage Example:
//
//	corpus := tfidf.NewCorpus(paragraphs)
//	top := corpus.TopTerms(10)
//
// The package uses simple tokenization suitable for keyword extraction,
// filtering out short words and normalizing case.
package tfidf

import (
	"log/slog"
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// tokenRegex is compiled once at package initialization for efficient tokenization
var tokenRegex = regexp.MustCompile(`[^\p{L}\p{M}\p{N}_-]+`)

// Corpus holds the docs and pre-calculated TF-IDF data.
type Corpus struct {
	TermFrequencies []map[string]float64 // TF for each document
	DocFrequencies  map[string]int       // Document frequency for each term
	TotalDocuments  int                  // Total number of documents
}

// TermScore is a term with its corpus-wide TF-IDF weight.
type TermScore struct {
	Term  string  `json:"term"`
	Score float64 `json:"score"`
}

// NewCorpus creates a new TF-IDF corpus from a collection of documents.
// Constructor performs one-time analysis of all documents to calculate
// TF and DF values.
func NewCorpus(documents []string) *Corpus {
	corpus := &Corpus{
		TermFrequencies: make([]map[string]float64, len(documents)),
		DocFrequencies:  make(map[string]int),
		TotalDocuments:  len(documents),
	}

	for docIdx, doc := range documents {
		tokens := tokenize(doc)
		corpus.TermFrequencies[docIdx] = calculateTermFrequency(tokens)

		// every key of the TF map is a unique term of this document
		for term := range corpus.TermFrequencies[docIdx] {
			corpus.DocFrequencies[term]++
		}
	}

	slog.Debug("TF-IDF corpus created", "totalTerms", len(corpus.DocFrequencies), "documents", corpus.TotalDocuments)
	return corpus
}

// IDF returns the smoothed inverse document frequency log(1 + N/df).
// Smoothing keeps single-document corpora meaningful (IDF > 0).
func (c *Corpus) IDF(term string) float64 {
	docFreq := c.DocFrequencies[term]
	if docFreq == 0 {
		return 0
	}
	return math.Log(1 + float64(c.TotalDocuments)/float64(docFreq))
}

// TopTerms returns the n terms with the highest TF-IDF weight summed over all
// documents. Equal scores are ordered alphabetically. n <= 0 returns all terms.
func (c *Corpus) TopTerms(n int) []TermScore {
	totals := make(map[string]float64, len(c.DocFrequencies))
	for _, docTF := range c.TermFrequencies {
		for term, tf := range docTF {
			totals[term] += tf * c.IDF(term)
		}
	}

	scores := make([]TermScore, 0, len(totals))
	for term, score := range totals {
		scores = append(scores, TermScore{Term: term, Score: score})
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].Term < scores[j].Term
	})

	if n > 0 && len(scores) > n {
		scores = scores[:n]
	}
	return scores
}

// tokenize breaks text into normalized tokens suitable for TF-IDF analysis.
// It converts to lowercase, splits on non-alphanumeric characters, and filters
// out very short words that typically don't carry meaning.
func tokenize(text string) []string {
	if text == "" {
		return []string{}
	}

	tokens := tokenRegex.Split(strings.ToLower(text), -1)

	// filter out empty strings and very short words (basic stop-word filtering)
	var filtered []string
	for _, token := range tokens {
		token = strings.Trim(token, "-_")
		if utf8.RuneCountInString(token) >= 3 {
			filtered = append(filtered, token)
		}
	}

	return filtered
}

// calculateTermFrequency computes the term frequency for a slice of tokens:
// (count of term in document) / (total terms in document)
func calculateTermFrequency(tokens []string) map[string]float64 {
	if len(tokens) == 0 {
		return map[string]float64{}
	}

	termCounts := make(map[string]int)
	for _, token := range tokens {
		termCounts[token]++
	}

	totalTerms := float64(len(tokens))
	termFreqs := make(map[string]float64, len(termCounts))
	for term, count := range termCounts {
		termFreqs[term] = float64(count) / totalTerms
	}

	return termFreqs
}
