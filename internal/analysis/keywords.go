package analysis

import (
	"strings"

	"github.com/chriscorrea/textutils/internal/tfidf"
)

// Keywords ranks the terms of text by TF-IDF, treating each paragraph as a
// document so that terms concentrated in few paragraphs rank higher than
// terms spread evenly. Words shorter than three characters are ignored.
func Keywords(text string, n int) []tfidf.TermScore {
	var paragraphs []string
	for _, p := range getRegexPatterns().paragraphSeparator.Split(text, -1) {
		if strings.TrimSpace(p) != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return tfidf.NewCorpus(paragraphs).TopTerms(n)
}
