package analysis

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/kljensen/snowball"
)

// Default report sizes.
const (
	DefaultTopWords = 10
	DefaultTopChars = 5
)

// Frequency is one ranked (token, count) pair.
type Frequency struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// WordFrequency lower-cases text, counts maximal runs of word characters
// and returns the top n by count. Ties keep first-occurrence order.
func WordFrequency(text string, n int) []Frequency {
	words := getRegexPatterns().wordRegex.FindAllString(strings.ToLower(text), -1)
	return rank(words, n)
}

// CharFrequency lower-cases text and ranks the ASCII letters a-z it contains,
// returning the top n by count. Ties keep first-occurrence order.
func CharFrequency(text string, n int) []Frequency {
	var letters []string
	for _, r := range strings.ToLower(text) {
		if r >= 'a' && r <= 'z' {
			letters = append(letters, string(r))
		}
	}
	return rank(letters, n)
}

// StemmedWordFrequency is WordFrequency with every word reduced to its
// Snowball stem for language ("english", "spanish", "french", "russian",
// "swedish", "norwegian", "hungarian"), so "run", "runs" and "running" are
// counted together. Words the stemmer rejects are counted as-is.
func StemmedWordFrequency(text string, n int, language string) []Frequency {
	words := getRegexPatterns().wordRegex.FindAllString(strings.ToLower(text), -1)

	for i, word := range words {
		stemmed, err := snowball.Stem(word, language, true)
		if err != nil {
			slog.Debug("Stemming failed", "word", word, "language", language, "error", err)
			continue
		}
		if stemmed != "" {
			words[i] = stemmed
		}
	}
	return rank(words, n)
}

// rank counts tokens and orders them by count descending, breaking ties by
// first occurrence. n <= 0 returns every token.
func rank(tokens []string, n int) []Frequency {
	index := make(map[string]int)
	var ranked []Frequency
	for _, token := range tokens {
		if i, ok := index[token]; ok {
			ranked[i].Count++
			continue
		}
		index[token] = len(ranked)
		ranked = append(ranked, Frequency{Token: token, Count: 1})
	}

	// ranked is in first-occurrence order, so a stable sort keeps that for ties
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	if ranked == nil {
		return []Frequency{}
	}
	return ranked
}
