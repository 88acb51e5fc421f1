package extract

import (
	"math"
	"regexp"
	"strings"
	"sync"

	"github.com/kljensen/snowball"
)

// boilerplateStems are Snowball English stems typical of page chrome:
// bylines, navigation, sharing widgets, and legal footers.
var boilerplateStems = map[string]struct{}{
	// bylines and publishing
	"author": {}, "chapter": {}, "content": {}, "edit": {}, "ebook": {},
	"footer": {}, "navig": {}, "page": {}, "publish": {}, "updat": {},

	// navigation and interaction
	"about": {}, "comment": {}, "follow": {}, "login": {}, "menu": {},
	"newslett": {}, "profil": {}, "share": {}, "sign": {}, "subscrib": {},

	// legal
	"copyright": {}, "cooki": {}, "permiss": {}, "polici": {}, "privaci": {},
	"reproduc": {}, "reserv": {}, "right": {}, "term": {},

	// references
	"citat": {}, "https": {}, "isbn": {}, "refer": {},
}

var (
	letterRun      *regexp.Regexp
	blankLineSplit *regexp.Regexp
	boilerplateRe  sync.Once
)

func boilerplatePatterns() (*regexp.Regexp, *regexp.Regexp) {
	boilerplateRe.Do(func() {
		letterRun = regexp.MustCompile(`[\p{L}\p{M}]+`)
		blankLineSplit = regexp.MustCompile(`\n\s*\n`)
	})
	return letterRun, blankLineSplit
}

// dropBoilerplate removes paragraphs whose share of boilerplate words exceeds
// a position-dependent threshold. When every paragraph would be removed the
// text is returned unchanged.
func dropBoilerplate(text string) string {
	_, splitter := boilerplatePatterns()

	var paragraphs []string
	for _, p := range splitter.Split(text, -1) {
		if strings.TrimSpace(p) != "" {
			paragraphs = append(paragraphs, p)
		}
	}

	kept := make([]string, 0, len(paragraphs))
	for i, p := range paragraphs {
		if !isBoilerplate(p, i, len(paragraphs)) {
			kept = append(kept, p)
		}
	}

	if len(kept) == 0 {
		return text
	}
	return strings.Join(kept, "\n\n")
}

// isBoilerplate reports whether paragraph index of total reads like page chrome.
func isBoilerplate(paragraph string, index, total int) bool {
	if total <= 0 || index < 0 || index >= total {
		return false
	}

	words, _ := boilerplatePatterns()
	tokens := words.FindAllString(strings.ToLower(paragraph), -1)
	if len(tokens) == 0 {
		return true
	}

	hits := 0
	for _, token := range tokens {
		stem, err := snowball.Stem(token, "english", true)
		if err != nil {
			stem = token
		}
		if _, ok := boilerplateStems[stem]; ok {
			hits++
		}
	}

	return float64(hits)/float64(len(tokens)) > boilerplateThreshold(index, total)
}

// boilerplateThreshold is lowest at the first and last paragraph, where
// headers and footers sit, and highest in the middle of the document.
func boilerplateThreshold(index, total int) float64 {
	const (
		edge   = 0.1
		middle = 0.33
	)
	if total <= 3 {
		return 0.5
	}

	position := float64(index) / float64(total-1)
	peak := 1.0 - math.Abs(2.0*position-1.0)
	return edge + (middle-edge)*peak
}
