package analysis

import (
	"regexp"
	"sync"
)

// regexPatterns holds compiled regex patterns for text segmentation
type regexPatterns struct {
	wordRegex          *regexp.Regexp // maximal runs of letters, marks, digits and underscores
	paragraphSeparator *regexp.Regexp // a blank (possibly whitespace-only) line
	sentenceSeparator  *regexp.Regexp // one or more sentence terminators
}

var (
	patterns     *regexPatterns
	patternsOnce sync.Once
)

// getRegexPatterns returns the singleton instance of compiled regex patterns
func getRegexPatterns() *regexPatterns {
	patternsOnce.Do(func() {
		patterns = &regexPatterns{
			wordRegex:          regexp.MustCompile(`[\p{L}\p{M}\p{N}_]+`),
			paragraphSeparator: regexp.MustCompile(`\n\s*\n`),
			sentenceSeparator:  regexp.MustCompile(`[.!?]+`),
		}
	})
	return patterns
}
