package app

import (
	"fmt"
	"strings"
)

// Command selects what Run does with the input text.
type Command int

const (
	// Transform applies a transform.Operation
	Transform Command = iota
	// Encode converts text to a codec.Format
	Encode
	// Decode converts text from a codec.Format
	Decode
	// Digest hashes text with a codec.Algorithm
	Digest
	// Stats reports analysis.Statistics
	Stats
	// WordFrequency reports the most frequent words
	WordFrequency
	// CharFrequency reports the most frequent letters
	CharFrequency
	// Keywords reports TF-IDF keywords
	Keywords
	// Count reports a single count from a counter.CountingMethod
	Count
)

var commandNames = [...]string{
	Transform:     "transform",
	Encode:        "encode",
	Decode:        "decode",
	Digest:        "digest",
	Stats:         "stats",
	WordFrequency: "freq-words",
	CharFrequency: "freq-chars",
	Keywords:      "keywords",
	Count:         "count",
}

// String returns the string representation of the command.
func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return "unknown"
	}
	return commandNames[c]
}

// ParseCommand looks up a command by name.
func ParseCommand(name string) (Command, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range commandNames {
		if n == name {
			return Command(i), nil
		}
	}
	return 0, fmt.Errorf("unknown command %q", name)
}

// producesReport reports whether the command output goes through a report.Writer.
func (c Command) producesReport() bool {
	switch c {
	case Stats, WordFrequency, CharFrequency, Keywords, Count:
		return true
	default:
		return false
	}
}
