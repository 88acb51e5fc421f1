// Package transform provides the text transformations of the textutils CLI tool.
//
// Every transformation is a pure function from one string to a new string:
// case conversions, cleaning operations, and line/word reordering. None of
// them can fail. Code points (runes) are the unit of every operation.
//
// Usage Example:
//
//	op, err := transform.ParseOperation("sentence")
//	out := transform.Apply(op, "hello. world!", transform.Options{})
//	// out == "Hello. World!"
//
// The Operation enum lets callers select a transformation by name; the
// individual functions can also be called directly.
package transform

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
)

// Operation identifies one transformation.
type Operation int

// operations in display order; names and descriptions live in the operations table
const (
	OpUpper Operation = iota
	OpLower
	OpCapitalize
	OpSentence
	OpAlternating
	OpInverse
	OpRemoveExtraSpaces
	OpRemoveNumbers
	OpRemoveSpecialChars
	OpRemoveEmptyLines
	OpLineNumbers
	OpReverseText
	OpReverseWords
	OpSortLines
	OpShuffleWords
)

type operationInfo struct {
	name        string
	description string
}

var operations = []operationInfo{
	OpUpper:              {"upper", "Convert to UPPER CASE"},
	OpLower:              {"lower", "Convert to lower case"},
	OpCapitalize:         {"capitalize", "Capitalize Each Space-Separated Word"},
	OpSentence:           {"sentence", "Sentence case after . ! and ?"},
	OpAlternating:        {"alternating", "aLtErNaTiNg case by position"},
	OpInverse:            {"inverse", "Flip the case of every letter"},
	OpRemoveExtraSpaces:  {"remove-extra-spaces", "Collapse whitespace runs and trim"},
	OpRemoveNumbers:      {"remove-numbers", "Delete decimal digits"},
	OpRemoveSpecialChars: {"remove-special", "Keep only ASCII letters, digits and whitespace"},
	OpRemoveEmptyLines:   {"remove-empty-lines", "Delete whitespace-only lines"},
	OpLineNumbers:        {"line-numbers", "Prefix each line with its number"},
	OpReverseText:        {"reverse", "Reverse the characters"},
	OpReverseWords:       {"reverse-words", "Reverse the order of words"},
	OpSortLines:          {"sort-lines", "Sort lines in code-point order"},
	OpShuffleWords:       {"shuffle-words", "Randomly permute the words"},
}

// String returns the name of the operation.
func (op Operation) String() string {
	if op < 0 || int(op) >= len(operations) {
		return "unknown"
	}
	return operations[op].name
}

// Description returns a one-line human-readable summary of the operation.
func (op Operation) Description() string {
	if op < 0 || int(op) >= len(operations) {
		return ""
	}
	return operations[op].description
}

// Operations returns every operation in display order.
func Operations() []Operation {
	ops := make([]Operation, len(operations))
	for i := range operations {
		ops[i] = Operation(i)
	}
	return ops
}

// ParseOperation looks up an operation by name (case-insensitive).
func ParseOperation(name string) (Operation, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, info := range operations {
		if info.name == name {
			return Operation(i), nil
		}
	}
	return 0, fmt.Errorf("unknown operation %q", name)
}

// Options carries the parameters some operations need.
type Options struct {
	LineNumberDelimiter string     // defaults to DefaultLineNumberDelimiter
	Rand                *rand.Rand // source for OpShuffleWords; nil uses the global source
}

// Apply runs op against text and returns the result.
func Apply(op Operation, text string, opts Options) string {
	slog.Debug("Applying transformation", "operation", op.String(), "textLength", len(text))

	switch op {
	case OpUpper:
		return Upper(text)
	case OpLower:
		return Lower(text)
	case OpCapitalize:
		return Capitalize(text)
	case OpSentence:
		return SentenceCase(text)
	case OpAlternating:
		return AlternatingCase(text)
	case OpInverse:
		return InverseCase(text)
	case OpRemoveExtraSpaces:
		return RemoveExtraSpaces(text)
	case OpRemoveNumbers:
		return RemoveNumbers(text)
	case OpRemoveSpecialChars:
		return RemoveSpecialChars(text)
	case OpRemoveEmptyLines:
		return RemoveEmptyLines(text)
	case OpLineNumbers:
		delimiter := opts.LineNumberDelimiter
		if delimiter == "" {
			delimiter = DefaultLineNumberDelimiter
		}
		return AddLineNumbers(text, delimiter)
	case OpReverseText:
		return ReverseText(text)
	case OpReverseWords:
		return ReverseWords(text)
	case OpSortLines:
		return SortLines(text)
	case OpShuffleWords:
		return ShuffleWords(text, opts.Rand)
	default:
		return text
	}
}
