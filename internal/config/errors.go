package config

import "errors"

// Configuration errors. Validate returns these directly so callers can use
// errors.Is.
var (
	// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrInvalidWordsPerMinute is returned when the reading speed is not positive.
	ErrInvalidWordsPerMinute = errors.New("invalid words_per_minute: must be positive")

	// ErrInvalidTopN is returned when a frequency report size is negative.
	ErrInvalidTopN = errors.New("invalid top_words/top_chars: must be non-negative")

	// ErrInvalidOutput is returned when the output format is not markdown, text or json.
	ErrInvalidOutput = errors.New("invalid output: must be markdown, text or json")
)
