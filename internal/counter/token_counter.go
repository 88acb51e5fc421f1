package counter

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// DefaultEncoding is the tiktoken encoding used by NewTokenCounter.
const DefaultEncoding = "cl100k_base"

// TokenCounter implements token counting using a tiktoken encoding.
type TokenCounter struct {
	encoding     *tiktoken.Tiktoken
	encodingName string
	mu           sync.RWMutex // protects encoding access for thread safety
}

// NewTokenCounter creates a new TokenCounter w/ cl100k_base encoding
func NewTokenCounter() (Counter, error) {
	return NewTokenCounterWithEncoding(DefaultEncoding)
}

// NewTokenCounterWithEncoding creates a TokenCounter for a named tiktoken
// encoding such as "o200k_base" or "p50k_base".
func NewTokenCounterWithEncoding(name string) (Counter, error) {
	slog.Debug("Initializing TokenCounter", "encoding", name)

	encoding, err := tiktoken.GetEncoding(name)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s encoding: %w", name, err)
	}

	return &TokenCounter{
		encoding:     encoding,
		encodingName: name,
	}, nil
}

// Count returns the number of tokens in the given text.
// This can be called concurrently
func (tc *TokenCounter) Count(text string) int {
	if text == "" {
		return 0
	}

	tc.mu.RLock()
	defer tc.mu.RUnlock()

	// nil params mean no special tokens allowed/disallowed
	tokenCount := len(tc.encoding.Encode(text, nil, nil))

	slog.Debug("Token count calculated", "textLength", len(text), "tokenCount", tokenCount)
	return tokenCount
}

// Name returns the name of this counting method (for logging and debugging).
func (tc *TokenCounter) Name() string {
	return fmt.Sprintf("tokens (%s)", tc.encodingName)
}
