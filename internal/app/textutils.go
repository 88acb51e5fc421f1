// Package app contains the core application logic for the textutils CLI tool.
// It handles the main business logic separated from CLI concerns.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/chriscorrea/textutils/internal/analysis"
	"github.com/chriscorrea/textutils/internal/codec"
	"github.com/chriscorrea/textutils/internal/counter"
	"github.com/chriscorrea/textutils/internal/extract"
	"github.com/chriscorrea/textutils/internal/report"
	"github.com/chriscorrea/textutils/internal/source"
	"github.com/chriscorrea/textutils/internal/spinner"
	"github.com/chriscorrea/textutils/internal/transform"
)

// Config holds all configuration options for one textutils run.
type Config struct {
	Command Command

	Sources []string // file paths or "-" for stdin; ignored when Literal is set
	Text    string   // input text given on the command line
	Literal bool     // use Text instead of reading Sources

	// HTML preprocessing
	HTML       bool
	Selector   string // CSS selector for content extraction
	IncludeAll bool   // include the whole page without readability filtering
	Markdown   bool   // extract HTML as Markdown instead of plain text
	Clean      bool   // drop boilerplate paragraphs after extraction

	Operation           transform.Operation
	LineNumberDelimiter string
	Seed                uint64 // shuffle seed; 0 picks a random permutation

	Format    codec.Format
	Algorithm codec.Algorithm

	CountingMethod counter.CountingMethod
	TokenEncoding  string // tiktoken encoding name; empty uses counter.DefaultEncoding
	WordsPerMinute int
	TopWords       int    // also sizes the keyword report; 0 means all
	TopChars       int    // 0 means all
	Stem           bool   // stem words before counting frequencies
	StemLanguage   string // Snowball language name

	OutputFormat report.Format // output format for reports (md/txt/json)
	Quiet        bool          // suppress the progress spinner
	Debug        bool
}

// Run executes one command against the input text and returns what should
// be written to stdout. On error nothing should be written.
//
// Processing Pipeline:
// 1. Read the text from the literal flag, files, or stdin (loadText)
// 2. Optionally reduce HTML to its readable content
// 3. Dispatch on cfg.Command
//
// ctx allows cancellation while the input is read.
func Run(ctx context.Context, cfg Config) (string, error) {
	// step 1: read the input snapshot
	text, err := loadText(ctx, cfg)
	if err != nil {
		return "", err
	}

	// step 2: HTML preprocessing
	if cfg.HTML {
		text, err = extract.FromHTML(strings.NewReader(text), extract.Options{
			Selector:        cfg.Selector,
			IncludeAll:      cfg.IncludeAll,
			Markdown:        cfg.Markdown,
			DropBoilerplate: cfg.Clean,
		})
		if err != nil {
			return "", fmt.Errorf("failed to extract content: %w", err)
		}
	}

	slog.Debug("Running command", "command", cfg.Command.String(), "textLength", len(text))

	// step 3: dispatch
	if cfg.Command.producesReport() {
		return runReport(ctx, text, cfg)
	}
	return runText(text, cfg)
}

// loadText returns the literal text or the content of every source, minus a
// single trailing newline on read input.
func loadText(ctx context.Context, cfg Config) (string, error) {
	if cfg.Literal {
		return cfg.Text, nil
	}

	text, err := source.ReadAll(ctx, cfg.Sources)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	text = strings.TrimSuffix(text, "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

// runText handles the commands that turn a text into a new text.
func runText(text string, cfg Config) (string, error) {
	switch cfg.Command {
	case Transform:
		return transform.Apply(cfg.Operation, text, transform.Options{
			LineNumberDelimiter: cfg.LineNumberDelimiter,
			Rand:                newRand(cfg.Seed),
		}), nil

	case Encode:
		return codec.Encode(text, cfg.Format), nil

	case Decode:
		decoded, err := codec.Decode(text, cfg.Format)
		if err != nil {
			return "", err
		}
		return decoded, nil

	case Digest:
		return codec.Digest(text, cfg.Algorithm)

	default:
		return "", fmt.Errorf("unsupported command %q", cfg.Command)
	}
}

// runReport handles the analysis commands, rendering through a report.Writer.
func runReport(ctx context.Context, text string, cfg Config) (string, error) {
	var out strings.Builder
	w := report.NewWriter(cfg.OutputFormat, &out)

	var err error
	switch cfg.Command {
	case Stats:
		err = w.WriteStatistics(analysis.Analyze(text, cfg.WordsPerMinute))

	case WordFrequency:
		if cfg.Stem {
			language := cfg.StemLanguage
			if language == "" {
				language = "english"
			}
			err = w.WriteFrequencies("Top stems", analysis.StemmedWordFrequency(text, cfg.TopWords, language))
		} else {
			err = w.WriteFrequencies("Top words", analysis.WordFrequency(text, cfg.TopWords))
		}

	case CharFrequency:
		err = w.WriteFrequencies("Top letters", analysis.CharFrequency(text, cfg.TopChars))

	case Keywords:
		err = w.WriteKeywords(analysis.Keywords(text, cfg.TopWords))

	case Count:
		c, cerr := newCounter(ctx, cfg)
		if cerr != nil {
			return "", fmt.Errorf("failed to create counter: %w", cerr)
		}
		err = w.WriteCount(c.Name(), c.Count(text))

	default:
		return "", fmt.Errorf("unsupported command %q", cfg.Command)
	}

	if err != nil {
		return "", fmt.Errorf("failed to render %s report: %w", cfg.Command, err)
	}
	return out.String(), nil
}

// newCounter builds the counter for cfg.CountingMethod. The token encoding
// may be downloaded on first use, so a spinner runs while it loads.
func newCounter(ctx context.Context, cfg Config) (counter.Counter, error) {
	if cfg.CountingMethod != counter.Tokens {
		return counter.NewCounter(cfg.CountingMethod)
	}

	if !cfg.Quiet {
		sp := spinner.New(os.Stderr, "Loading token encoding...")
		sp.Start(ctx)
		defer sp.Stop()
	}

	if cfg.TokenEncoding != "" {
		return counter.NewTokenCounterWithEncoding(cfg.TokenEncoding)
	}
	return counter.NewCounter(cfg.CountingMethod)
}

// newRand returns a seeded source, or nil to use the global one.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(seed, seed))
}
