package main

import (
	"fmt"
	"strings"

	"github.com/chriscorrea/textutils/internal/app"
	"github.com/chriscorrea/textutils/internal/codec"
	"github.com/chriscorrea/textutils/internal/counter"
	"github.com/chriscorrea/textutils/internal/transform"
	"github.com/spf13/cobra"
)

func operationNames() []string {
	var names []string
	for _, op := range transform.Operations() {
		names = append(names, op.String())
	}
	return names
}

func formatNames() []string {
	var names []string
	for _, f := range codec.Formats() {
		names = append(names, f.String())
	}
	return names
}

func newTransformCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transform <operation> [files...]",
		Short: "Apply a case, cleaning, or reordering operation",
		Long: `Apply one transformation to the input text. Run "textutils ops" to list them.

Examples:
  textutils transform sentence --text "hello. world!"
  textutils transform line-numbers --delimiter ": " main.go`,
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: operationNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := transform.ParseOperation(args[0])
			if err != nil {
				return err
			}
			return runCommand(cmd, app.Transform, args[1:], func(cfg *app.Config) error {
				cfg.Operation = op
				if cmd.Flags().Changed("delimiter") {
					delim, _ := cmd.Flags().GetString("delimiter")
					if delim == "" {
						return fmt.Errorf("--delimiter cannot be empty")
					}
					cfg.LineNumberDelimiter = delim
				}
				cfg.Seed, _ = cmd.Flags().GetUint64("seed")
				return nil
			})
		},
	}

	cmd.Flags().String("delimiter", "", `Separator between line number and line (default ". ")`)
	cmd.Flags().Uint64("seed", 0, "Seed for shuffle-words; 0 picks a random permutation")

	return cmd
}

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "encode <format> [files...]",
		Short:     "Encode text as base64, url, html, hex, or binary",
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: formatNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := codec.ParseFormat(args[0])
			if err != nil {
				return err
			}
			return runCommand(cmd, app.Encode, args[1:], func(cfg *app.Config) error {
				cfg.Format = format
				return nil
			})
		},
	}
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <format> [files...]",
		Short: "Decode base64, url, html, hex, or binary text",
		Long: `Decode the input from the given format. Malformed input is reported as an
error and nothing is written to standard output.`,
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: formatNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := codec.ParseFormat(args[0])
			if err != nil {
				return err
			}
			return runCommand(cmd, app.Decode, args[1:], func(cfg *app.Config) error {
				cfg.Format = format
				return nil
			})
		},
	}
}

func newDigestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "digest <algorithm> [files...]",
		Short: "Print a lowercase hex digest (sha1, sha256, sha512, sha3-256, blake2b-256)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			algorithm, err := codec.ParseAlgorithm(args[0])
			if err != nil {
				return err
			}
			return runCommand(cmd, app.Digest, args[1:], func(cfg *app.Config) error {
				cfg.Algorithm = algorithm
				return nil
			})
		},
	}
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [files...]",
		Short: "Report word, character, line, paragraph, and sentence counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd, app.Stats, args, func(cfg *app.Config) error {
				if cmd.Flags().Changed("wpm") {
					wpm, _ := cmd.Flags().GetInt("wpm")
					if wpm <= 0 {
						return fmt.Errorf("--wpm must be positive, got %d", wpm)
					}
					cfg.WordsPerMinute = wpm
				}
				return nil
			})
		},
	}

	cmd.Flags().Int("wpm", 0, "Reading speed in words per minute (default 200)")

	return cmd
}

func newFreqCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "freq <words|chars> [files...]",
		Short: "Report the most frequent words or letters",
		Long: `Rank words or letters by how often they occur, ties broken by first occurrence.

Examples:
  textutils freq words --top 20 essay.txt
  textutils freq words --stem --text "running runs ran"
  textutils freq chars --plain --text "hello"`,
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: []string{"words", "chars"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var command app.Command
			switch strings.ToLower(args[0]) {
			case "words", "word":
				command = app.WordFrequency
			case "chars", "char", "characters", "letters":
				command = app.CharFrequency
			default:
				return fmt.Errorf("unknown frequency kind %q (want words or chars)", args[0])
			}

			return runCommand(cmd, command, args[1:], func(cfg *app.Config) error {
				if cmd.Flags().Changed("top") {
					top, _ := cmd.Flags().GetInt("top")
					cfg.TopWords, cfg.TopChars = top, top
				}
				cfg.Stem, _ = cmd.Flags().GetBool("stem")
				if cmd.Flags().Changed("language") {
					cfg.StemLanguage, _ = cmd.Flags().GetString("language")
				}
				return nil
			})
		},
	}

	cmd.Flags().IntP("top", "n", 0, "Number of entries to show; 0 shows all (default 10 words, 5 letters)")
	cmd.Flags().Bool("stem", false, "Count word stems instead of words")
	cmd.Flags().String("language", "", "Stemmer language: english, spanish, french, russian, swedish, norwegian, hungarian")

	return cmd
}

func newKeywordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keywords [files...]",
		Short: "Rank terms by TF-IDF across paragraphs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd, app.Keywords, args, func(cfg *app.Config) error {
				if cmd.Flags().Changed("top") {
					cfg.TopWords, _ = cmd.Flags().GetInt("top")
				}
				return nil
			})
		},
	}

	cmd.Flags().IntP("top", "n", 0, "Number of keywords to show; 0 shows all (default 10)")

	return cmd
}

func newCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count [files...]",
		Short: "Print a single count of words, characters, lines, or tokens",
		Long: `Print a single count of words, characters, lines, or tokens.

The tokens method uses a tiktoken BPE encoding (cl100k_base unless --encoding
is given). The encoding file is downloaded on first use and cached under
$TIKTOKEN_CACHE_DIR, so the first token count needs network access.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("method")
			method, err := counter.ParseCountingMethod(name)
			if err != nil {
				return err
			}
			return runCommand(cmd, app.Count, args, func(cfg *app.Config) error {
				cfg.CountingMethod = method
				cfg.TokenEncoding, _ = cmd.Flags().GetString("encoding")
				return nil
			})
		},
	}

	cmd.Flags().StringP("method", "m", counter.Words.String(),
		"Counting method: words, characters, characters-no-spaces, lines, tokens")
	cmd.Flags().String("encoding", "",
		"tiktoken encoding for the tokens method, e.g. o200k_base (default cl100k_base)")

	return cmd
}
