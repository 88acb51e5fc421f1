package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/chriscorrea/textutils/internal/app"
	"github.com/chriscorrea/textutils/internal/config"
	"github.com/chriscorrea/textutils/internal/report"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "textutils",
		Short: "Transform, encode, and analyze text",
		Long: `textutils applies case conversions, cleaning, encodings, digests, and
statistics to text. Input comes from --text, from files, or from standard input.

Examples:
  textutils transform upper --text "hello world"
  echo "Hello, World!" | textutils encode base64
  textutils stats --json notes.md
  curl -s https://example.com | textutils freq words --html`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			// configure logging pending debug flag
			debug, _ := cmd.Flags().GetBool("debug")
			setupLogger(debug)
		},
	}

	flags := rootCmd.PersistentFlags()

	// input
	flags.StringP("text", "t", "", "Use this text as input instead of files or stdin")
	flags.String("config", "", "Path to config file (default: $XDG_CONFIG_HOME/textutils/config.yaml)")

	// HTML preprocessing
	flags.Bool("html", false, "Treat the input as HTML and extract its readable text")
	flags.StringP("selector", "s", "", "CSS selector for HTML extraction (implies --html)")
	flags.BoolP("include-all", "i", false, "Keep the whole HTML page without readability filtering")
	flags.Bool("markdown", false, "Extract HTML as Markdown instead of plain text")
	flags.Bool("clean", false, "Drop navigation, byline, and legal boilerplate paragraphs from HTML")

	// output format flags are mutually exclusive
	flags.Bool("md", false, "Output reports in Markdown format (default)")
	flags.Bool("plain", false, "Output reports in plain text format")
	flags.Bool("json", false, "Output reports in JSON format")
	rootCmd.MarkFlagsMutuallyExclusive("md", "plain", "json")

	// other flags
	flags.BoolP("copy", "c", false, "Also copy the result to the system clipboard")
	flags.BoolP("quiet", "q", false, "Suppress progress messages")
	flags.BoolP("debug", "D", false, "Enable debug logging")
	_ = flags.MarkHidden("debug")

	rootCmd.AddCommand(
		newTransformCmd(),
		newEncodeCmd(),
		newDecodeCmd(),
		newDigestCmd(),
		newStatsCmd(),
		newFreqCmd(),
		newKeywordsCmd(),
		newCountCmd(),
		newOpsCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// buildConfig constructs an app.Config from the config file, the shared
// flags, and the positional sources. Flags override the file.
func buildConfig(cmd *cobra.Command, command app.Command, sources []string) (app.Config, *config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	file, err := config.Load(configPath)
	if err != nil {
		return app.Config{}, nil, err
	}

	text, _ := cmd.Flags().GetString("text")
	literal := cmd.Flags().Changed("text")
	if literal && len(sources) > 0 {
		return app.Config{}, nil, fmt.Errorf("--text cannot be combined with file arguments")
	}

	htmlFlag, _ := cmd.Flags().GetBool("html")
	selector, _ := cmd.Flags().GetString("selector")
	includeAll, _ := cmd.Flags().GetBool("include-all")
	markdown, _ := cmd.Flags().GetBool("markdown")
	clean, _ := cmd.Flags().GetBool("clean")
	quiet, _ := cmd.Flags().GetBool("quiet")
	debug, _ := cmd.Flags().GetBool("debug")

	// determine output format
	outputFormat, err := report.ParseFormat(file.Output)
	if err != nil {
		return app.Config{}, nil, err
	}
	mdFlag, _ := cmd.Flags().GetBool("md")
	plainFlag, _ := cmd.Flags().GetBool("plain")
	jsonFlag, _ := cmd.Flags().GetBool("json")
	switch {
	case plainFlag:
		outputFormat = report.Text
	case jsonFlag:
		outputFormat = report.JSON
	case mdFlag:
		outputFormat = report.Markdown
	}

	return app.Config{
		Command:             command,
		Sources:             sources,
		Text:                text,
		Literal:             literal,
		HTML:                htmlFlag || selector != "" || includeAll || clean,
		Selector:            selector,
		IncludeAll:          includeAll,
		Markdown:            markdown,
		Clean:               clean,
		LineNumberDelimiter: file.LineNumberDelimiter,
		WordsPerMinute:      file.WordsPerMinute,
		TopWords:            file.TopWords,
		TopChars:            file.TopChars,
		StemLanguage:        file.StemLanguage,
		OutputFormat:        outputFormat,
		Quiet:               quiet,
		Debug:               debug,
	}, file, nil
}

// runCommand builds the config, lets the subcommand adjust it, runs the app,
// and writes the result. Nothing is written to stdout when the run fails.
func runCommand(cmd *cobra.Command, command app.Command, sources []string, customize func(*app.Config) error) error {
	cfg, file, err := buildConfig(cmd, command, sources)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	if customize != nil {
		if err := customize(&cfg); err != nil {
			return err
		}
	}

	// run the app!
	result, err := app.Run(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("%s failed: %w", command, err)
	}

	output := result
	if !strings.HasSuffix(output, "\n") {
		output += "\n"
	}
	fmt.Fprint(cmd.OutOrStdout(), output)

	copyFlag, _ := cmd.Flags().GetBool("copy")
	if copyFlag || file.Copy {
		if err := clipboard.WriteAll(result); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to copy to clipboard: %v\n", err)
		}
	}

	return nil
}
