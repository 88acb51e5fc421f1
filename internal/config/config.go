package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// AppName is the application name used for XDG directory paths.
const AppName = "textutils"

// FileName is the config file looked up under the XDG config directories.
const FileName = "config.yaml"

// Default configuration values.
const (
	DefaultWordsPerMinute      = 200
	DefaultLineNumberDelimiter = ". "
	DefaultTopWords            = 10
	DefaultTopChars            = 5
	DefaultOutput              = "markdown"
	DefaultStemLanguage        = "english"
)

// Config holds every setting that can come from the config file.
type Config struct {
	// WordsPerMinute is the reading speed for the reading-time estimate.
	WordsPerMinute int `yaml:"words_per_minute"`

	// LineNumberDelimiter separates the number from the line in line-numbers.
	LineNumberDelimiter string `yaml:"line_number_delimiter"`

	// TopWords and TopChars size the frequency reports; 0 means unlimited.
	TopWords int `yaml:"top_words"`
	TopChars int `yaml:"top_chars"`

	// Output is the report format: markdown, text or json.
	Output string `yaml:"output"`

	// Copy puts every result on the system clipboard as well as stdout.
	Copy bool `yaml:"copy"`

	// StemLanguage is the Snowball stemmer language for stemmed frequencies.
	StemLanguage string `yaml:"stem_language"`
}

// Default returns a Config populated with the default values.
func Default() *Config {
	return &Config{
		WordsPerMinute:      DefaultWordsPerMinute,
		LineNumberDelimiter: DefaultLineNumberDelimiter,
		TopWords:            DefaultTopWords,
		TopChars:            DefaultTopChars,
		Output:              DefaultOutput,
		StemLanguage:        DefaultStemLanguage,
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.WordsPerMinute <= 0 {
		return ErrInvalidWordsPerMinute
	}
	if c.TopWords < 0 || c.TopChars < 0 {
		return ErrInvalidTopN
	}
	switch c.Output {
	case "markdown", "text", "json":
	default:
		return ErrInvalidOutput
	}
	return nil
}

// DefaultPath returns where the config file is expected under XDG_CONFIG_HOME.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, FileName)
}

// Load reads the config file at path on top of the defaults. An empty path
// searches the XDG config directories and silently falls back to the
// defaults when no file exists there; an explicit path that does not exist
// returns ErrConfigNotFound.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		found, err := xdg.SearchConfigFile(filepath.Join(AppName, FileName))
		if err != nil {
			slog.Debug("No config file found, using defaults", "searched", DefaultPath())
			return cfg, nil
		}
		path = found
	}

	data, err := os.ReadFile(path) //nolint:gosec // user-provided config path is intentional
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}

	slog.Debug("Config loaded", "path", path)
	return cfg, nil
}
