package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 200, cfg.WordsPerMinute)
	assert.Equal(t, ". ", cfg.LineNumberDelimiter)
	assert.Equal(t, 10, cfg.TopWords)
	assert.Equal(t, 5, cfg.TopChars)
	assert.Equal(t, "markdown", cfg.Output)
	assert.False(t, cfg.Copy)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
words_per_minute: 250
line_number_delimiter: ") "
top_words: 3
output: json
copy: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 250, cfg.WordsPerMinute)
	assert.Equal(t, ") ", cfg.LineNumberDelimiter)
	assert.Equal(t, 3, cfg.TopWords)
	assert.Equal(t, DefaultTopChars, cfg.TopChars, "unset keys keep their defaults")
	assert.Equal(t, "json", cfg.Output)
	assert.True(t, cfg.Copy)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"zero reading speed", "words_per_minute: 0\n", ErrInvalidWordsPerMinute},
		{"negative top words", "top_words: -1\n", ErrInvalidTopN},
		{"unknown output", "output: xml\n", ErrInvalidOutput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "words_per_minute: [1, 2\n"))
		assert.Error(t, err)
	})

	t.Run("explicit missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, filepath.Join(AppName, FileName), filepath.Join(filepath.Base(filepath.Dir(DefaultPath())), filepath.Base(DefaultPath())))
}

func TestLoadFromXDG(t *testing.T) {
	// registered before Setenv so it runs after the environment is restored
	t.Cleanup(xdg.Reload)

	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	xdg.Reload()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg, "no file falls back to defaults")

	dir := filepath.Join(home, AppName)
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("top_chars: 26\n"), 0o600))

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 26, cfg.TopChars)
}
