// Package source reads the text that textutils operates on.
//
// A source is either "-" for standard input or a local file path. There is
// no network access. Reads are capped at MaxInputBytes.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
)

// MaxInputBytes caps the size of any single source.
const MaxInputBytes = 50 * 1024 * 1024 // 50MB

// Stdin is the source name for standard input.
const Stdin = "-"

// ErrInteractiveStdin is returned when standard input is a terminal, which
// would block waiting for the user instead of reading piped text.
var ErrInteractiveStdin = errors.New("no input: pass text with --text, a file argument, or pipe it on stdin")

// stdin is swapped in tests.
var stdin = os.Stdin

// limitedReadCloser wraps an io.ReadCloser to enforce size limits
type limitedReadCloser struct {
	io.ReadCloser
	N      int64  // max bytes remaining
	source string // for error messages
}

func (l *limitedReadCloser) Read(p []byte) (n int, err error) {
	if l.N <= 0 {
		// probe for EOF so input of exactly the limit still succeeds
		var probe [1]byte
		if m, _ := l.ReadCloser.Read(probe[:]); m == 0 {
			return 0, io.EOF
		}
		return 0, fmt.Errorf("input from %q exceeds %d byte limit", l.source, MaxInputBytes)
	}
	if int64(len(p)) > l.N {
		p = p[0:l.N]
	}
	n, err = l.ReadCloser.Read(p)
	l.N -= int64(n)
	return
}

// Open returns a reader for a single source: "-" for stdin, anything else is
// treated as a local file path.
// ctx is accepted for API consistency; local reads are not cancellable.
func Open(ctx context.Context, src string) (io.ReadCloser, error) {
	if src == Stdin {
		if term.IsTerminal(int(stdin.Fd())) {
			return nil, ErrInteractiveStdin
		}
		return &limitedReadCloser{
			ReadCloser: io.NopCloser(stdin),
			N:          MaxInputBytes,
			source:     "stdin",
		}, nil
	}
	return openFile(ctx, src)
}

// openFile opens a local file for reading with better error messages
func openFile(_ context.Context, path string) (io.ReadCloser, error) {
	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file %q does not exist", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to access file %q: %w", path, err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%q is a directory", path)
	}

	// check file size before opening to prevent memory overload
	if fileInfo.Size() > MaxInputBytes {
		return nil, fmt.Errorf("file %q is too large (%d bytes > %d bytes limit)",
			path, fileInfo.Size(), MaxInputBytes)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", path, err)
	}

	return file, nil
}

// Read returns the full content of one source.
func Read(ctx context.Context, src string) (string, error) {
	reader, err := Open(ctx, src)
	if err != nil {
		return "", err
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", src, err)
	}

	slog.Debug("Source read", "source", src, "bytes", len(data))
	return string(data), nil
}

// ReadAll reads every source in order and joins them with a blank line, so
// each source becomes at least one paragraph. No sources means stdin.
func ReadAll(ctx context.Context, sources []string) (string, error) {
	if len(sources) == 0 {
		sources = []string{Stdin}
	}

	parts := make([]string, 0, len(sources))
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		content, err := Read(ctx, src)
		if err != nil {
			return "", err
		}
		parts = append(parts, content)
	}

	return strings.Join(parts, "\n\n"), nil
}
