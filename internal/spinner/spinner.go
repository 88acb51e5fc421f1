// Package spinner draws a progress indicator on a terminal while a slow step
// runs, such as loading a tokenizer encoding for the first time.
package spinner

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

// Spinner is a single-line progress indicator. It draws nothing unless the
// writer is a terminal, so redirected stderr stays clean.
type Spinner struct {
	writer   io.Writer
	message  string
	frames   []string
	interval time.Duration
	enabled  bool

	mu   sync.Mutex
	stop context.CancelFunc
	done chan struct{}
}

// New creates a spinner for writer with the given message.
func New(writer io.Writer, message string) *Spinner {
	return newSpinner(writer, message, isTerminal(writer))
}

func newSpinner(writer io.Writer, message string, enabled bool) *Spinner {
	return &Spinner{
		writer:   writer,
		message:  message,
		frames:   []string{"◜", "◠", "◝", "◞", "◡", "◟"},
		interval: 100 * time.Millisecond,
		enabled:  enabled,
	}
}

// Start begins the animation. It stops by itself when ctx is done.
func (s *Spinner) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled || s.done != nil {
		return
	}

	ctx, s.stop = context.WithCancel(ctx)
	s.done = make(chan struct{})
	go s.run(ctx, s.done)
}

// Stop ends the animation and clears the line. Stop on a spinner that is not
// running does nothing.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if s.done == nil {
		s.mu.Unlock()
		return
	}
	stop, done := s.stop, s.done
	s.stop, s.done = nil, nil
	s.mu.Unlock()

	stop()
	<-done
	fmt.Fprint(s.writer, "\r\033[2K")
}

// Running reports whether the animation goroutine is active.
func (s *Spinner) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done != nil
}

func (s *Spinner) run(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for frame := 0; ; frame++ {
		fmt.Fprintf(s.writer, "\r%s %s", s.frames[frame%len(s.frames)], s.message)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
