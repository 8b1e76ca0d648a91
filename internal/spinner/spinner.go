// Package spinner shows batch progress on a terminal while documents are analyzed.
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

var frames = []string{"◜", "◠", "◝", "◞", "◡", "◟"}

// Spinner animates a "verb [i/n] title..." line until stopped.
type Spinner struct {
	verb   string
	total  int
	writer io.Writer
	delay  time.Duration

	mu     sync.RWMutex
	active bool
	done   int
	title  string

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New returns a stopped spinner for a batch of total documents. ctx cancels the
// animation goroutine.
func New(ctx context.Context, writer io.Writer, verb string, total int) *Spinner {
	spinnerCtx, cancel := context.WithCancel(ctx)
	return &Spinner{
		verb:   verb,
		total:  total,
		writer: writer,
		delay:  100 * time.Millisecond,
		ctx:    spinnerCtx,
		cancel: cancel,
	}
}

// Enabled reports whether w is a terminal that can show a spinner.
func Enabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Start begins the animation. Starting a running spinner does nothing.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		return
	}
	s.active = true
	s.wg.Add(1)
	go s.run()
}

// Stop ends the animation and clears the line. Stopping a stopped spinner does nothing.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.active = false
	s.cancel()
	s.mu.Unlock()

	s.wg.Wait()

	if Enabled(s.writer) {
		fmt.Fprint(s.writer, "\r\033[2K")
	} else {
		fmt.Fprint(s.writer, "\r")
	}
}

// Step records that work on the next document, title, has begun.
func (s *Spinner) Step(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done < s.total {
		s.done++
	}
	s.title = title
}

// IsActive reports whether the animation is running.
func (s *Spinner) IsActive() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// Message is the text shown beside the frame.
func (s *Spinner) Message() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.title == "" {
		return s.verb + "..."
	}
	return fmt.Sprintf("%s [%d/%d] %s...", s.verb, s.done, s.total, s.title)
}

func (s *Spinner) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.delay)
	defer ticker.Stop()

	for i := 0; ; i++ {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			// pad to overwrite a longer previous message
			fmt.Fprintf(s.writer, "\r%s %-60s", frames[i%len(frames)], s.Message())
		}
	}
}
