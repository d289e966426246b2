package term

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/grindlemire/go-clap/internal/debug"
)

// ANSI sequences written around a full-screen session.
const (
	seqEnterAltScreen = "\x1b[?1049h"
	seqExitAltScreen  = "\x1b[?1049l"
	seqHideCursor     = "\x1b[?25l"
	seqShowCursor     = "\x1b[?25h"
	seqClearScreen    = "\x1b[2J"
	seqResetStyle     = "\x1b[0m"
)

// pollInterval bounds how long ReadKeys waits before rechecking its context.
const pollInterval = 50 * time.Millisecond

// Terminal drives a full-screen session on a tty.
type Terminal struct {
	in  *os.File
	out io.Writer

	mu  sync.Mutex
	raw *rawModeState
}

// New creates a Terminal reading keys from in and writing frames to out.
func New(in *os.File, out io.Writer) *Terminal {
	return &Terminal{in: in, out: out}
}

// Start switches to raw mode and the alternate screen and hides the cursor.
func (t *Terminal) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.raw != nil {
		return nil
	}
	state, err := enableRawMode(int(t.in.Fd()))
	if err != nil {
		return errors.Wrap(err, "enable raw mode")
	}
	t.raw = state

	_, err = io.WriteString(t.out, seqEnterAltScreen+seqHideCursor+seqClearScreen)
	return errors.Wrap(err, "write screen setup")
}

// Stop restores the screen and the original terminal mode. It is safe to
// call more than once.
func (t *Terminal) Stop() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.raw == nil {
		return nil
	}
	_, werr := io.WriteString(t.out, seqResetStyle+seqShowCursor+seqExitAltScreen)
	err := disableRawMode(t.raw)
	t.raw = nil
	if err != nil {
		return errors.Wrap(err, "restore terminal mode")
	}
	return errors.Wrap(werr, "write screen teardown")
}

// Size returns the terminal dimensions, falling back to 80x24.
func (t *Terminal) Size() (width, height int) {
	w, h, err := terminalSize(int(t.in.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}

// Draw writes one fully rendered frame.
func (t *Terminal) Draw(frame string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, err := io.WriteString(t.out, frame)
	return errors.Wrap(err, "draw frame")
}

// ReadKeys decodes key presses from the input and sends them to out until
// ctx is cancelled or the input fails.
func (t *Terminal) ReadKeys(ctx context.Context, out chan<- KeyEvent) error {
	fd := int(t.in.Fd())
	buf := make([]byte, 256)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		ready, err := selectWithTimeout(fd, pollInterval)
		if err != nil {
			return errors.Wrap(err, "poll input")
		}
		if !ready {
			continue
		}

		n, err := t.in.Read(buf)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return errors.Wrap(err, "read input")
		}
		debug.Log("term: read %q", buf[:n])

		for _, ev := range ParseKeys(buf[:n]) {
			select {
			case out <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	}
}
