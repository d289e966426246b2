package motion

import (
	"time"

	"github.com/pkg/errors"
)

// Option is a functional option for configuring a Timeline.
type Option func(*Timeline) error

// WithFrameRate sets how often a running timeline steps its effects.
// Default is 60 fps. Valid range is 1-240 fps.
func WithFrameRate(fps int) Option {
	return func(t *Timeline) error {
		if fps < 1 {
			return errors.New("frame rate must be at least 1 fps")
		}
		if fps > 240 {
			return errors.New("frame rate cannot exceed 240 fps")
		}
		t.frame = time.Second / time.Duration(fps)
		return nil
	}
}

// WithScheduler routes every frame step through schedule instead of running
// it on the timeline goroutine. Hosts with a single event loop pass a
// function that enqueues onto that loop.
func WithScheduler(schedule func(func())) Option {
	return func(t *Timeline) error {
		t.schedule = schedule
		return nil
	}
}

// WithOnFrame sets a callback that runs after each frame step, typically
// to request a redraw.
func WithOnFrame(fn func()) Option {
	return func(t *Timeline) error {
		t.onFrame = fn
		return nil
	}
}

// WithClock overrides the time source. Tests use it to control elapsed time.
func WithClock(now func() time.Time) Option {
	return func(t *Timeline) error {
		if now == nil {
			return errors.New("clock cannot be nil")
		}
		t.now = now
		return nil
	}
}
