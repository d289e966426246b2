package motion

import (
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/grindlemire/go-clap/internal/debug"
)

// Effect is anything a Timeline can drive.
type Effect interface {
	// Duration is the total span of the effect, including delays.
	Duration() time.Duration
	// Seek writes the effect's state at elapsed time.
	Seek(elapsed time.Duration)
}

// Timeline plays a set of effects concurrently from a common start.
//
// Replay starts a run on a ticker goroutine owned by the timeline. Calling
// Replay while a run is active restarts from the beginning; frames from the
// superseded run are dropped.
type Timeline struct {
	mu      sync.Mutex
	effects []Effect
	stopCh  chan struct{}
	running bool
	run     uint64 // generation of the active run

	frame    time.Duration
	schedule func(func())
	onFrame  func()
	now      func() time.Time
}

// New creates an empty Timeline.
func New(opts ...Option) (*Timeline, error) {
	t := &Timeline{
		frame: time.Second / 60,
		now:   time.Now,
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, errors.Wrap(err, "motion: invalid timeline option")
		}
	}
	return t, nil
}

// Add appends effects and returns the timeline for chaining.
func (t *Timeline) Add(effects ...Effect) *Timeline {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, e := range effects {
		if e != nil {
			t.effects = append(t.effects, e)
		}
	}
	return t
}

// Len returns the number of effects.
func (t *Timeline) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.effects)
}

// Duration returns the span of the longest effect.
func (t *Timeline) Duration() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.durationLocked()
}

func (t *Timeline) durationLocked() time.Duration {
	var d time.Duration
	for _, e := range t.effects {
		if ed := e.Duration(); ed > d {
			d = ed
		}
	}
	return d
}

// Running reports whether a run is in progress.
func (t *Timeline) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Seek writes every effect's state at elapsed time. It does not affect a
// run in progress.
func (t *Timeline) Seek(elapsed time.Duration) {
	t.mu.Lock()
	effects := make([]Effect, len(t.effects))
	copy(effects, t.effects)
	t.mu.Unlock()

	for _, e := range effects {
		e.Seek(elapsed)
	}
}

// Replay restarts the timeline from its beginning.
func (t *Timeline) Replay() {
	t.mu.Lock()
	t.stopLocked()
	stop := make(chan struct{})
	t.stopCh = stop
	t.running = true
	t.run++
	gen := t.run
	total := t.durationLocked()
	t.mu.Unlock()

	debug.Log("Timeline.Replay: run %d, duration %s", gen, total)
	t.post(gen, 0)
	go t.loop(gen, total, stop)
}

// Stop halts the active run, leaving targets where they are.
func (t *Timeline) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
	t.run++ // drop frames already handed to the scheduler
}

func (t *Timeline) stopLocked() {
	if t.stopCh != nil {
		close(t.stopCh)
		t.stopCh = nil
	}
	t.running = false
}

func (t *Timeline) loop(gen uint64, total time.Duration, stop <-chan struct{}) {
	start := t.now()
	ticker := time.NewTicker(t.frame)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			elapsed := t.now().Sub(start)
			done := elapsed >= total
			if done {
				elapsed = total
			}
			t.post(gen, elapsed)
			if done {
				t.finish(gen)
				return
			}
		}
	}
}

// post runs a frame step for run gen, through the scheduler if any.
func (t *Timeline) post(gen uint64, elapsed time.Duration) {
	step := func() {
		if !t.current(gen) {
			return
		}
		t.Seek(elapsed)
		if t.onFrame != nil {
			t.onFrame()
		}
	}
	if t.schedule != nil {
		t.schedule(step)
		return
	}
	step()
}

func (t *Timeline) current(gen uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.run == gen
}

func (t *Timeline) finish(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.run == gen {
		t.running = false
		t.stopCh = nil
	}
}
