package main

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	clap "github.com/grindlemire/go-clap"
	"github.com/grindlemire/go-clap/internal/debug"
	"github.com/grindlemire/go-clap/internal/term"
	"github.com/grindlemire/go-clap/internal/widget"
	"github.com/grindlemire/go-clap/pkg/motion"
)

// eventQueueSize is the capacity of the loop's update queue.
const eventQueueSize = 256

// screen is where frames go. *term.Terminal satisfies it.
type screen interface {
	Size() (width, height int)
	Draw(frame string) error
}

// app owns the mounted widget and runs everything that touches it on a
// single loop goroutine.
type app struct {
	cfg    config
	screen screen
	canvas *widget.Canvas

	ctl      *clap.Controller
	anchors  *clap.Anchors
	animator *clap.Animator
	widget   *widget.Clap
	reset    *widget.ResetBar
	unbind   clap.Unbind

	eventQueue chan func()
	stopCh     chan struct{}
	stopOnce   sync.Once
	dirty      atomic.Bool
	frame      time.Duration
}

func newApp(cfg config, scr screen) (*app, error) {
	if cfg.fps < 1 {
		return nil, errors.Errorf("fps must be at least 1, got %d", cfg.fps)
	}
	a := &app{
		cfg:        cfg,
		screen:     scr,
		eventQueue: make(chan func(), eventQueueSize),
		stopCh:     make(chan struct{}),
		frame:      time.Second / time.Duration(cfg.fps),
	}

	opts := append(cfg.controllerOptions(), clap.WithOnClap(func(s clap.State) {
		debug.Logger().Debug().
			Int("count", s.Count).
			Int("countTotal", s.CountTotal).
			Msg("clap")
	}))
	ctl, err := clap.New(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create controller")
	}
	a.ctl = ctl
	a.anchors = clap.NewAnchors()

	animator, err := clap.NewAnimator(a.anchors, clap.WithTimelineOptions(
		motion.WithFrameRate(cfg.fps),
		motion.WithScheduler(a.queueUpdate),
		motion.WithOnFrame(a.markDirty),
	))
	if err != nil {
		return nil, errors.Wrap(err, "create animator")
	}
	a.animator = animator

	a.widget = a.mount()
	a.reset = widget.NewResetBar(ctl, func() {
		debug.Log("clap: reset to %s", a.ctl.Initial().JSON())
	})

	// The animation follows the count, so a clap refused at the maximum
	// does not replay it.
	last := ctl.State().Count
	a.unbind = ctl.ObserveAfterMount(func(s clap.State) {
		if s.Count == last {
			return
		}
		last = s.Count
		a.animator.Replay()
		a.markDirty()
	})
	return a, nil
}

// mount builds the widget tree, registering its anchors.
func (a *app) mount() *widget.Clap {
	onClick := func() {
		debug.Log("clap: clicked, state %s", a.ctl.State().JSON())
	}
	if a.cfg.pattern == patternContext {
		ctx := clap.WithScope(context.Background(), clap.NewScope(a.ctl, a.anchors))
		return widget.Implicit(ctx, onClick)
	}
	return widget.Explicit(a.ctl, a.anchors.Register, onClick)
}

// queueUpdate enqueues fn to run on the loop. Safe to call from any
// goroutine, including the loop itself; updates are dropped when full.
func (a *app) queueUpdate(fn func()) {
	select {
	case a.eventQueue <- fn:
	case <-a.stopCh:
	default:
		debug.Log("app: event queue full, dropping update")
	}
}

func (a *app) markDirty() {
	a.dirty.Store(true)
}

// stop ends the loop. It is idempotent.
func (a *app) stop() {
	a.stopOnce.Do(func() { close(a.stopCh) })
}

// handleKey maps a key press onto the widget. Runs on the loop.
func (a *app) handleKey(ev term.KeyEvent) {
	switch {
	case ev.Is(term.KeyCtrlC), ev.Char() == 'q':
		a.stop()
		return
	case ev.Is(term.KeyEnter), ev.Char() == ' ':
		a.widget.Click()
	case ev.Char() == 'r':
		a.reset.Click()
	default:
		return
	}
	a.markDirty()
}

// render draws one frame: the widget centered, the reset bar and status
// under it.
func (a *app) render() error {
	w, h := a.screen.Size()
	if a.canvas == nil || a.canvas.Width() != w || a.canvas.Height() != h {
		a.canvas = widget.NewCanvas(w, h)
	} else {
		a.canvas.Clear()
	}

	cx, cy := w/2, h/2
	a.widget.Draw(a.canvas, cx, cy)
	a.reset.Draw(a.canvas, cx, cy+6)
	widget.DrawStatus(a.canvas, cy+7, a.ctl.State())
	return a.screen.Draw(a.canvas.ANSI())
}

// run is the main loop. It returns when ctx is done, the keys channel
// closes, or a quit key is pressed.
func (a *app) run(ctx context.Context, keys <-chan term.KeyEvent) error {
	defer a.close()

	if err := a.render(); err != nil {
		return err
	}

	ticker := time.NewTicker(a.frame)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-a.stopCh:
			return nil
		case ev, ok := <-keys:
			if !ok {
				return nil
			}
			a.handleKey(ev)
		case fn := <-a.eventQueue:
			fn()
		case <-ticker.C:
			if a.dirty.CompareAndSwap(true, false) {
				if err := a.render(); err != nil {
					return err
				}
			}
		}
	}
}

func (a *app) close() {
	a.stop()
	if a.unbind != nil {
		a.unbind()
	}
	a.animator.Close()
}
