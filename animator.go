package clap

import (
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/grindlemire/go-clap/internal/debug"
	"github.com/grindlemire/go-clap/pkg/motion"
)

// DefaultDuration is the base duration of the clap animation.
const DefaultDuration = 300 * time.Millisecond

// Burst names passed to the toggle's SetParticles.
const (
	BurstTriangles = "triangles"
	BurstCircles   = "circles"
)

// burstEasing is the fast-out curve shared by both particle bursts.
var burstEasing = motion.Bezier(0.1, 1, 0.3, 1)

// AnimatorOption is a functional option for configuring an Animator.
type AnimatorOption func(*Animator) error

// WithDuration sets the base animation duration. Default is DefaultDuration.
func WithDuration(d time.Duration) AnimatorOption {
	return func(a *Animator) error {
		if d <= 0 {
			return errors.Errorf("clap: animation duration must be positive, got %s", d)
		}
		a.duration = d
		return nil
	}
}

// WithTimelineOptions passes options to every timeline the animator builds.
func WithTimelineOptions(opts ...motion.Option) AnimatorOption {
	return func(a *Animator) error {
		a.tlOpts = append(a.tlOpts, opts...)
		return nil
	}
}

// Animator owns the clap timeline. It watches an Anchors and, each time a
// registration leaves all three roles present, builds a fresh timeline and
// discards the previous one. Until then it holds nothing and Replay is a
// no-op.
type Animator struct {
	mu       sync.Mutex
	timeline *motion.Timeline
	builds   int

	anchors  *Anchors
	duration time.Duration
	tlOpts   []motion.Option
	unbind   Unbind
}

// NewAnimator creates an Animator bound to anchors. If anchors is already
// complete the timeline is built immediately.
func NewAnimator(anchors *Anchors, opts ...AnimatorOption) (*Animator, error) {
	a := &Animator{
		anchors:  anchors,
		duration: DefaultDuration,
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	// Surface bad timeline options now rather than at the first rebuild.
	if _, err := motion.New(a.tlOpts...); err != nil {
		return nil, err
	}

	a.unbind = anchors.OnChange(a.rebuild)
	a.rebuild(anchors)
	return a, nil
}

// rebuild replaces the timeline when anchors is complete.
func (a *Animator) rebuild(anchors *Anchors) {
	if !anchors.Complete() {
		return
	}

	tl, err := a.build(
		anchors.Get(RoleToggle),
		anchors.Get(RoleCountLabel),
		anchors.Get(RoleTotalLabel),
	)
	if err != nil {
		// Options were validated in NewAnimator.
		debug.Log("Animator.rebuild: %v", err)
		return
	}

	a.mu.Lock()
	old := a.timeline
	a.timeline = tl
	a.builds++
	builds := a.builds
	a.mu.Unlock()

	if old != nil {
		old.Stop()
	}
	debug.Log("Animator.rebuild: timeline built (build %d, %d effects)", builds, tl.Len())
}

// build assembles the five clap effects: a scale pulse on the toggle, two
// particle bursts around it, the count label rising then fading, and the
// total label rising after a delay.
func (a *Animator) build(toggle, count, total motion.Target) (*motion.Timeline, error) {
	d := a.duration

	scaleButton := motion.Html(toggle, motion.HtmlOptions{
		Duration: d,
		Easing:   motion.EaseOut,
		Props:    motion.Props{motion.PropScale: motion.Between(1.3, 1)},
	})

	triangleBurst := motion.NewBurst(motion.BurstOptions{
		Name:   BurstTriangles,
		Parent: toggle,
		Radius: motion.Between(50, 95),
		Count:  5,
		Angle:  30,
		Children: motion.ChildOptions{
			Shape:       motion.ShapePolygon,
			Radius:      motion.Between(6, 0),
			Stroke:      "rgba(211,54,0,0.5)",
			StrokeWidth: 2,
			Angle:       210,
			Delay:       30 * time.Millisecond,
			Duration:    d,
			Easing:      burstEasing,
		},
	})

	circleBurst := motion.NewBurst(motion.BurstOptions{
		Name:     BurstCircles,
		Parent:   toggle,
		Radius:   motion.Between(50, 75),
		Angle:    25,
		Duration: d,
		Children: motion.ChildOptions{
			Shape:    motion.ShapeCircle,
			Radius:   motion.Between(3, 0),
			Fill:     "rgba(149,165,165,0.5)",
			Delay:    30 * time.Millisecond,
			Duration: d,
			Easing:   burstEasing,
		},
	})

	countAnimation := motion.Html(count, motion.HtmlOptions{
		Duration: d,
		Props: motion.Props{
			motion.PropOpacity: motion.Between(0, 1),
			motion.PropY:       motion.Between(0, -30),
		},
	}).Then(motion.HtmlOptions{
		Delay: d / 2,
		Props: motion.Props{
			motion.PropOpacity: motion.Between(1, 0),
			motion.PropY:       motion.To(-80),
		},
	})

	totalAnimation := motion.Html(total, motion.HtmlOptions{
		Duration: d,
		Delay:    3 * d / 2,
		Props: motion.Props{
			motion.PropOpacity: motion.Between(0, 1),
			motion.PropY:       motion.Between(0, -3),
		},
	})

	tl, err := motion.New(a.tlOpts...)
	if err != nil {
		return nil, err
	}

	toggle.SetProperty(motion.PropScale, 1)

	return tl.Add(
		scaleButton,
		totalAnimation,
		countAnimation,
		triangleBurst,
		circleBurst,
	), nil
}

// Replay restarts the timeline from the beginning. It does nothing if the
// anchors never completed.
func (a *Animator) Replay() {
	a.mu.Lock()
	tl := a.timeline
	a.mu.Unlock()

	if tl == nil {
		debug.Log("Animator.Replay: no timeline yet")
		return
	}
	tl.Replay()
}

// Timeline returns the current timeline, or nil before the anchors complete.
func (a *Animator) Timeline() *motion.Timeline {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.timeline
}

// Built reports whether a timeline exists.
func (a *Animator) Built() bool {
	return a.Timeline() != nil
}

// Builds returns how many timelines have been built.
func (a *Animator) Builds() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.builds
}

// Close stops the timeline and stops watching the anchors.
func (a *Animator) Close() {
	if a.unbind != nil {
		a.unbind()
	}
	if tl := a.Timeline(); tl != nil {
		tl.Stop()
	}
}
