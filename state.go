// Package clap provides the core of the clap counter widget.
//
// Controller is a bounded counter state machine. It owns a State record and
// changes it only through Increment and Reset. Consumers never hold the
// record itself: they read snapshots, subscribe with Observe, and wire their
// elements through prop getters (TogglerProps, CounterProps) that return
// plain attribute bags with composable handlers.
//
// Example usage:
//
//	c, err := clap.New(clap.WithMax(50), clap.WithOnClap(func(s clap.State) {
//	    fmt.Println("clapped", s.Count)
//	}))
//	if err != nil {
//	    return err
//	}
//	props := c.TogglerProps(clap.Props{OnClick: logClick})
//	props.OnClick() // increments, then calls logClick
//
// Thread Safety Rules:
//   - State() and the prop getters are safe to call from any goroutine
//   - Increment() and Reset() should be called from the host event loop
//   - Observers and OnClap run on the goroutine that made the transition
package clap

import (
	"math/rand"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/oklog/ulid/v2"

	"github.com/grindlemire/go-clap/internal/debug"
)

// DefaultMax is the default maximum number of claps per user.
const DefaultMax = 50

// State is the clap record. It is a value type; every snapshot is a copy.
type State struct {
	Count      int  `json:"count"`
	CountTotal int  `json:"countTotal"`
	IsClicked  bool `json:"isClicked"`
}

// JSON returns the record in its wire form,
// {"count":N,"countTotal":N,"isClicked":B}.
func (s State) JSON() string {
	b, err := json.Marshal(s)
	if err != nil {
		// A struct of ints and a bool cannot fail to encode.
		panic(err)
	}
	return string(b)
}

// Unbind is a handle to remove an observer. Call it to prevent future
// callback invocations.
type Unbind func()

// observer is a registered callback that fires after each transition.
type observer struct {
	fn     func(State)
	active bool
}

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
)

func newID() ulid.ULID {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy)
}

// Controller is the bounded counter state machine.
type Controller struct {
	mu        sync.RWMutex
	id        ulid.ULID
	max       int
	initial   State
	state     State
	observers []*observer
	onClap    func(State)
}

// New creates a Controller. With no options the initial state is
// {0, 0, false} and the maximum is DefaultMax.
//
// The initial state is validated against the maximum: a negative count, a
// count above the maximum, or a total below the count is an error.
func New(opts ...Option) (*Controller, error) {
	c := &Controller{
		id:  newID(),
		max: DefaultMax,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if err := validate(c.initial, c.max); err != nil {
		return nil, err
	}
	c.state = c.initial

	debug.Logger().Debug().
		Str("controller", c.id.String()).
		Int("max", c.max).
		Str("initial", c.initial.JSON()).
		Msg("controller created")
	return c, nil
}

// ID returns the controller's unique identifier.
func (c *Controller) ID() string {
	return c.id.String()
}

// Max returns the maximum count.
func (c *Controller) Max() int {
	return c.max
}

// State returns a snapshot of the current record.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Initial returns the record captured at construction.
func (c *Controller) Initial() State {
	return c.initial
}

// Accepted reports whether the next Increment would count.
func (c *Controller) Accepted() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Count < c.max
}

// Increment applies one clap. The count saturates at Max; the total only
// grows while the count is below Max. IsClicked becomes true either way.
//
// After the transition commits, observers run in registration order,
// followed by the OnClap callback. Panics in callbacks propagate.
func (c *Controller) Increment() {
	c.mu.Lock()
	prev := c.state
	next := step(prev, c.max)
	c.state = next
	observers := c.activeObserversLocked()
	onClap := c.onClap
	c.mu.Unlock()

	debug.Logger().Debug().
		Str("controller", c.id.String()).
		Bool("accepted", prev.Count < c.max).
		Str("state", next.JSON()).
		Msg("increment")

	notify(observers, next)
	if onClap != nil {
		onClap(next)
	}
}

// step is the pure increment transition.
func step(s State, limit int) State {
	next := State{
		Count:      s.Count + 1,
		CountTotal: s.CountTotal,
		IsClicked:  true,
	}
	if s.Count < limit {
		next.CountTotal++
	} else {
		next.Count = limit
	}
	return next
}

// Reset restores the record captured at construction and notifies
// observers. OnClap is not called.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.state = c.initial
	observers := c.activeObserversLocked()
	next := c.state
	c.mu.Unlock()

	debug.Logger().Debug().
		Str("controller", c.id.String()).
		Str("state", next.JSON()).
		Msg("reset")

	notify(observers, next)
}

// Observe registers fn and runs it immediately with the current snapshot,
// then again after every committed transition. Wrap fn with AfterMount (or
// use ObserveAfterMount) to skip the immediate run.
func (c *Controller) Observe(fn func(State)) Unbind {
	c.mu.Lock()
	o := &observer{fn: fn, active: true}
	c.observers = append(c.observers, o)
	current := c.state
	c.mu.Unlock()

	fn(current)

	return func() {
		c.mu.Lock()
		o.active = false
		c.mu.Unlock()
	}
}

// ObserveAfterMount registers fn for transitions only; the snapshot present
// at registration is not reported.
func (c *Controller) ObserveAfterMount(fn func(State)) Unbind {
	return c.Observe(AfterMount(fn))
}

// activeObserversLocked prunes unbound observers and returns the live ones.
// Caller must hold c.mu.
func (c *Controller) activeObserversLocked() []*observer {
	active := make([]*observer, 0, len(c.observers))
	for _, o := range c.observers {
		if o.active {
			active = append(active, o)
		}
	}
	c.observers = active
	out := make([]*observer, len(active))
	copy(out, active)
	return out
}

func notify(observers []*observer, s State) {
	for _, o := range observers {
		o.fn(s)
	}
}
