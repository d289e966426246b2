package clap

import (
	"sync"

	"github.com/grindlemire/go-clap/internal/debug"
	"github.com/grindlemire/go-clap/pkg/motion"
)

// Role names the part of the widget an anchor element plays.
type Role string

// The three roles the animation needs.
const (
	RoleToggle     Role = "toggle"
	RoleCountLabel Role = "countLabel"
	RoleTotalLabel Role = "totalLabel"
)

// Roles lists every role required for a complete set of anchors.
var Roles = []Role{RoleToggle, RoleCountLabel, RoleTotalLabel}

// Anchors holds the elements registered for each Role. Registration order
// does not matter and the last registration for a role wins. Thread-safe.
type Anchors struct {
	mu       sync.RWMutex
	elems    map[Role]motion.Target
	watchers []*anchorWatcher
}

type anchorWatcher struct {
	fn     func(*Anchors)
	active bool
}

// NewAnchors creates an empty Anchors.
func NewAnchors() *Anchors {
	return &Anchors{elems: make(map[Role]motion.Target)}
}

// Register stores t under role and notifies change watchers. A nil target
// removes the role.
func (a *Anchors) Register(role Role, t motion.Target) {
	a.mu.Lock()
	if t == nil {
		delete(a.elems, role)
	} else {
		a.elems[role] = t
	}
	watchers := make([]*anchorWatcher, 0, len(a.watchers))
	for _, w := range a.watchers {
		if w.active {
			watchers = append(watchers, w)
		}
	}
	a.watchers = watchers
	n := len(a.elems)
	a.mu.Unlock()

	debug.Log("Anchors.Register: role=%s registered=%d", role, n)
	for _, w := range watchers {
		w.fn(a)
	}
}

// Setter returns a ref callback that registers its argument under role.
func (a *Anchors) Setter(role Role) func(motion.Target) {
	return func(t motion.Target) {
		a.Register(role, t)
	}
}

// Get returns the element for role, or nil if not registered.
func (a *Anchors) Get(role Role) motion.Target {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.elems[role]
}

// Complete reports whether every role in Roles is registered.
func (a *Anchors) Complete() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, r := range Roles {
		if a.elems[r] == nil {
			return false
		}
	}
	return true
}

// All returns a copy of the registered elements.
func (a *Anchors) All() map[Role]motion.Target {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make(map[Role]motion.Target, len(a.elems))
	for k, v := range a.elems {
		out[k] = v
	}
	return out
}

// Len returns the number of registered roles.
func (a *Anchors) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.elems)
}

// OnChange registers fn to run after every Register call.
func (a *Anchors) OnChange(fn func(*Anchors)) Unbind {
	a.mu.Lock()
	w := &anchorWatcher{fn: fn, active: true}
	a.watchers = append(a.watchers, w)
	a.mu.Unlock()

	return func() {
		a.mu.Lock()
		w.active = false
		a.mu.Unlock()
	}
}
