package clap

import (
	"context"

	"github.com/grindlemire/go-clap/pkg/motion"
)

// Scope is the shared state a widget's subcomponents reach implicitly: the
// controller's snapshot and the anchor registration callback. It travels in
// a context.Context so anything built below the provider can find it
// without an explicit reference chain.
type Scope struct {
	Controller *Controller
	Anchors    *Anchors
}

// NewScope creates a Scope over c and a.
func NewScope(c *Controller, a *Anchors) *Scope {
	return &Scope{Controller: c, Anchors: a}
}

// State returns the controller's current snapshot.
func (s *Scope) State() State {
	return s.Controller.State()
}

// Register registers t under role.
func (s *Scope) Register(role Role, t motion.Target) {
	s.Anchors.Register(role, t)
}

type scopeKey struct{}

// WithScope returns a context carrying s.
func WithScope(ctx context.Context, s *Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

// ScopeFrom returns the Scope carried by ctx, if any.
func ScopeFrom(ctx context.Context) (*Scope, bool) {
	s, ok := ctx.Value(scopeKey{}).(*Scope)
	return s, ok && s != nil
}

// MustScope is like ScopeFrom but panics when ctx carries no Scope.
// Subcomponents used outside their widget are a programming error.
func MustScope(ctx context.Context) *Scope {
	s, ok := ScopeFrom(ctx)
	if !ok {
		panic("clap: component used outside of a clap scope; wrap the context with clap.WithScope")
	}
	return s
}
