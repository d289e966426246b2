package clap

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grindlemire/go-clap/pkg/motion"
)

// recordingTarget is a motion.ParticleTarget that remembers every write.
type recordingTarget struct {
	name string

	mu        sync.Mutex
	props     map[string]float64
	particles map[string][]motion.Particle
}

func newTarget(name string) *recordingTarget {
	return &recordingTarget{
		name:      name,
		props:     make(map[string]float64),
		particles: make(map[string][]motion.Particle),
	}
}

func (r *recordingTarget) SetProperty(name string, v float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.props[name] = v
}

func (r *recordingTarget) SetParticles(burst string, ps []motion.Particle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.particles[burst] = ps
}

func (r *recordingTarget) prop(name string) (float64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.props[name]
	return v, ok
}

func (r *recordingTarget) burst(name string) []motion.Particle {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.particles[name]
}

func TestAnchors_Complete(t *testing.T) {
	type tc struct {
		register []Role
		want     bool
	}

	tests := map[string]tc{
		"empty":              {want: false},
		"toggle only":        {register: []Role{RoleToggle}, want: false},
		"two of three":       {register: []Role{RoleToggle, RoleTotalLabel}, want: false},
		"all three":          {register: []Role{RoleToggle, RoleCountLabel, RoleTotalLabel}, want: true},
		"all three reversed": {register: []Role{RoleTotalLabel, RoleCountLabel, RoleToggle}, want: true},
		"unknown role extra": {register: []Role{"icon", RoleToggle, RoleCountLabel}, want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a := NewAnchors()
			for _, r := range tt.register {
				a.Register(r, newTarget(string(r)))
			}
			assert.Equal(t, tt.want, a.Complete())
			assert.Equal(t, len(tt.register), a.Len())
		})
	}
}

func TestAnchors_LastWriteWins(t *testing.T) {
	a := NewAnchors()
	first, second := newTarget("first"), newTarget("second")

	a.Register(RoleToggle, first)
	a.Register(RoleToggle, second)

	assert.Same(t, second, a.Get(RoleToggle))
	assert.Equal(t, 1, a.Len())
}

func TestAnchors_OrderIndependent(t *testing.T) {
	toggle, count, total := newTarget("toggle"), newTarget("count"), newTarget("total")

	forward := NewAnchors()
	forward.Register(RoleToggle, toggle)
	forward.Register(RoleCountLabel, count)
	forward.Register(RoleTotalLabel, total)

	backward := NewAnchors()
	backward.Register(RoleTotalLabel, total)
	backward.Register(RoleCountLabel, count)
	backward.Register(RoleToggle, toggle)

	assert.Equal(t, forward.All(), backward.All())
}

func TestAnchors_NilUnregisters(t *testing.T) {
	a := NewAnchors()
	a.Register(RoleCountLabel, newTarget("count"))
	a.Register(RoleCountLabel, nil)

	assert.Nil(t, a.Get(RoleCountLabel))
	assert.Equal(t, 0, a.Len())
}

func TestAnchors_Setter(t *testing.T) {
	a := NewAnchors()
	el := newTarget("total")
	a.Setter(RoleTotalLabel)(el)

	assert.Same(t, el, a.Get(RoleTotalLabel))
}

func TestAnchors_AllReturnsCopy(t *testing.T) {
	a := NewAnchors()
	a.Register(RoleToggle, newTarget("toggle"))

	all := a.All()
	delete(all, RoleToggle)
	assert.NotNil(t, a.Get(RoleToggle))
}

func TestAnchors_OnChange(t *testing.T) {
	a := NewAnchors()
	var seen []int
	unbind := a.OnChange(func(a *Anchors) { seen = append(seen, a.Len()) })

	a.Register(RoleToggle, newTarget("toggle"))
	a.Register(RoleCountLabel, newTarget("count"))
	assert.Equal(t, []int{1, 2}, seen)

	unbind()
	a.Register(RoleTotalLabel, newTarget("total"))
	assert.Equal(t, []int{1, 2}, seen)
}
