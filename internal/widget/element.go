package widget

import (
	"math"
	"sync"

	"github.com/grindlemire/go-clap/pkg/motion"
)

// Pixel-to-cell ratios used to map animation geometry onto the terminal.
const (
	pixelsPerCol = 8.0
	pixelsPerRow = 16.0
)

// element is the animatable part shared by every component. It satisfies
// motion.Target. Thread-safe, since a timeline may write from its own
// goroutine.
type element struct {
	mu      sync.Mutex
	opacity float64
	x, y    float64
	scale   float64
}

// init sets the resting look: the given opacity, unscaled, not offset.
func (e *element) init(opacity float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.opacity, e.x, e.y, e.scale = opacity, 0, 0, 1
}

// SetProperty implements motion.Target. Unknown properties are ignored.
func (e *element) SetProperty(name string, v float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch name {
	case motion.PropOpacity:
		e.opacity = v
	case motion.PropX:
		e.x = v
	case motion.PropY:
		e.y = v
	case motion.PropScale:
		e.scale = v
	}
}

// look is a consistent snapshot of an element's animated properties.
type look struct {
	opacity float64
	dx, dy  int
	scale   float64
	hidden  bool
	dimmed  bool
}

func (e *element) look() look {
	e.mu.Lock()
	defer e.mu.Unlock()
	return look{
		opacity: e.opacity,
		dx:      toCols(e.x),
		dy:      toRows(e.y),
		scale:   e.scale,
		hidden:  e.opacity < 0.15,
		dimmed:  e.opacity < 0.6,
	}
}

// style applies the element's opacity to s.
func (l look) style(s Style) Style {
	if l.dimmed {
		return s.Dim()
	}
	return s
}

func toCols(px float64) int { return int(math.Round(px / pixelsPerCol)) }
func toRows(px float64) int { return int(math.Round(px / pixelsPerRow)) }
