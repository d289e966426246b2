package motion

import (
	"math"
	"sync"
)

// Easing maps linear progress in [0,1] to eased progress.
// Implementations return exactly 0 at 0 and 1 at 1.
type Easing func(p float64) float64

// Linear is the identity easing.
func Linear(p float64) float64 { return p }

// QuadOut decelerates quadratically.
func QuadOut(p float64) float64 { return 1 - (1-p)*(1-p) }

// CubicOut decelerates cubically.
func CubicOut(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q
}

// CSS-style named curves.
var (
	EaseIn    = Bezier(0.42, 0, 1, 1)
	EaseOut   = Bezier(0, 0, 0.58, 1)
	EaseInOut = Bezier(0.42, 0, 0.58, 1)
)

var (
	easingsMu sync.RWMutex
	easings   = map[string]Easing{
		"linear":     Linear,
		"ease.in":    EaseIn,
		"ease.out":   EaseOut,
		"ease.inout": EaseInOut,
		"quad.out":   QuadOut,
		"cubic.out":  CubicOut,
	}
)

// Lookup returns the easing registered under name.
func Lookup(name string) (Easing, bool) {
	easingsMu.RLock()
	defer easingsMu.RUnlock()
	e, ok := easings[name]
	return e, ok
}

// Register adds or replaces a named easing.
func Register(name string, e Easing) {
	easingsMu.Lock()
	defer easingsMu.Unlock()
	easings[name] = e
}

// Bezier returns a cubic-bezier easing with control points (x1,y1) and
// (x2,y2), matching CSS cubic-bezier(). x1 and x2 should be within [0,1].
func Bezier(x1, y1, x2, y2 float64) Easing {
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx
	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(t float64) float64 { return ((ax*t+bx)*t + cx) * t }
	sampleY := func(t float64) float64 { return ((ay*t+by)*t + cy) * t }
	slopeX := func(t float64) float64 { return (3*ax*t+2*bx)*t + cx }

	const epsilon = 1e-7

	solve := func(x float64) float64 {
		// Newton first, bisection if the slope flattens out.
		t := x
		for i := 0; i < 8; i++ {
			dx := sampleX(t) - x
			if math.Abs(dx) < epsilon {
				return t
			}
			d := slopeX(t)
			if math.Abs(d) < epsilon {
				break
			}
			t -= dx / d
		}

		lo, hi := 0.0, 1.0
		t = x
		for hi-lo > epsilon {
			xt := sampleX(t)
			if math.Abs(xt-x) < epsilon {
				return t
			}
			if x > xt {
				lo = t
			} else {
				hi = t
			}
			t = (lo + hi) / 2
		}
		return t
	}

	return func(p float64) float64 {
		if p <= 0 {
			return 0
		}
		if p >= 1 {
			return 1
		}
		return sampleY(solve(p))
	}
}
