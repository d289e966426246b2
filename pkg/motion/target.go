package motion

// Well-known property names written by Tween.
const (
	PropOpacity = "opacity"
	PropX       = "x"
	PropY       = "y"
	PropScale   = "scale"
)

// Target receives property writes from running effects.
type Target interface {
	SetProperty(name string, value float64)
}

// ParticleTarget is implemented by targets that can draw burst particles.
// Bursts whose parent does not implement it are silent.
type ParticleTarget interface {
	Target
	SetParticles(burst string, particles []Particle)
}

// Particle is one child of a Burst at a point in time, positioned relative
// to the center of the burst's parent.
type Particle struct {
	Shape  string
	X, Y   float64
	Radius float64
	Fill   string
	Stroke string
}

// Delta is a property transition. A Delta built with To starts from wherever
// the previous segment of the same Tween left the property.
type Delta struct {
	From, To    float64
	FromCurrent bool
}

// Between returns a Delta from one value to another.
func Between(from, to float64) Delta {
	return Delta{From: from, To: to}
}

// To returns a Delta that continues from the current value.
func To(v float64) Delta {
	return Delta{To: v, FromCurrent: true}
}

// At returns the interpolated value at eased progress p.
func (d Delta) At(p float64) float64 {
	return d.From + (d.To-d.From)*p
}

// Props maps property names to transitions.
type Props map[string]Delta
