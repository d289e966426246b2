package motion

import (
	"math"
	"time"
)

// Default burst shape parameters.
const (
	DefaultBurstCount = 5
	ShapeCircle       = "circle"
	ShapePolygon      = "polygon"
)

// ChildOptions configures the particles of a Burst.
type ChildOptions struct {
	Shape       string
	Radius      Delta
	Fill        string
	Stroke      string
	StrokeWidth float64
	// Angle rotates each particle's own shape, in degrees.
	Angle    float64
	Delay    time.Duration
	Duration time.Duration
	Easing   Easing
}

// BurstOptions configures a Burst.
type BurstOptions struct {
	// Name identifies the burst to its parent's SetParticles.
	Name   string
	Parent Target
	// Radius is the distance of particles from the center over time.
	Radius Delta
	Count  int
	// Angle rotates the whole burst, in degrees. Zero points the first
	// particle straight up.
	Angle float64
	// Duration of the radius expansion. Zero uses the children's duration.
	Duration time.Duration
	Children ChildOptions
}

// Burst fans Count particles out around Parent.
type Burst struct {
	opts BurstOptions
}

// NewBurst creates a Burst, filling in defaults.
func NewBurst(opts BurstOptions) *Burst {
	if opts.Count <= 0 {
		opts.Count = DefaultBurstCount
	}
	if opts.Children.Shape == "" {
		opts.Children.Shape = ShapeCircle
	}
	if opts.Children.Easing == nil {
		opts.Children.Easing = Linear
	}
	if opts.Duration == 0 {
		opts.Duration = opts.Children.Duration
	}
	return &Burst{opts: opts}
}

// Name returns the burst name.
func (b *Burst) Name() string { return b.opts.Name }

// Duration returns the time at which both the expansion and the children end.
func (b *Burst) Duration() time.Duration {
	children := b.opts.Children.Delay + b.opts.Children.Duration
	if b.opts.Duration > children {
		return b.opts.Duration
	}
	return children
}

// Particles computes particle positions at the given elapsed time.
func (b *Burst) Particles(elapsed time.Duration) []Particle {
	c := b.opts.Children
	r := b.opts.Radius.At(progress(elapsed, b.opts.Duration))
	childR := c.Radius.At(c.Easing(progress(elapsed-c.Delay, c.Duration)))

	out := make([]Particle, b.opts.Count)
	step := 360.0 / float64(b.opts.Count)
	for i := range out {
		rad := (b.opts.Angle + step*float64(i)) * math.Pi / 180
		out[i] = Particle{
			Shape:  c.Shape,
			X:      r * math.Sin(rad),
			Y:      -r * math.Cos(rad),
			Radius: childR,
			Fill:   c.Fill,
			Stroke: c.Stroke,
		}
	}
	return out
}

// Seek sends the particles for elapsed to the parent.
func (b *Burst) Seek(elapsed time.Duration) {
	pt, ok := b.opts.Parent.(ParticleTarget)
	if !ok {
		return
	}
	pt.SetParticles(b.opts.Name, b.Particles(elapsed))
}
