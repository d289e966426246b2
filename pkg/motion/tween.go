package motion

import "time"

// HtmlOptions configures one segment of a Tween.
type HtmlOptions struct {
	// Duration of the segment. A chained segment with zero Duration
	// inherits the previous segment's.
	Duration time.Duration
	// Delay before the segment starts, measured from the end of the
	// previous segment (or from the timeline start for the first one).
	Delay time.Duration
	// Easing applied to progress. Nil means Linear.
	Easing Easing
	Props  Props
}

type segment struct {
	start    time.Duration
	duration time.Duration
	easing   Easing
	props    Props
}

// Tween animates properties of a single Target through one or more
// sequential segments.
type Tween struct {
	target   Target
	segments []segment
}

// Html creates a Tween on target with a single segment.
func Html(target Target, opts HtmlOptions) *Tween {
	t := &Tween{target: target}
	t.append(opts)
	return t
}

// Then appends a segment that starts after the current last segment ends.
// Deltas built with To continue from the previous segment's end value.
func (t *Tween) Then(opts HtmlOptions) *Tween {
	t.append(opts)
	return t
}

func (t *Tween) append(opts HtmlOptions) {
	var start time.Duration
	var prev *segment
	if n := len(t.segments); n > 0 {
		prev = &t.segments[n-1]
		start = prev.start + prev.duration
		if opts.Duration == 0 {
			opts.Duration = prev.duration
		}
	}

	props := make(Props, len(opts.Props))
	for name, d := range opts.Props {
		if d.FromCurrent {
			d.From = d.To
			if prev != nil {
				if pd, ok := prev.props[name]; ok {
					d.From = pd.To
				}
			}
			d.FromCurrent = false
		}
		props[name] = d
	}

	easing := opts.Easing
	if easing == nil {
		easing = Linear
	}

	t.segments = append(t.segments, segment{
		start:    start + opts.Delay,
		duration: opts.Duration,
		easing:   easing,
		props:    props,
	})
}

// Duration returns the time at which the last segment ends.
func (t *Tween) Duration() time.Duration {
	if len(t.segments) == 0 {
		return 0
	}
	last := t.segments[len(t.segments)-1]
	return last.start + last.duration
}

// Seek writes the property values for the given elapsed time.
// Before the first segment starts its From values are held; a later
// segment leaves the target alone until it starts.
func (t *Tween) Seek(elapsed time.Duration) {
	if t.target == nil {
		return
	}
	for i, seg := range t.segments {
		if elapsed < seg.start && i > 0 {
			continue
		}
		p := progress(elapsed-seg.start, seg.duration)
		eased := seg.easing(p)
		for name, d := range seg.props {
			t.target.SetProperty(name, d.At(eased))
		}
	}
}

// progress returns elapsed/duration clamped to [0,1].
func progress(elapsed, duration time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	if duration <= 0 || elapsed >= duration {
		return 1
	}
	return float64(elapsed) / float64(duration)
}
