package clap

// Attribute keys set by the prop getters.
const (
	AttrAriaPressed  = "aria-pressed"
	AttrAriaValueMin = "aria-valuemin"
	AttrAriaValueMax = "aria-valuemax"
	AttrAriaValueNow = "aria-valuenow"
	AttrCount        = "count"
	AttrCountTotal   = "countTotal"
	// AttrRefKey carries the anchor Role an element registers under.
	AttrRefKey = "data-refkey"
)

// Handler is an event callback such as a click.
type Handler func()

// Chain returns a Handler that calls each non-nil handler in order. Panics
// are not recovered; a panicking handler stops the ones after it.
func Chain(fns ...Handler) Handler {
	return func() {
		for _, fn := range fns {
			if fn != nil {
				fn()
			}
		}
	}
}

// Attrs is a bag of plain element attributes.
type Attrs map[string]any

// Merge returns a new Attrs holding base with overrides applied on top.
// Neither input is modified.
func Merge(base, overrides Attrs) Attrs {
	out := make(Attrs, len(base)+len(overrides))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// Props is what a prop getter returns: attributes plus an optional click
// handler. Passed to a getter, it is the caller's overrides.
type Props struct {
	OnClick Handler
	Attrs   Attrs
}

// Bool returns the attribute as a bool, or false if missing or not a bool.
func (p Props) Bool(key string) bool {
	v, _ := p.Attrs[key].(bool)
	return v
}

// Int returns the attribute as an int, or 0 if missing or not an int.
func (p Props) Int(key string) int {
	v, _ := p.Attrs[key].(int)
	return v
}

// String returns the attribute as a string, or "" if missing or not a string.
func (p Props) String(key string) string {
	v, _ := p.Attrs[key].(string)
	return v
}

// Click invokes OnClick if set.
func (p Props) Click() {
	if p.OnClick != nil {
		p.OnClick()
	}
}

// TogglerProps returns the props for the element that claps. OnClick is the
// increment transition chained with overrides.OnClick (increment first).
// aria-pressed mirrors IsClicked. Override attributes win on collision, but
// the click handler is always composed, never replaced.
func (c *Controller) TogglerProps(overrides Props) Props {
	s := c.State()
	return Props{
		OnClick: Chain(c.Increment, overrides.OnClick),
		Attrs: Merge(Attrs{
			AttrAriaPressed: s.IsClicked,
		}, overrides.Attrs),
	}
}

// CounterProps returns the props for the element showing the count, with
// the aria-value* trio describing the count's range.
func (c *Controller) CounterProps(overrides Props) Props {
	s := c.State()
	return Props{
		OnClick: overrides.OnClick,
		Attrs: Merge(Attrs{
			AttrCount:        s.Count,
			AttrAriaValueMin: 0,
			AttrAriaValueMax: c.max,
			AttrAriaValueNow: s.Count,
		}, overrides.Attrs),
	}
}

// TotalProps returns the props for the element showing the running total.
func (c *Controller) TotalProps(overrides Props) Props {
	s := c.State()
	return Props{
		OnClick: overrides.OnClick,
		Attrs: Merge(Attrs{
			AttrCountTotal: s.CountTotal,
		}, overrides.Attrs),
	}
}

// ResetterProps returns the props for an element that resets the
// controller. OnClick is Reset chained with overrides.OnClick.
func (c *Controller) ResetterProps(overrides Props) Props {
	return Props{
		OnClick: Chain(c.Reset, overrides.OnClick),
		Attrs:   Merge(nil, overrides.Attrs),
	}
}
