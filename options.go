package clap

import "github.com/pkg/errors"

// Option is a functional option for configuring a Controller.
type Option func(*Controller) error

// WithMax sets the maximum count. Default is DefaultMax. Must be at least 1.
func WithMax(n int) Option {
	return func(c *Controller) error {
		if n < 1 {
			return errors.Errorf("clap: max must be at least 1, got %d", n)
		}
		c.max = n
		return nil
	}
}

// WithInitialState sets the record the controller starts from and returns
// to on Reset. Default is the zero State.
func WithInitialState(s State) Option {
	return func(c *Controller) error {
		c.initial = s
		return nil
	}
}

// WithOnClap sets a callback invoked with the committed snapshot after
// every Increment, accepted or not. It is never called for the initial
// state or for Reset.
func WithOnClap(fn func(State)) Option {
	return func(c *Controller) error {
		c.onClap = fn
		return nil
	}
}

// validate checks an initial state against the maximum.
func validate(s State, limit int) error {
	switch {
	case s.Count < 0:
		return errors.Errorf("clap: initial count %d is negative", s.Count)
	case s.Count > limit:
		return errors.Errorf("clap: initial count %d exceeds max %d", s.Count, limit)
	case s.CountTotal < s.Count:
		return errors.Errorf("clap: initial total %d is below count %d", s.CountTotal, s.Count)
	}
	return nil
}
