package clap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChain(t *testing.T) {
	var calls []string
	h := Chain(
		func() { calls = append(calls, "a") },
		nil,
		func() { calls = append(calls, "b") },
	)

	h()
	assert.Equal(t, []string{"a", "b"}, calls)

	h()
	assert.Equal(t, []string{"a", "b", "a", "b"}, calls)
}

func TestChain_PanicStopsLaterHandlers(t *testing.T) {
	called := false
	h := Chain(func() { panic("first") }, func() { called = true })

	assert.Panics(t, func() { h() })
	assert.False(t, called)
}

func TestMerge(t *testing.T) {
	type tc struct {
		base      Attrs
		overrides Attrs
		want      Attrs
	}

	tests := map[string]tc{
		"overrides win": {
			base:      Attrs{"aria-pressed": true, "id": "a"},
			overrides: Attrs{"aria-pressed": false},
			want:      Attrs{"aria-pressed": false, "id": "a"},
		},
		"nil overrides": {
			base: Attrs{"x": 1},
			want: Attrs{"x": 1},
		},
		"nil base": {
			overrides: Attrs{"x": 1},
			want:      Attrs{"x": 1},
		},
		"both nil": {
			want: Attrs{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, Merge(tt.base, tt.overrides))
		})
	}
}

func TestMerge_DoesNotModifyInputs(t *testing.T) {
	base := Attrs{"a": 1}
	overrides := Attrs{"a": 2}
	out := Merge(base, overrides)
	out["b"] = 3

	assert.Equal(t, Attrs{"a": 1}, base)
	assert.Equal(t, Attrs{"a": 2}, overrides)
}

func TestTogglerProps_ComposesClick(t *testing.T) {
	c := mustNew(t)

	var order []string
	c.ObserveAfterMount(func(State) { order = append(order, "increment") })
	props := c.TogglerProps(Props{OnClick: func() { order = append(order, "override") }})

	props.OnClick()
	assert.Equal(t, []string{"increment", "override"}, order)
	assert.Equal(t, 1, c.State().Count)

	props.OnClick()
	assert.Equal(t, []string{"increment", "override", "increment", "override"}, order)
	assert.Equal(t, 2, c.State().Count)
}

func TestTogglerProps_Attrs(t *testing.T) {
	type tc struct {
		clicks    int
		overrides Props
		want      Attrs
	}

	tests := map[string]tc{
		"not pressed before any clap": {
			want: Attrs{AttrAriaPressed: false},
		},
		"pressed after clap": {
			clicks: 1,
			want:   Attrs{AttrAriaPressed: true},
		},
		"override wins on plain attribute": {
			clicks:    1,
			overrides: Props{Attrs: Attrs{AttrAriaPressed: false, AttrRefKey: string(RoleToggle)}},
			want:      Attrs{AttrAriaPressed: false, AttrRefKey: "toggle"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := mustNew(t)
			increment(c, tt.clicks)
			props := c.TogglerProps(tt.overrides)
			assert.Equal(t, tt.want, props.Attrs)
			require.NotNil(t, props.OnClick)
		})
	}
}

func TestTogglerProps_OverrideCannotReplaceIncrement(t *testing.T) {
	c := mustNew(t)
	called := 0
	props := c.TogglerProps(Props{OnClick: func() { called++ }})

	props.Click()
	assert.Equal(t, 1, called)
	assert.Equal(t, 1, c.State().Count)
}

func TestCounterProps(t *testing.T) {
	c := mustNew(t, WithMax(10))
	increment(c, 3)

	props := c.CounterProps(Props{})
	assert.Equal(t, Attrs{
		AttrCount:        3,
		AttrAriaValueMin: 0,
		AttrAriaValueMax: 10,
		AttrAriaValueNow: 3,
	}, props.Attrs)
	assert.Equal(t, 3, props.Int(AttrCount))
	assert.Nil(t, props.OnClick)

	overridden := c.CounterProps(Props{Attrs: Attrs{AttrAriaValueMax: 99, AttrRefKey: "countLabel"}})
	assert.Equal(t, 99, overridden.Int(AttrAriaValueMax))
	assert.Equal(t, "countLabel", overridden.String(AttrRefKey))
	assert.Equal(t, 3, overridden.Int(AttrAriaValueNow))
}

func TestCounterProps_IsASnapshot(t *testing.T) {
	c := mustNew(t)
	props := c.CounterProps(Props{})
	c.Increment()

	assert.Equal(t, 0, props.Int(AttrCount))
	assert.Equal(t, 1, c.CounterProps(Props{}).Int(AttrCount))
}

func TestTotalProps(t *testing.T) {
	c := mustNew(t, WithInitialState(State{CountTotal: 1000, IsClicked: true}))
	c.Increment()

	props := c.TotalProps(Props{Attrs: Attrs{"class": "total"}})
	assert.Equal(t, 1001, props.Int(AttrCountTotal))
	assert.Equal(t, "total", props.String("class"))
}

func TestResetterProps(t *testing.T) {
	c := mustNew(t)
	increment(c, 4)

	after := false
	props := c.ResetterProps(Props{OnClick: func() { after = c.State().Count == 0 }})
	props.Click()

	assert.True(t, after, "override runs after the reset committed")
	assert.Equal(t, State{}, c.State())
}

func TestProps_TypedReadersTolerateMismatch(t *testing.T) {
	p := Props{Attrs: Attrs{"n": "not an int", "b": 1}}
	assert.Equal(t, 0, p.Int("n"))
	assert.False(t, p.Bool("b"))
	assert.Equal(t, "", p.String("missing"))
	assert.NotPanics(t, Props{}.Click)
}
