package widget

import (
	"context"
	"fmt"

	clap "github.com/grindlemire/go-clap"
)

// Clap is a mounted clap widget: the button and its three children.
type Clap struct {
	Button *Button
	Icon   *Icon
	Count  *CountLabel
	Total  *TotalLabel
}

// Click claps.
func (w *Clap) Click() {
	w.Button.Click()
}

// Draw implements Component.
func (w *Clap) Draw(c *Canvas, cx, cy int) {
	w.Button.Draw(c, cx, cy)
}

func refKey(role clap.Role) clap.Attrs {
	return clap.Attrs{clap.AttrRefKey: string(role)}
}

// Explicit mounts a widget whose subcomponents are wired through the
// controller's prop getters. Nothing is shared implicitly: each child gets
// exactly the props it draws from.
func Explicit(ctl *clap.Controller, register Register, onClick clap.Handler) *Clap {
	icon := NewIcon(func() bool { return ctl.State().IsClicked })
	count := NewCountLabel(func() clap.Props {
		return ctl.CounterProps(clap.Props{Attrs: refKey(clap.RoleCountLabel)})
	}, register)
	total := NewTotalLabel(func() clap.Props {
		return ctl.TotalProps(clap.Props{Attrs: refKey(clap.RoleTotalLabel)})
	}, register)
	button := NewButton(func() clap.Props {
		return ctl.TogglerProps(clap.Props{OnClick: onClick, Attrs: refKey(clap.RoleToggle)})
	}, register, icon, count, total)

	return &Clap{Button: button, Icon: icon, Count: count, Total: total}
}

// IconFrom mounts an Icon that reads IsClicked from the scope in ctx.
func IconFrom(ctx context.Context) *Icon {
	s := clap.MustScope(ctx)
	return NewIcon(func() bool { return s.State().IsClicked })
}

// CountLabelFrom mounts a CountLabel fed by the scope in ctx.
func CountLabelFrom(ctx context.Context) *CountLabel {
	s := clap.MustScope(ctx)
	return NewCountLabel(func() clap.Props {
		return clap.Props{Attrs: clap.Merge(refKey(clap.RoleCountLabel), clap.Attrs{
			clap.AttrCount: s.State().Count,
		})}
	}, s.Register)
}

// TotalLabelFrom mounts a TotalLabel fed by the scope in ctx.
func TotalLabelFrom(ctx context.Context) *TotalLabel {
	s := clap.MustScope(ctx)
	return NewTotalLabel(func() clap.Props {
		return clap.Props{Attrs: clap.Merge(refKey(clap.RoleTotalLabel), clap.Attrs{
			clap.AttrCountTotal: s.State().CountTotal,
		})}
	}, s.Register)
}

// ButtonFrom mounts a Button that claps the scope's controller and then
// runs onClick.
func ButtonFrom(ctx context.Context, onClick clap.Handler, children ...Component) *Button {
	s := clap.MustScope(ctx)
	return NewButton(func() clap.Props {
		return clap.Props{
			OnClick: clap.Chain(s.Controller.Increment, onClick),
			Attrs: clap.Merge(refKey(clap.RoleToggle), clap.Attrs{
				clap.AttrAriaPressed: s.State().IsClicked,
			}),
		}
	}, s.Register, children...)
}

// Implicit mounts a widget whose subcomponents find the controller and the
// registration callback through the scope carried by ctx.
func Implicit(ctx context.Context, onClick clap.Handler) *Clap {
	icon := IconFrom(ctx)
	count := CountLabelFrom(ctx)
	total := TotalLabelFrom(ctx)
	button := ButtonFrom(ctx, onClick, icon, count, total)
	return &Clap{Button: button, Icon: icon, Count: count, Total: total}
}

// ResetBar is the reset control drawn under the widget.
type ResetBar struct {
	props func() clap.Props
}

// NewResetBar creates a ResetBar that resets ctl and then runs onClick.
func NewResetBar(ctl *clap.Controller, onClick clap.Handler) *ResetBar {
	return &ResetBar{props: func() clap.Props {
		return ctl.ResetterProps(clap.Props{OnClick: onClick})
	}}
}

// Click runs the reset handler.
func (r *ResetBar) Click() {
	r.props().Click()
}

// Draw implements Component. cy is the row the bar sits on.
func (r *ResetBar) Draw(c *Canvas, cx, cy int) {
	c.SetStringCentered(cx, cy, "[ reset ]", Style{}.Foreground(colorLabel))
}

// Help is the key legend drawn under the widget.
const Help = "[space] clap   [r] reset   [q] quit"

// DrawStatus draws the key legend and the state dump starting at row y.
func DrawStatus(c *Canvas, y int, s clap.State) {
	c.SetString(1, y, Help, Style{}.Dim())
	c.SetString(1, y+1, s.JSON(), Style{})
	if s.Count > 0 {
		c.SetString(1, y+2, fmt.Sprintf("You have clapped %d times", s.Count), Style{}.Foreground(colorAccent))
	}
}
