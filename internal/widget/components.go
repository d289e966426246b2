package widget

import (
	"fmt"
	"math"
	"sort"
	"sync"

	clap "github.com/grindlemire/go-clap"
	"github.com/grindlemire/go-clap/pkg/motion"
)

// Colors used by the widget (256-color palette).
const (
	colorAccent   uint8 = 166 // orange, the "checked" look
	colorParticle uint8 = 246 // grey
	colorLabel    uint8 = 39  // blue
)

// Register is an anchor registration callback, such as
// (*clap.Anchors).Register or (*clap.Scope).Register.
type Register func(clap.Role, motion.Target)

// Component is anything drawn relative to the center of the clap button.
type Component interface {
	Draw(c *Canvas, cx, cy int)
}

// ref registers el under the role named by the props' data-refkey, the way
// a mounted element hands itself to a ref callback.
func ref(props clap.Props, register Register, el motion.Target) {
	role := props.String(clap.AttrRefKey)
	if role == "" || register == nil {
		return
	}
	register(clap.Role(role), el)
}

// Icon is the clap glyph inside the button.
type Icon struct {
	clicked func() bool
}

// NewIcon creates an Icon. clicked reports whether to draw the checked look.
func NewIcon(clicked func() bool) *Icon {
	return &Icon{clicked: clicked}
}

// Draw implements Component.
func (i *Icon) Draw(c *Canvas, cx, cy int) {
	style := Style{}.Dim()
	if i.clicked != nil && i.clicked() {
		style = Style{}.Foreground(colorAccent).Bold()
	}
	c.SetStringCentered(cx, cy, `\\|//`, style)
}

// CountLabel shows "+ N" above the button. It starts invisible; the clap
// animation fades it in and floats it up.
type CountLabel struct {
	element
	props func() clap.Props
}

// NewCountLabel creates a CountLabel and registers it under its data-refkey.
func NewCountLabel(props func() clap.Props, register Register) *CountLabel {
	l := &CountLabel{props: props}
	l.init(0)
	ref(props(), register, l)
	return l
}

// Draw implements Component.
func (l *CountLabel) Draw(c *Canvas, cx, cy int) {
	lk := l.look()
	if lk.hidden {
		return
	}
	text := fmt.Sprintf("+ %d", l.props().Int(clap.AttrCount))
	c.SetStringCentered(cx+lk.dx, cy-4+lk.dy, text, lk.style(Style{}.Foreground(colorLabel).Bold()))
}

// TotalLabel shows the running total above the button, appearing late in
// the clap animation.
type TotalLabel struct {
	element
	props func() clap.Props
}

// NewTotalLabel creates a TotalLabel and registers it under its data-refkey.
func NewTotalLabel(props func() clap.Props, register Register) *TotalLabel {
	l := &TotalLabel{props: props}
	l.init(0)
	ref(props(), register, l)
	return l
}

// Draw implements Component.
func (l *TotalLabel) Draw(c *Canvas, cx, cy int) {
	lk := l.look()
	if lk.hidden {
		return
	}
	text := fmt.Sprintf("%d", l.props().Int(clap.AttrCountTotal))
	c.SetStringCentered(cx+lk.dx, cy-3+lk.dy, text, lk.style(Style{}))
}

// Button is the clap toggle. It pulses with the scale property, hosts the
// particle bursts, and draws its children inside and around it.
type Button struct {
	element
	props    func() clap.Props
	children []Component

	pmu       sync.Mutex
	particles map[string][]motion.Particle
}

// NewButton creates a Button and registers it under its data-refkey.
func NewButton(props func() clap.Props, register Register, children ...Component) *Button {
	b := &Button{
		props:     props,
		children:  children,
		particles: make(map[string][]motion.Particle),
	}
	b.init(1)
	ref(props(), register, b)
	return b
}

// SetParticles implements motion.ParticleTarget.
func (b *Button) SetParticles(burst string, ps []motion.Particle) {
	b.pmu.Lock()
	defer b.pmu.Unlock()
	b.particles[burst] = ps
}

// Click runs the button's click handler.
func (b *Button) Click() {
	b.props().Click()
}

// Pressed reports the button's aria-pressed attribute.
func (b *Button) Pressed() bool {
	return b.props().Bool(clap.AttrAriaPressed)
}

// Draw implements Component.
func (b *Button) Draw(c *Canvas, cx, cy int) {
	b.drawParticles(c, cx, cy)

	lk := b.look()
	halfW := int(math.Round(6 * lk.scale))
	halfH := int(math.Round(1 * lk.scale))
	if halfH < 1 {
		halfH = 1
	}

	border := Style{}
	if b.Pressed() {
		border = border.Foreground(colorAccent)
	}
	left, right := cx-halfW, cx+halfW
	top, bottom := cy-halfH, cy+halfH
	for x := left + 1; x < right; x++ {
		c.SetRune(x, top, '-', border)
		c.SetRune(x, bottom, '-', border)
	}
	for y := top + 1; y < bottom; y++ {
		c.SetRune(left, y, '|', border)
		c.SetRune(right, y, '|', border)
	}
	c.SetRune(left, top, '.', border)
	c.SetRune(right, top, '.', border)
	c.SetRune(left, bottom, '\'', border)
	c.SetRune(right, bottom, '\'', border)

	for _, child := range b.children {
		child.Draw(c, cx, cy)
	}
}

func (b *Button) drawParticles(c *Canvas, cx, cy int) {
	b.pmu.Lock()
	names := make([]string, 0, len(b.particles))
	for name := range b.particles {
		names = append(names, name)
	}
	sort.Strings(names)
	bursts := make([][]motion.Particle, 0, len(names))
	for _, name := range names {
		bursts = append(bursts, b.particles[name])
	}
	b.pmu.Unlock()

	for _, ps := range bursts {
		for _, p := range ps {
			if p.Radius < 0.5 {
				continue
			}
			r, style := '*', Style{}.Foreground(colorParticle)
			if p.Shape == motion.ShapePolygon {
				r, style = '^', Style{}.Foreground(colorAccent)
			}
			c.SetRune(cx+toCols(p.X), cy+toRows(p.Y), r, style)
		}
	}
}
