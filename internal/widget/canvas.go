package widget

import (
	"fmt"
	"strings"
)

// Attr represents text attributes as a bitfield.
type Attr uint8

const (
	// AttrNone represents no text attributes.
	AttrNone Attr = 0
	// AttrBold makes text bold/bright.
	AttrBold Attr = 1 << iota
	// AttrDim makes text dimmed/faint.
	AttrDim
)

// Style combines attributes with a 256-color foreground. Fg 0 is the
// terminal default.
type Style struct {
	Fg    uint8
	Attrs Attr
}

// Bold returns a new Style with the bold attribute set.
func (s Style) Bold() Style {
	s.Attrs |= AttrBold
	return s
}

// Dim returns a new Style with the dim attribute set.
func (s Style) Dim() Style {
	s.Attrs |= AttrDim
	return s
}

// Foreground returns a new Style with the given 256-color index.
func (s Style) Foreground(c uint8) Style {
	s.Fg = c
	return s
}

// sgr returns the escape sequence selecting s, starting from a reset.
func (s Style) sgr() string {
	codes := []string{"0"}
	if s.Attrs&AttrBold != 0 {
		codes = append(codes, "1")
	}
	if s.Attrs&AttrDim != 0 {
		codes = append(codes, "2")
	}
	if s.Fg != 0 {
		codes = append(codes, fmt.Sprintf("38;5;%d", s.Fg))
	}
	return "\x1b[" + strings.Join(codes, ";") + "m"
}

// Cell is a single character cell.
type Cell struct {
	Rune  rune
	Style Style
}

// Canvas is a fixed-size grid of cells. Writes outside it are clipped.
// The widget draws ASCII only, so every rune is one cell wide.
type Canvas struct {
	width, height int
	cells         []Cell
}

// NewCanvas creates a blank canvas.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Canvas{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in cells.
func (c *Canvas) Height() int { return c.height }

// Cell returns the cell at (x, y), or a zero Cell if out of bounds.
func (c *Canvas) Cell(x, y int) Cell {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return Cell{}
	}
	return c.cells[y*c.width+x]
}

// SetRune writes r at (x, y).
func (c *Canvas) SetRune(x, y int, r rune, style Style) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = Cell{Rune: r, Style: style}
}

// SetString writes s starting at (x, y) and returns the number of cells
// advanced.
func (c *Canvas) SetString(x, y int, s string, style Style) int {
	n := 0
	for _, r := range s {
		c.SetRune(x+n, y, r, style)
		n++
	}
	return n
}

// SetStringCentered writes s centered on column cx.
func (c *Canvas) SetStringCentered(cx, y int, s string, style Style) {
	c.SetString(cx-len([]rune(s))/2, y, s, style)
}

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = Cell{}
	}
}

// String returns the canvas text with trailing spaces removed from each
// line. Styles are dropped.
func (c *Canvas) String() string {
	var sb strings.Builder
	for y := 0; y < c.height; y++ {
		var line strings.Builder
		for x := 0; x < c.width; x++ {
			r := c.cells[y*c.width+x].Rune
			if r == 0 {
				r = ' '
			}
			line.WriteRune(r)
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		if y < c.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// ANSI returns the canvas as a full-screen frame: cursor home, every row
// with style changes, rows separated by CRLF for raw-mode terminals.
func (c *Canvas) ANSI() string {
	var sb strings.Builder
	sb.WriteString("\x1b[H")
	for y := 0; y < c.height; y++ {
		current := Style{}
		sb.WriteString(current.sgr())
		for x := 0; x < c.width; x++ {
			cell := c.cells[y*c.width+x]
			if cell.Style != current {
				current = cell.Style
				sb.WriteString(current.sgr())
			}
			r := cell.Rune
			if r == 0 {
				r = ' '
			}
			sb.WriteRune(r)
		}
		sb.WriteString("\x1b[0m\x1b[K")
		if y < c.height-1 {
			sb.WriteString("\r\n")
		}
	}
	return sb.String()
}
