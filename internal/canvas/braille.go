package canvas

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	brailleBase = 0x2800
	// DotsPerCellX and DotsPerCellY are the braille dot grid of one cell.
	DotsPerCellX = 2
	DotsPerCellY = 4
)

// brailleBits maps a dot offset inside a cell to its bit in the pattern.
var brailleBits = [DotsPerCellY][DotsPerCellX]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

type cell struct {
	mask  uint8
	dot   lipgloss.Color
	text  rune
	wide  bool // right half of a double-width rune
	color lipgloss.Color
}

// Braille is a terminal surface of cols x rows cells. Each cell holds a
// 2x4 braille dot pattern, so the surface measures 2*cols x 4*rows dots.
// Colors are per cell; the last color written to a cell wins. Text
// replaces whatever dots its cells held.
type Braille struct {
	cols  int
	rows  int
	cells []cell
	bg    color.Color
}

// NewBraille creates a blank canvas. Dimensions below 1 are raised to 1.
func NewBraille(cols, rows int) *Braille {
	cols, rows = max(1, cols), max(1, rows)
	return &Braille{
		cols:  cols,
		rows:  rows,
		cells: make([]cell, cols*rows),
	}
}

// Cells returns the canvas size in terminal cells.
func (b *Braille) Cells() (cols, rows int) {
	return b.cols, b.rows
}

// Size returns the canvas size in dots.
func (b *Braille) Size() (w, h float64) {
	return float64(b.cols * DotsPerCellX), float64(b.rows * DotsPerCellY)
}

// Clear wipes every cell.
func (b *Braille) Clear() {
	for i := range b.cells {
		b.cells[i] = cell{}
	}
}

// FillRect sets every dot inside the rectangle. A rectangle covering the
// whole canvas clears it and becomes the background color instead.
func (b *Braille) FillRect(x, y, w, h float64, c color.Color) {
	cw, ch := b.Size()
	if x <= 0 && y <= 0 && x+w >= cw && y+h >= ch {
		b.Clear()
		b.bg = c
		return
	}

	tc := terminalColor(c, b.bg)
	x0, y0 := int(math.Floor(x)), int(math.Floor(y))
	x1, y1 := int(math.Ceil(x+w)), int(math.Ceil(y+h))
	for dy := y0; dy < y1; dy++ {
		for dx := x0; dx < x1; dx++ {
			b.set(dx, dy, tc)
		}
	}
}

// Line draws a one-dot-wide line with Bresenham's algorithm.
func (b *Braille) Line(x1, y1, x2, y2, _ float64, c color.Color) {
	if !finite(x1, y1, x2, y2) {
		return
	}
	tc := terminalColor(c, b.bg)

	ax, ay := round(x1), round(y1)
	bx, by := round(x2), round(y2)

	dx := abs(bx - ax)
	dy := -abs(by - ay)
	sx, sy := 1, 1
	if ax > bx {
		sx = -1
	}
	if ay > by {
		sy = -1
	}
	err := dx + dy

	for {
		b.set(ax, ay, tc)
		if ax == bx && ay == by {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			ax += sx
		}
		if e2 <= dx {
			err += dx
			ay += sy
		}
	}
}

// FillCircle sets every dot within r of the center.
func (b *Braille) FillCircle(cx, cy, r float64, c color.Color) {
	tc := terminalColor(c, b.bg)
	ox, oy := round(cx), round(cy)
	rr := int(math.Ceil(r))
	for dy := -rr; dy <= rr; dy++ {
		for dx := -rr; dx <= rr; dx++ {
			if float64(dx*dx+dy*dy) <= r*r {
				b.set(ox+dx, oy+dy, tc)
			}
		}
	}
}

// Text writes s into the cells starting at the cell containing (x, y).
// Characters past the right edge are dropped.
func (b *Braille) Text(x, y float64, s string, _ float64, c color.Color) {
	col := int(math.Floor(x / DotsPerCellX))
	row := int(math.Floor(y / DotsPerCellY))
	if row < 0 || row >= b.rows {
		return
	}

	tc := terminalColor(c, b.bg)
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col >= 0 && col+w <= b.cols {
			b.cells[row*b.cols+col] = cell{text: r, color: tc}
			if w == 2 {
				b.cells[row*b.cols+col+1] = cell{wide: true, color: tc}
			}
		}
		col += w
	}
}

// TextWidth returns the width of s in dots.
func (b *Braille) TextWidth(s string, _ float64) float64 {
	return float64(runewidth.StringWidth(s) * DotsPerCellX)
}

func (b *Braille) set(x, y int, c lipgloss.Color) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/DotsPerCellX, y/DotsPerCellY
	if col >= b.cols || row >= b.rows {
		return
	}
	cl := &b.cells[row*b.cols+col]
	if cl.text != 0 || cl.wide {
		return
	}
	cl.mask |= brailleBits[y%DotsPerCellY][x%DotsPerCellX]
	cl.dot = c
}

// Dot reports whether the dot at (x, y) is set.
func (b *Braille) Dot(x, y int) bool {
	if x < 0 || y < 0 || x >= b.cols*DotsPerCellX || y >= b.rows*DotsPerCellY {
		return false
	}
	cl := b.cells[(y/DotsPerCellY)*b.cols+x/DotsPerCellX]
	return cl.mask&brailleBits[y%DotsPerCellY][x%DotsPerCellX] != 0
}

// Plain renders the canvas without colors, one line per row.
func (b *Braille) Plain() string {
	lines := make([]string, b.rows)
	for row := 0; row < b.rows; row++ {
		var sb strings.Builder
		for col := 0; col < b.cols; col++ {
			ch, ok := b.cells[row*b.cols+col].glyph()
			if ok {
				sb.WriteRune(ch)
			}
		}
		lines[row] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// String renders the canvas with lipgloss colors. Runs of cells sharing a
// color are styled together.
func (b *Braille) String() string {
	base := lipgloss.NewStyle()
	if b.bg != nil {
		base = base.Background(terminalColor(b.bg, nil))
	}

	lines := make([]string, b.rows)
	for row := 0; row < b.rows; row++ {
		var sb strings.Builder
		var run strings.Builder
		var runColor lipgloss.Color

		flush := func() {
			if run.Len() == 0 {
				return
			}
			style := base
			if runColor != "" {
				style = style.Foreground(runColor)
			}
			sb.WriteString(style.Render(run.String()))
			run.Reset()
		}

		for col := 0; col < b.cols; col++ {
			cl := b.cells[row*b.cols+col]
			ch, ok := cl.glyph()
			if !ok {
				continue
			}
			c := cl.foreground()
			if c != runColor {
				flush()
				runColor = c
			}
			run.WriteRune(ch)
		}
		flush()
		lines[row] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// glyph returns the rune shown in the cell; false for the right half of a
// wide rune.
func (c cell) glyph() (rune, bool) {
	switch {
	case c.wide:
		return 0, false
	case c.text != 0:
		return c.text, true
	case c.mask != 0:
		return rune(brailleBase + int(c.mask)), true
	default:
		return ' ', true
	}
}

func (c cell) foreground() lipgloss.Color {
	if c.text != 0 {
		return c.color
	}
	return c.dot
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func round(v float64) int {
	return int(math.Round(v))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
