// Package canvas composes overlapping terminal surfaces into a cell grid.
package canvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Style is the paint of a single cell
type Style struct {
	Fg   lipgloss.Color
	Bg   lipgloss.Color
	Bold bool
}

// Rect is a cell rectangle
type Rect struct {
	X, Y int
	W, H int
}

// Contains reports whether the cell (x, y) is inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Intersect returns the overlap of r and o
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.W, o.X+o.W), min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Empty reports whether r has no cells
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

type cell struct {
	r     rune
	style Style
	cont  bool // right half of a wide rune
}

// Canvas is a fixed-size grid of styled cells
type Canvas struct {
	width  int
	height int
	cells  []cell
}

// New creates a blank canvas
func New(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	c := &Canvas{
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
	}
	for i := range c.cells {
		c.cells[i].r = ' '
	}
	return c
}

// Width returns the width in cells
func (c *Canvas) Width() int { return c.width }

// Height returns the height in cells
func (c *Canvas) Height() int { return c.height }

// Bounds returns the full canvas rectangle
func (c *Canvas) Bounds() Rect {
	return Rect{W: c.width, H: c.height}
}

// Set paints one cell, ignoring coordinates outside the canvas
func (c *Canvas) Set(x, y int, r rune, style Style) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.clearWide(x, y)
	c.cells[y*c.width+x] = cell{r: r, style: style}
}

// Fill paints every cell of rect with a space in style
func (c *Canvas) Fill(rect Rect, style Style) {
	area := rect.Intersect(c.Bounds())
	for y := area.Y; y < area.Y+area.H; y++ {
		for x := area.X; x < area.X+area.W; x++ {
			c.Set(x, y, ' ', style)
		}
	}
}

// Text writes s starting at (x, y) and returns the column after the last
// rune written. Wide runes take two cells; a wide rune that would straddle
// the clip edge is replaced by a space.
func (c *Canvas) Text(x, y int, s string, style Style) int {
	return c.TextClip(x, y, s, style, c.Bounds())
}

// TextClip is Text restricted to clip
func (c *Canvas) TextClip(x, y int, s string, style Style, clip Rect) int {
	clip = clip.Intersect(c.Bounds())
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if w == 2 {
			if clip.Contains(x, y) && clip.Contains(x+1, y) {
				c.Set(x, y, r, style)
				c.Set(x+1, y, ' ', style)
				c.cells[y*c.width+x+1].cont = true
			} else if clip.Contains(x, y) {
				c.Set(x, y, ' ', style)
			}
		} else if clip.Contains(x, y) {
			c.Set(x, y, r, style)
		}
		x += w
	}
	return x
}

// clearWide breaks up a wide rune that (x, y) is part of
func (c *Canvas) clearWide(x, y int) {
	i := y*c.width + x
	if c.cells[i].cont && x > 0 {
		c.cells[i-1].r = ' '
	}
	if x+1 < c.width && c.cells[i+1].cont {
		c.cells[i+1] = cell{r: ' ', style: c.cells[i+1].style}
	}
}

// Render returns the canvas as newline-separated rows. Adjacent cells with
// equal style are rendered as one run.
func (c *Canvas) Render() string {
	var b strings.Builder
	var run strings.Builder

	for y := 0; y < c.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		row := c.cells[y*c.width : (y+1)*c.width]

		start := 0
		for start < len(row) {
			style := row[start].style
			run.Reset()
			end := start
			for end < len(row) && row[end].style == style {
				if !row[end].cont {
					run.WriteRune(row[end].r)
				}
				end++
			}
			b.WriteString(style.render(run.String()))
			start = end
		}
	}
	return b.String()
}

// Plain returns the canvas text without styling
func (c *Canvas) Plain() string {
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, cl := range c.cells[y*c.width : (y+1)*c.width] {
			if !cl.cont {
				b.WriteRune(cl.r)
			}
		}
	}
	return b.String()
}

func (s Style) render(text string) string {
	if s == (Style{}) {
		return text
	}
	st := lipgloss.NewStyle().Bold(s.Bold)
	if s.Fg != "" {
		st = st.Foreground(s.Fg)
	}
	if s.Bg != "" {
		st = st.Background(s.Bg)
	}
	return st.Render(text)
}
