package window

import (
	"strings"

	"github.com/kmacinski/vibedesk/internal/canvas"
	"github.com/kmacinski/vibedesk/internal/desktop"
	"github.com/kmacinski/vibedesk/internal/ui"
)

// Scale maps logical pixels onto terminal cells
type Scale struct {
	CellWidth  int
	CellHeight int
}

// DefaultScale treats a cell as 10×20 logical pixels
var DefaultScale = Scale{CellWidth: 10, CellHeight: 20}

// Pixel returns the logical pixel for a desktop cell. A cell maps to its
// far corner so that a size set from the handle cell covers that cell.
func (s Scale) Pixel(cx, cy int) Point {
	return Point{X: (cx + 1) * s.CellWidth, Y: (cy + 1) * s.CellHeight}
}

// Cells converts a logical rectangle to the cell rectangle that draws it
func (s Scale) Cells(pos Point, size Size) canvas.Rect {
	return canvas.Rect{
		X: floorDiv(pos.X, s.CellWidth),
		Y: floorDiv(pos.Y, s.CellHeight),
		W: size.Width / s.CellWidth,
		H: size.Height / s.CellHeight,
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Request is what a frame asks of the shell after a pointer press
type Request int

const (
	RequestNone Request = iota
	RequestClose
)

const closeGlyph = "×"

// Frame is one floating window on the desktop
type Frame struct {
	Base
	record desktop.WindowRecord
	geom   Geometry
}

// NewFrame creates a frame for a shell record at its initial position
func NewFrame(record desktop.WindowRecord, size Size, limits Limits, styles ui.Styles) *Frame {
	pos := Point{X: record.Position.X, Y: record.Position.Y}
	return &Frame{
		Base:   NewBase(record.ID, styles),
		record: record,
		geom:   NewGeometry(pos, size, limits),
	}
}

// ID returns the window record id
func (f *Frame) ID() string {
	return f.record.ID
}

// Record returns the shell record this frame renders
func (f *Frame) Record() desktop.WindowRecord {
	return f.record
}

// Geometry returns the frame's current geometry
func (f *Frame) Geometry() Geometry {
	return f.geom
}

// Rect returns the frame's cell rectangle relative to the desktop origin
func (f *Frame) Rect(scale Scale) canvas.Rect {
	r := scale.Cells(f.geom.Position, f.geom.Size)
	r.W = max(r.W, 4)
	r.H = max(r.H, 2)
	return r
}

// HitTest reports which part of the frame is under desktop cell (cx, cy)
func (f *Frame) HitTest(scale Scale, cx, cy int) Target {
	r := f.Rect(scale)
	if !r.Contains(cx, cy) {
		return TargetNone
	}

	right := r.X + r.W - 1
	bottom := r.Y + r.H - 1

	switch {
	case cy == r.Y && cx >= right-2:
		return TargetClose
	case cy == r.Y:
		return TargetTitleBar
	case cx == right && cy == bottom:
		return TargetResize
	default:
		return TargetBody
	}
}

// PointerDown handles a press on target at logical point p
func (f *Frame) PointerDown(target Target, p Point) Request {
	if target == TargetClose {
		return RequestClose
	}
	f.geom = f.geom.PointerDown(target, p)
	return RequestNone
}

// PointerMove forwards a pointer move to the active interaction
func (f *Frame) PointerMove(p Point) {
	f.geom = f.geom.PointerMove(p)
}

// PointerUp ends the active interaction
func (f *Frame) PointerUp() {
	f.geom = f.geom.PointerUp()
}

// Draw paints the frame onto c with the desktop origin at (ox, oy),
// clipped to clip
func (f *Frame) Draw(c *canvas.Canvas, ox, oy int, scale Scale, clip canvas.Rect) {
	r := f.Rect(scale)
	r.X += ox
	r.Y += oy
	area := r.Intersect(clip)
	if area.Empty() {
		return
	}

	titleStyle := f.styles.TitleBar(f.record.Color)
	titleStyle.Bold = f.focused
	bodyStyle := f.styles.Body(f.record.Color)

	// Title bar
	titleRow := canvas.Rect{X: r.X, Y: r.Y, W: r.W, H: 1}.Intersect(clip)
	c.Fill(titleRow, titleStyle)
	c.TextClip(r.X+1, r.Y, f.record.Title, titleStyle, canvas.Rect{X: r.X, Y: r.Y, W: r.W - 3, H: 1}.Intersect(clip))

	closeStyle := f.styles.Close
	closeStyle.Bg = titleStyle.Bg
	c.TextClip(r.X+r.W-2, r.Y, closeGlyph, closeStyle, clip)

	// Body
	body := canvas.Rect{X: r.X, Y: r.Y + 1, W: r.W, H: r.H - 1}
	c.Fill(body.Intersect(clip), bodyStyle)

	inner := canvas.Rect{X: body.X + 1, Y: body.Y, W: body.W - 2, H: body.H - 1}
	if f.record.Content != nil && !inner.Empty() {
		innerClip := inner.Intersect(clip)
		lines := strings.Split(f.record.Content.View(inner.W, inner.H), "\n")
		for i, line := range lines {
			if i >= inner.H {
				break
			}
			c.TextClip(inner.X, inner.Y+i, line, bodyStyle, innerClip)
		}
	}

	// Resize handle
	handleStyle := f.styles.Handle
	handleStyle.Bg = bodyStyle.Bg
	c.TextClip(r.X+r.W-1, r.Y+r.H-1, "◢", handleStyle, clip)
}
