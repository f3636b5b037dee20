package window

// Point is a desktop coordinate in logical pixels
type Point struct {
	X int
	Y int
}

// Sub returns p - q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size is a window extent in logical pixels
type Size struct {
	Width  int
	Height int
}

// Limits bounds how small a window may get
type Limits struct {
	MinWidth  int
	MinHeight int
}

// DefaultLimits matches the smallest usable frame
var DefaultLimits = Limits{MinWidth: 300, MinHeight: 200}

// DefaultSize is the size of a freshly opened window
var DefaultSize = Size{Width: 600, Height: 400}

// Clamp raises s to the minimum on each axis independently
func (l Limits) Clamp(s Size) Size {
	return Size{
		Width:  max(l.MinWidth, s.Width),
		Height: max(l.MinHeight, s.Height),
	}
}

// Mode is the pointer interaction a window is in
type Mode int

const (
	Idle Mode = iota
	Dragging
	Resizing
)

func (m Mode) String() string {
	switch m {
	case Dragging:
		return "dragging"
	case Resizing:
		return "resizing"
	default:
		return "idle"
	}
}

// Target is the part of a window under the pointer
type Target int

const (
	TargetNone Target = iota
	TargetTitleBar
	TargetClose
	TargetResize
	TargetBody
)

// Geometry is a window's position, size and interaction state.
// Every method returns the next value; the receiver is not modified.
type Geometry struct {
	Position Point
	Size     Size
	Mode     Mode
	Offset   Point // pointer minus origin, captured when a drag starts
	Limits   Limits
}

// NewGeometry places a window at pos with size clamped to limits
func NewGeometry(pos Point, size Size, limits Limits) Geometry {
	return Geometry{
		Position: pos,
		Size:     limits.Clamp(size),
		Limits:   limits,
	}
}

// PointerDown starts a drag on the title bar or a resize on the handle.
// Anything else, or a press while already interacting, changes nothing.
func (g Geometry) PointerDown(target Target, p Point) Geometry {
	if g.Mode != Idle {
		return g
	}

	switch target {
	case TargetTitleBar:
		g.Mode = Dragging
		g.Offset = p.Sub(g.Position)
	case TargetResize:
		g.Mode = Resizing
	}
	return g
}

// PointerMove applies the active interaction for pointer position p
func (g Geometry) PointerMove(p Point) Geometry {
	switch g.Mode {
	case Dragging:
		g.Position = p.Sub(g.Offset)
	case Resizing:
		d := p.Sub(g.Position)
		g.Size = g.Limits.Clamp(Size{Width: d.X, Height: d.Y})
	}
	return g
}

// PointerUp ends any interaction
func (g Geometry) PointerUp() Geometry {
	g.Mode = Idle
	g.Offset = Point{}
	return g
}

// Interacting reports whether a drag or resize is in progress
func (g Geometry) Interacting() bool {
	return g.Mode != Idle
}
