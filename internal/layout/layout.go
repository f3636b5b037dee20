package layout

import (
	"github.com/kmacinski/vibedesk/internal/canvas"
	"github.com/mattn/go-runewidth"
)

// Slot names
const (
	MenuBar = "menubar"
	Desktop = "desktop"
	Dock    = "dock"
	Footer  = "footer"
)

// Slot is a horizontal band of the screen. Rows of 0 means it takes
// whatever the fixed slots leave.
type Slot struct {
	Name string
	Rows int
}

// Layout stacks slots top to bottom
type Layout struct {
	Name  string
	Slots []Slot
}

// Predefined layouts
var (
	Full = Layout{
		Name: "full",
		Slots: []Slot{
			{Name: MenuBar, Rows: 1},
			{Name: Desktop},
			{Name: Dock, Rows: 1},
			{Name: Footer, Rows: 1},
		},
	}

	Compact = Layout{
		Name: "compact",
		Slots: []Slot{
			{Name: MenuBar, Rows: 1},
			{Name: Desktop},
			{Name: Dock, Rows: 1},
		},
	}
)

// Breakpoint defines when to switch layouts
type Breakpoint struct {
	MinHeight int
	Layout    Layout
}

// ResponsiveConfig defines breakpoints for responsive layouts
type ResponsiveConfig struct {
	Breakpoints []Breakpoint
}

// DefaultResponsive drops the footer on short terminals
var DefaultResponsive = ResponsiveConfig{
	Breakpoints: []Breakpoint{
		{MinHeight: 12, Layout: Full},
		{MinHeight: 0, Layout: Compact},
	},
}

// GetLayout returns the appropriate layout for the given height
func (r *ResponsiveConfig) GetLayout(height int) Layout {
	for _, bp := range r.Breakpoints {
		if height >= bp.MinHeight {
			return bp.Layout
		}
	}
	return Compact
}

// DockGap is the number of blank cells between dock entries
const DockGap = 2

// Manager computes slot rectangles and hit areas for the current size
type Manager struct {
	responsive ResponsiveConfig
	current    Layout
	width      int
	height     int
	slots      map[string]canvas.Rect
}

// NewManager creates a new layout manager
func NewManager(responsive ResponsiveConfig) *Manager {
	return &Manager{
		responsive: responsive,
		current:    Full,
		slots:      map[string]canvas.Rect{},
	}
}

// Resize updates the layout dimensions
func (m *Manager) Resize(width, height int) {
	m.width = width
	m.height = height
	m.current = m.responsive.GetLayout(height)
	m.slots = placeSlots(m.current.Slots, width, height)
}

// CurrentLayout returns the current layout
func (m *Manager) CurrentLayout() Layout {
	return m.current
}

// Size returns the screen size
func (m *Manager) Size() (int, int) {
	return m.width, m.height
}

// Slot returns the rectangle for a slot, empty if the layout lacks it
func (m *Manager) Slot(name string) canvas.Rect {
	return m.slots[name]
}

// DockEntries lays out labels centered in the dock, each padded by one cell
// on both sides
func (m *Manager) DockEntries(labels []string) []canvas.Rect {
	dock := m.Slot(Dock)
	if dock.Empty() {
		return nil
	}

	widths := make([]int, len(labels))
	total := 0
	for i, l := range labels {
		widths[i] = runewidth.StringWidth(l) + 2
		total += widths[i]
	}
	if len(labels) > 1 {
		total += DockGap * (len(labels) - 1)
	}

	x := dock.X + max(0, (dock.W-total)/2)
	rects := make([]canvas.Rect, len(labels))
	for i, w := range widths {
		rects[i] = canvas.Rect{X: x, Y: dock.Y, W: w, H: 1}
		x += w + DockGap
	}
	return rects
}

// DockHit returns the index of the dock entry at (x, y)
func (m *Manager) DockHit(labels []string, x, y int) (int, bool) {
	for i, r := range m.DockEntries(labels) {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// MenuItem returns the rectangle of a right-aligned menu bar label
func (m *Manager) MenuItem(label string) canvas.Rect {
	bar := m.Slot(MenuBar)
	w := runewidth.StringWidth(label) + 2
	return canvas.Rect{X: bar.X + max(0, bar.W-w-1), Y: bar.Y, W: w, H: 1}
}

func placeSlots(slots []Slot, width, height int) map[string]canvas.Rect {
	fixed := 0
	for _, s := range slots {
		fixed += s.Rows
	}
	flex := max(0, height-fixed)

	out := make(map[string]canvas.Rect, len(slots))
	y := 0
	for _, s := range slots {
		rows := s.Rows
		if rows == 0 {
			rows = flex
		}
		rows = min(rows, max(0, height-y))
		out[s.Name] = canvas.Rect{X: 0, Y: y, W: width, H: rows}
		y += rows
	}
	return out
}
