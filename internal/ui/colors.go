package ui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Colors defines the color palette for the desktop
type Colors struct {
	Desktop       lipgloss.Color
	MenuBar       lipgloss.Color
	MenuBarText   lipgloss.Color
	Dock          lipgloss.Color
	DockItem      lipgloss.Color
	DockItemText  lipgloss.Color
	Footer        lipgloss.Color
	FooterText    lipgloss.Color
	WindowBody    lipgloss.Color
	WindowText    lipgloss.Color
	TitleDark     lipgloss.Color
	TitleLight    lipgloss.Color
	Close         lipgloss.Color
	Handle        lipgloss.Color
	BorderFocused lipgloss.Color
	Header        lipgloss.Color
	Muted         lipgloss.Color
	Text          lipgloss.Color
	Error         lipgloss.Color
}

// DefaultColors returns the default color palette
var DefaultColors = Colors{
	Desktop:       lipgloss.Color("#1e1e2e"),
	MenuBar:       lipgloss.Color("#313244"),
	MenuBarText:   lipgloss.Color("#cdd6f4"),
	Dock:          lipgloss.Color("#181825"),
	DockItem:      lipgloss.Color("#45475a"),
	DockItemText:  lipgloss.Color("#cdd6f4"),
	Footer:        lipgloss.Color("#11111b"),
	FooterText:    lipgloss.Color("#6c7086"),
	WindowBody:    lipgloss.Color("#f5f5f5"),
	WindowText:    lipgloss.Color("#313244"),
	TitleDark:     lipgloss.Color("#1e1e2e"),
	TitleLight:    lipgloss.Color("#f5f5f5"),
	Close:         lipgloss.Color("#f38ba8"),
	Handle:        lipgloss.Color("#6c7086"),
	BorderFocused: lipgloss.Color("#89b4fa"),
	Header:        lipgloss.Color("#89b4fa"),
	Muted:         lipgloss.Color("#6c7086"),
	Text:          lipgloss.Color("#cdd6f4"),
	Error:         lipgloss.Color("#f38ba8"),
}

// TitleText picks a readable title color for the given accent
func (c Colors) TitleText(accent string) lipgloss.Color {
	col, err := colorful.Hex(accent)
	if err != nil {
		return c.TitleDark
	}
	l, _, _ := col.Lab()
	if l > 0.6 {
		return c.TitleDark
	}
	return c.TitleLight
}

// Accent normalizes an accent color, falling back to the window body
func (c Colors) Accent(accent string) lipgloss.Color {
	col, err := colorful.Hex(accent)
	if err != nil {
		return c.WindowBody
	}
	return lipgloss.Color(col.Hex())
}

// Tint returns the accent mixed toward white, used for window bodies
func (c Colors) Tint(accent string) lipgloss.Color {
	col, err := colorful.Hex(accent)
	if err != nil {
		return c.WindowBody
	}
	white := colorful.Color{R: 1, G: 1, B: 1}
	return lipgloss.Color(col.BlendLab(white, 0.6).Clamped().Hex())
}
