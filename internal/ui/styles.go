package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/kmacinski/vibedesk/internal/canvas"
)

// Styles holds the lipgloss styles and cell paints for the desktop
type Styles struct {
	Colors Colors

	// Cell paints
	Desktop   canvas.Style
	MenuBar   canvas.Style
	MenuLogo  canvas.Style
	MenuItem  canvas.Style
	Dock      canvas.Style
	DockItem  canvas.Style
	Footer    canvas.Style
	Status    canvas.Style
	Close     canvas.Style
	Handle    canvas.Style
	ErrorCell canvas.Style

	// Modal
	Modal      lipgloss.Style
	ModalTitle lipgloss.Style

	// General
	Muted    lipgloss.Style
	Bold     lipgloss.Style
	ListItem lipgloss.Style
}

// NewStyles creates a new Styles instance with the given colors
func NewStyles(c Colors) Styles {
	return Styles{
		Colors: c,

		Desktop:  canvas.Style{Bg: c.Desktop},
		MenuBar:  canvas.Style{Fg: c.MenuBarText, Bg: c.MenuBar},
		MenuLogo: canvas.Style{Fg: c.Header, Bg: c.MenuBar, Bold: true},
		MenuItem: canvas.Style{Fg: c.MenuBarText, Bg: c.MenuBar, Bold: true},
		Dock:     canvas.Style{Bg: c.Dock},
		DockItem: canvas.Style{Fg: c.DockItemText, Bg: c.DockItem},
		Footer:   canvas.Style{Fg: c.FooterText, Bg: c.Footer},
		Status:   canvas.Style{Fg: c.Text, Bg: c.Footer},
		Close:    canvas.Style{Fg: c.Close, Bold: true},
		Handle:   canvas.Style{Fg: c.Handle},
		ErrorCell: canvas.Style{
			Fg:   c.Error,
			Bg:   c.Footer,
			Bold: true,
		},

		// Modal
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.BorderFocused).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.Header).
			MarginBottom(1),

		// General
		Muted: lipgloss.NewStyle().
			Foreground(c.Muted),
		Bold: lipgloss.NewStyle().
			Bold(true),
		ListItem: lipgloss.NewStyle().
			Foreground(c.Text),
	}
}

// TitleBar returns the paint for a window title bar with the given accent
func (s Styles) TitleBar(accent string) canvas.Style {
	return canvas.Style{
		Fg:   s.Colors.TitleText(accent),
		Bg:   s.Colors.Accent(accent),
		Bold: true,
	}
}

// Body returns the paint for a window content area with the given accent
func (s Styles) Body(accent string) canvas.Style {
	return canvas.Style{
		Fg: s.Colors.WindowText,
		Bg: s.Colors.Tint(accent),
	}
}

// DefaultStyles returns styles with the default color palette
var DefaultStyles = NewStyles(DefaultColors)
