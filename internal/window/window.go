package window

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kmacinski/vibedesk/internal/ui"
)

// Pane is a modal surface drawn over the desktop (help, prompts)
type Pane interface {
	// Update handles input while the pane is open
	Update(msg tea.Msg) (Pane, tea.Cmd)

	// View renders the pane content
	View(width, height int) string

	// Identity
	Name() string
}

// Base carries what frames and panes have in common
type Base struct {
	name    string
	focused bool
	styles  ui.Styles
}

// NewBase creates a base named name
func NewBase(name string, styles ui.Styles) Base {
	return Base{name: name, styles: styles}
}

func (b *Base) Name() string {
	return b.name
}

// Focused reports whether this is the top-most window
func (b *Base) Focused() bool {
	return b.focused
}

func (b *Base) SetFocus(focused bool) {
	b.focused = focused
}
