package window

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kmacinski/vibedesk/internal/ui"
)

// Help displays keybinding help
type Help struct {
	Base
	bindings []key.Binding
}

// NewHelp creates a help pane listing bindings
func NewHelp(styles ui.Styles, bindings []key.Binding) *Help {
	return &Help{
		Base:     NewBase("help", styles),
		bindings: bindings,
	}
}

// Update handles input (modal keys handled by app)
func (h *Help) Update(msg tea.Msg) (Pane, tea.Cmd) {
	return h, nil
}

// View renders the help content
func (h *Help) View(width, height int) string {
	contentWidth := width - 4   // padding and border
	contentHeight := height - 4 // padding and border

	if contentWidth < 1 || contentHeight < 1 {
		return ""
	}

	var lines []string
	lines = append(lines, h.styles.ModalTitle.Render("Keybindings"))
	lines = append(lines, "")

	keyStyle := h.styles.Bold.Width(12)
	for _, b := range h.bindings {
		help := b.Help()
		lines = append(lines, fmt.Sprintf("%s %s", keyStyle.Render(help.Key), h.styles.ListItem.Render(help.Desc)))
	}

	lines = append(lines, "")
	lines = append(lines, h.styles.Muted.Render("Mouse: drag a title bar to move,"))
	lines = append(lines, h.styles.Muted.Render("drag ◢ to resize, click × to close"))
	lines = append(lines, "")
	lines = append(lines, h.styles.Muted.Render("Press ? or Esc to close"))

	return h.styles.Modal.
		Width(contentWidth).
		MaxHeight(contentHeight).
		Render(strings.Join(lines, "\n"))
}
