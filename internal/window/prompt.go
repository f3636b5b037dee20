package window

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kmacinski/vibedesk/internal/ui"
)

// PathSubmittedMsg carries the path entered in a Prompt
type PathSubmittedMsg struct {
	Path string
}

// PromptClosedMsg is sent when a Prompt is dismissed without a value
type PromptClosedMsg struct{}

// Prompt asks for a file path, used to pick the desktop background
type Prompt struct {
	Base
	title string
	input textinput.Model
}

// NewPrompt creates a focused path prompt
func NewPrompt(styles ui.Styles, title, initial string) *Prompt {
	ti := textinput.New()
	ti.Placeholder = "~/Pictures/wallpaper.png"
	ti.CharLimit = 1024
	ti.SetValue(initial)
	ti.Focus()

	return &Prompt{
		Base:  NewBase("prompt", styles),
		title: title,
		input: ti,
	}
}

// Init starts the cursor blinking
func (p *Prompt) Init() tea.Cmd {
	return textinput.Blink
}

// Value returns the current input
func (p *Prompt) Value() string {
	return p.input.Value()
}

// Update handles typing, enter and escape
func (p *Prompt) Update(msg tea.Msg) (Pane, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			value := strings.TrimSpace(p.input.Value())
			p.input.Blur()
			if value == "" {
				return p, func() tea.Msg { return PromptClosedMsg{} }
			}
			return p, func() tea.Msg { return PathSubmittedMsg{Path: value} }
		case "esc":
			p.input.Blur()
			return p, func() tea.Msg { return PromptClosedMsg{} }
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// View renders the prompt box
func (p *Prompt) View(width, height int) string {
	contentWidth := width - 6
	if contentWidth < 1 || height < 5 {
		return ""
	}
	p.input.Width = contentWidth - 2

	lines := []string{
		p.styles.ModalTitle.Render(p.title),
		p.input.View(),
		"",
		p.styles.Muted.Render("enter to apply · esc to cancel"),
	}
	return p.styles.Modal.
		Width(contentWidth).
		Render(strings.Join(lines, "\n"))
}
