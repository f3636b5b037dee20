package app

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/kmacinski/vibedesk/internal/canvas"
	"github.com/kmacinski/vibedesk/internal/layout"
	"github.com/kmacinski/vibedesk/internal/window"
	"github.com/mattn/go-runewidth"
)

// View renders the desktop
func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	switch a.state.ActiveModal {
	case ModalHelp:
		return a.renderWithModal(a.help, 50, 24)
	case ModalPrompt:
		if a.prompt != nil {
			return a.renderWithModal(a.prompt, 70, 9)
		}
	}

	c := canvas.New(a.width, a.height)
	a.renderDesktop(c)
	a.renderMenuBar(c)
	a.renderDock(c)
	a.renderFooter(c)
	return c.Render()
}

func (a *App) renderDesktop(c *canvas.Canvas) {
	desk := a.layout.Slot(layout.Desktop)
	if desk.Empty() {
		return
	}
	c.Fill(desk, a.styles.Desktop)

	if grid := a.bgCache.Get(a.state.Desktop.Background(), desk.W, desk.H); grid != nil {
		for y, row := range grid {
			for x, col := range row {
				c.Set(desk.X+x, desk.Y+y, ' ', canvas.Style{Bg: lipgloss.Color(col.Clamped().Hex())})
			}
		}
	}

	for _, f := range a.stack() {
		f.Draw(c, desk.X, desk.Y, a.scale, desk)
	}
}

func (a *App) renderMenuBar(c *canvas.Canvas) {
	bar := a.layout.Slot(layout.MenuBar)
	if bar.Empty() {
		return
	}
	c.Fill(bar, a.styles.MenuBar)
	c.TextClip(bar.X+1, bar.Y, logoLabel, a.styles.MenuLogo, bar)

	item := a.layout.MenuItem(backgroundLabel)
	c.TextClip(item.X+1, item.Y, backgroundLabel, a.styles.MenuItem, bar)
}

func (a *App) renderDock(c *canvas.Canvas) {
	dock := a.layout.Slot(layout.Dock)
	if dock.Empty() {
		return
	}
	c.Fill(dock, a.styles.Dock)

	labels := a.dockLabels()
	for i, r := range a.layout.DockEntries(labels) {
		c.Fill(r.Intersect(dock), a.styles.DockItem)
		c.TextClip(r.X+1, r.Y, labels[i], a.styles.DockItem, dock)
	}
}

func (a *App) renderFooter(c *canvas.Canvas) {
	footer := a.layout.Slot(layout.Footer)
	if footer.Empty() {
		return
	}
	c.Fill(footer, a.styles.Footer)

	notice := fmt.Sprintf("© %d A New Vibe Canvas. All rights reserved.", time.Now().Year())
	c.TextClip(footer.X+1, footer.Y, notice, a.styles.Footer, footer)

	msg, style := a.state.Status, a.styles.Status
	if a.state.Error != "" {
		msg, style = a.state.Error, a.styles.ErrorCell
	}
	if msg == "" {
		msg = fmt.Sprintf("%d open", a.state.Desktop.Len())
	}
	x := footer.X + footer.W - runewidth.StringWidth(msg) - 1
	c.TextClip(x, footer.Y, msg, style, footer)
}

func (a *App) renderWithModal(modal window.Pane, maxWidth, maxHeight int) string {
	modalWidth := min(maxWidth, a.width-4)
	modalHeight := min(maxHeight, a.height-4)

	return lipgloss.Place(
		a.width,
		a.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.View(modalWidth, modalHeight),
	)
}
