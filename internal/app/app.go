package app

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kmacinski/vibedesk/internal/apps"
	"github.com/kmacinski/vibedesk/internal/background"
	"github.com/kmacinski/vibedesk/internal/config"
	"github.com/kmacinski/vibedesk/internal/desktop"
	"github.com/kmacinski/vibedesk/internal/keys"
	"github.com/kmacinski/vibedesk/internal/layout"
	"github.com/kmacinski/vibedesk/internal/pointer"
	"github.com/kmacinski/vibedesk/internal/ui"
	"github.com/kmacinski/vibedesk/internal/watcher"
	"github.com/kmacinski/vibedesk/internal/window"
	"go.uber.org/zap"
)

const (
	logoLabel       = "🌊 A New Vibe"
	backgroundLabel = "🌄 Change BG"
	watchDebounce   = 300 * time.Millisecond
)

// App is the main application model
type App struct {
	state   *State
	cfg     *config.Config
	log     *zap.Logger
	catalog []desktop.AppDescriptor
	layout  *layout.Manager
	styles  ui.Styles

	// Window instances, keyed by record id
	frames  map[string]*window.Frame
	capture pointer.Capture
	sub     *pointer.Subscription

	scale  window.Scale
	size   window.Size
	limits window.Limits

	// Modals
	help   *window.Help
	prompt *window.Prompt

	bgCache background.Cache

	// Dimensions
	width  int
	height int

	// Side effects, replaced in tests
	copyText func(string) error
	openURL  func(string) error

	// Background file watcher
	watcher *watcher.Watcher
	program *tea.Program
}

// New creates the desktop application
func New(cfg *config.Config, log *zap.Logger, catalog []desktop.AppDescriptor) *App {
	if log == nil {
		log = zap.NewNop()
	}
	styles := ui.NewStyles(colorsFromConfig(cfg.Colors))
	d := cfg.Desktop

	return &App{
		state:   NewState(desktop.Cascade{Origin: d.Origin, Step: d.CascadeStep}),
		cfg:     cfg,
		log:     log,
		catalog: catalog,
		layout:  layout.NewManager(layout.DefaultResponsive),
		styles:  styles,
		frames:  map[string]*window.Frame{},
		scale:   window.Scale{CellWidth: d.CellWidth, CellHeight: d.CellHeight},
		size:    window.Size{Width: d.DefaultWidth, Height: d.DefaultHeight},
		limits:  window.Limits{MinWidth: d.MinWidth, MinHeight: d.MinHeight},
		help:    window.NewHelp(styles, keys.HelpBindings()),

		copyText: clipboard.WriteAll,
		openURL:  openInBrowser,
	}
}

func colorsFromConfig(c config.ColorConfig) ui.Colors {
	colors := ui.DefaultColors
	if c.Desktop != "" {
		colors.Desktop = lipgloss.Color(c.Desktop)
	}
	if c.MenuBar != "" {
		colors.MenuBar = lipgloss.Color(c.MenuBar)
	}
	if c.Dock != "" {
		colors.Dock = lipgloss.Color(c.Dock)
	}
	if c.BorderFocused != "" {
		colors.BorderFocused = lipgloss.Color(c.BorderFocused)
	}
	return colors
}

// SetProgram sets the tea.Program reference for sending messages from the watcher
func (a *App) SetProgram(p *tea.Program) {
	a.program = p
	if !a.cfg.Background.Watch {
		return
	}

	w, err := watcher.New(watchDebounce, a.log, func(path string) {
		if a.program != nil {
			a.program.Send(BackgroundChangedMsg{Path: path})
		}
	})
	if err != nil {
		a.log.Warn("background watcher unavailable", zap.Error(err))
		return
	}
	a.watcher = w
	a.watcher.Start()
}

// Cleanup stops the watcher
func (a *App) Cleanup() {
	if a.watcher != nil {
		a.watcher.Stop()
	}
	_ = a.log.Sync()
}

// Init loads the configured background, if any
func (a *App) Init() tea.Cmd {
	if a.cfg.Background.Path == "" {
		return nil
	}
	return a.loadBackground(a.cfg.Background.Path)
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout.Resize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if a.state.ActiveModal != "" {
			return a.handleModalKey(msg)
		}
		return a, a.handleKey(msg)

	case tea.MouseMsg:
		// A release always ends the interaction, even under a modal
		if msg.Action == tea.MouseActionRelease {
			a.pointerUp()
			return a, nil
		}
		if a.state.ActiveModal != "" {
			return a, nil
		}
		return a, a.handleMouse(msg)

	case LaunchMsg:
		a.launch(msg.Index)
		return a, nil

	case CloseMsg:
		a.closeWindow(msg.ID)
		return a, nil

	case window.PathSubmittedMsg:
		a.closePrompt()
		return a, a.loadBackground(msg.Path)

	case window.PromptClosedMsg:
		a.closePrompt()
		return a, nil

	case BackgroundLoadedMsg:
		a.state.SetBackground(msg.Path, msg.Background)
		a.state.SetStatus("Background: " + msg.Background.Name)
		a.log.Info("background set", zap.String("path", msg.Path))
		a.watchBackground(msg.Path)
		return a, nil

	case BackgroundChangedMsg:
		if msg.Path != a.state.BackgroundPath {
			return a, nil
		}
		a.log.Debug("background changed on disk", zap.String("path", msg.Path))
		return a, a.loadBackground(msg.Path)

	case StatusMsg:
		a.state.SetStatus(msg.Text)
		return a, nil

	case ErrorMsg:
		a.state.SetError(msg.Err.Error())
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	km := keys.DefaultKeyMap

	switch {
	case key.Matches(msg, km.Quit):
		return tea.Quit

	case key.Matches(msg, km.Help):
		a.pointerUp()
		a.state.ToggleModal(ModalHelp)

	case key.Matches(msg, km.Launch):
		if idx, ok := keys.LaunchIndex(msg.String()); ok {
			a.launch(idx)
		}

	case key.Matches(msg, km.CloseTop):
		if top := a.topFrame(); top != nil {
			a.closeWindow(top.ID())
		}

	case key.Matches(msg, km.Background):
		return a.openPrompt()

	case key.Matches(msg, km.CopyLink):
		url, ok := a.topLink()
		if !ok {
			a.state.SetStatus("No playlist open")
			return nil
		}
		if err := a.copyText(url); err != nil {
			a.log.Warn("clipboard write failed", zap.Error(err))
			a.state.SetError("Clipboard unavailable")
			return nil
		}
		a.state.SetStatus("Copied playlist link")

	case key.Matches(msg, km.OpenLink):
		url, ok := a.topLink()
		if !ok {
			a.state.SetStatus("No playlist open")
			return nil
		}
		return a.open(url)
	}
	return nil
}

func (a *App) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.state.ActiveModal == ModalPrompt && a.prompt != nil {
		var cmd tea.Cmd
		_, cmd = a.prompt.Update(msg)
		return a, cmd
	}

	// Always allow quit
	if key.Matches(msg, keys.DefaultKeyMap.Quit) {
		return a, tea.Quit
	}

	if key.Matches(msg, keys.DefaultKeyMap.Help) || key.Matches(msg, keys.DefaultKeyMap.Escape) {
		a.state.CloseModal()
	}
	return a, nil
}

// Windows

func (a *App) launch(index int) {
	if index < 0 || index >= len(a.catalog) {
		return
	}
	rec := a.state.Launch(a.catalog[index])
	a.reconcile()
	a.log.Info("window launched",
		zap.String("id", rec.ID),
		zap.Int("x", rec.Position.X),
		zap.Int("y", rec.Position.Y),
	)
}

func (a *App) closeWindow(id string) {
	a.capture.ReleaseOwner(id)
	if !a.state.Close(id) {
		return
	}
	a.reconcile()
	a.log.Info("window closed", zap.String("id", id))
}

// reconcile creates a frame for every new record and drops frames whose
// record is gone. The last record is on top and focused.
func (a *App) reconcile() {
	records := a.state.Desktop.Windows()
	live := make(map[string]bool, len(records))
	for _, rec := range records {
		live[rec.ID] = true
		if _, ok := a.frames[rec.ID]; !ok {
			a.frames[rec.ID] = window.NewFrame(rec, a.size, a.limits, a.styles)
		}
	}
	for id := range a.frames {
		if !live[id] {
			delete(a.frames, id)
		}
	}
	for i, rec := range records {
		a.frames[rec.ID].SetFocus(i == len(records)-1)
	}
}

// stack returns frames bottom to top
func (a *App) stack() []*window.Frame {
	records := a.state.Desktop.Windows()
	out := make([]*window.Frame, 0, len(records))
	for _, rec := range records {
		if f, ok := a.frames[rec.ID]; ok {
			out = append(out, f)
		}
	}
	return out
}

func (a *App) topFrame() *window.Frame {
	s := a.stack()
	if len(s) == 0 {
		return nil
	}
	return s[len(s)-1]
}

func (a *App) topLink() (string, bool) {
	s := a.stack()
	for i := len(s) - 1; i >= 0; i-- {
		if l, ok := s[i].Record().Content.(apps.Linker); ok {
			return l.URL(), true
		}
	}
	return "", false
}

// Mouse

func (a *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		return a.pointerDown(msg.X, msg.Y)
	case tea.MouseActionMotion:
		a.pointerMove(msg.X, msg.Y)
	}
	return nil
}

// desktopPoint converts a screen cell to a logical desktop pixel
func (a *App) desktopPoint(x, y int) window.Point {
	desk := a.layout.Slot(layout.Desktop)
	return a.scale.Pixel(x-desk.X, y-desk.Y)
}

func (a *App) pointerDown(x, y int) tea.Cmd {
	// A press while another interaction is live means its release was lost
	if a.capture.Active() {
		a.pointerUp()
	}

	if a.layout.MenuItem(backgroundLabel).Contains(x, y) {
		return a.openPrompt()
	}
	if idx, ok := a.layout.DockHit(a.dockLabels(), x, y); ok {
		return func() tea.Msg { return LaunchMsg{Index: idx} }
	}

	desk := a.layout.Slot(layout.Desktop)
	if !desk.Contains(x, y) {
		return nil
	}
	cx, cy := x-desk.X, y-desk.Y

	s := a.stack()
	for i := len(s) - 1; i >= 0; i-- {
		f := s[i]
		target := f.HitTest(a.scale, cx, cy)
		if target == window.TargetNone {
			continue
		}

		if f.PointerDown(target, a.desktopPoint(x, y)) == window.RequestClose {
			id := f.ID()
			return func() tea.Msg { return CloseMsg{ID: id} }
		}
		if f.Geometry().Interacting() {
			a.sub = a.capture.Acquire(f.ID())
			a.log.Debug("interaction started",
				zap.String("id", f.ID()),
				zap.Stringer("mode", f.Geometry().Mode),
			)
		}
		return nil
	}
	return nil
}

func (a *App) pointerMove(x, y int) {
	owner, ok := a.capture.Owner()
	if !ok {
		return
	}
	if f, ok := a.frames[owner]; ok {
		f.PointerMove(a.desktopPoint(x, y))
	}
}

// pointerUp ends the active interaction, if any
func (a *App) pointerUp() {
	sub := a.sub
	a.sub = nil
	defer sub.Release()

	if !sub.Held() {
		return
	}
	if f, ok := a.frames[sub.Owner()]; ok {
		f.PointerUp()
		g := f.Geometry()
		a.log.Debug("interaction ended",
			zap.String("id", f.ID()),
			zap.Int("x", g.Position.X),
			zap.Int("y", g.Position.Y),
			zap.Int("width", g.Size.Width),
			zap.Int("height", g.Size.Height),
		)
	}
}

// Modals

func (a *App) openPrompt() tea.Cmd {
	a.pointerUp()
	a.prompt = window.NewPrompt(a.styles, "Change background", a.state.BackgroundPath)
	a.state.OpenModal(ModalPrompt)
	return a.prompt.Init()
}

func (a *App) closePrompt() {
	a.prompt = nil
	if a.state.ActiveModal == ModalPrompt {
		a.state.CloseModal()
	}
}

// Commands

func (a *App) loadBackground(path string) tea.Cmd {
	log := a.log
	return func() tea.Msg {
		abs, err := background.ExpandPath(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		bg, err := background.Load(abs)
		if err != nil {
			log.Warn("background not loaded", zap.String("path", abs), zap.Error(err))
			if errors.Is(err, background.ErrNotImage) {
				return ErrorMsg{Err: fmt.Errorf("%s is not an image", filepath.Base(abs))}
			}
			return ErrorMsg{Err: err}
		}
		return BackgroundLoadedMsg{Path: abs, Background: bg}
	}
}

func (a *App) watchBackground(path string) {
	if a.watcher == nil {
		return
	}
	if err := a.watcher.Watch(path); err != nil {
		a.log.Warn("cannot watch background", zap.String("path", path), zap.Error(err))
	}
}

func (a *App) open(url string) tea.Cmd {
	openURL := a.openURL
	return func() tea.Msg {
		if err := openURL(url); err != nil {
			return ErrorMsg{Err: fmt.Errorf("open %s: %w", url, err)}
		}
		return StatusMsg{Text: "Opened playlist"}
	}
}

func openInBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

func (a *App) dockLabels() []string {
	labels := make([]string, len(a.catalog))
	for i, d := range a.catalog {
		labels[i] = d.Name
	}
	return labels
}
