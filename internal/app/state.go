package app

import "github.com/kmacinski/vibedesk/internal/desktop"

// Modal names
const (
	ModalHelp   = "help"
	ModalPrompt = "prompt"
)

// State holds the shell state plus what the chrome around it shows
type State struct {
	Desktop desktop.State

	// UI
	ActiveModal string // empty if no modal
	Status      string
	Error       string

	// Background file currently shown, for reloads
	BackgroundPath string
}

// NewState creates a new state with defaults
func NewState(cascade desktop.Cascade) *State {
	return &State{
		Desktop: desktop.NewState(cascade),
	}
}

// Launch opens a window for d and returns its record
func (s *State) Launch(d desktop.AppDescriptor) desktop.WindowRecord {
	s.Desktop = s.Desktop.Launch(d)
	windows := s.Desktop.Windows()
	return windows[len(windows)-1]
}

// Close removes a window, reporting whether it was open
func (s *State) Close(id string) bool {
	if _, ok := s.Desktop.Window(id); !ok {
		return false
	}
	s.Desktop = s.Desktop.Close(id)
	return true
}

// SetBackground replaces the background and remembers its file
func (s *State) SetBackground(path string, bg desktop.Background) {
	s.Desktop = s.Desktop.SetBackground(bg)
	s.BackgroundPath = path
}

// SetStatus shows an informational message and clears any error
func (s *State) SetStatus(text string) {
	s.Status = text
	s.Error = ""
}

// SetError shows an error message
func (s *State) SetError(text string) {
	s.Error = text
	s.Status = ""
}

// ToggleModal toggles a modal on/off
func (s *State) ToggleModal(name string) {
	if s.ActiveModal == name {
		s.ActiveModal = ""
	} else {
		s.ActiveModal = name
	}
}

// OpenModal shows a modal
func (s *State) OpenModal(name string) {
	s.ActiveModal = name
}

// CloseModal closes any open modal
func (s *State) CloseModal() {
	s.ActiveModal = ""
}
