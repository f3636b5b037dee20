package desktop

import (
	"image"
	"strconv"
)

// Content is anything a window can host
type Content interface {
	View(width, height int) string
}

// AppDescriptor describes a launchable dock entry
type AppDescriptor struct {
	ID      string
	Name    string
	Color   string // hex accent, e.g. "#FFB3BA"
	Content Content
}

// Position is a point on the desktop in logical pixels
type Position struct {
	X int
	Y int
}

// WindowRecord is the shell's bookkeeping entry for one open window
type WindowRecord struct {
	ID       string
	Title    string
	Content  Content
	Color    string
	Position Position
}

// Background is the decoded desktop background. The zero value means none.
type Background struct {
	Name  string
	Image image.Image
}

// IsZero reports whether no background is set
func (b Background) IsZero() bool {
	return b.Image == nil
}

// Cascade is the initial placement rule for new windows
type Cascade struct {
	Origin int
	Step   int
}

// DefaultCascade staggers windows by 30 starting at (100, 100)
var DefaultCascade = Cascade{Origin: 100, Step: 30}

// At returns the initial position for the n-th launch
func (c Cascade) At(n int) Position {
	offset := c.Origin + c.Step*n
	return Position{X: offset, Y: offset}
}

// State is the shell state. Operations return a new State and leave the
// receiver untouched, so a State can be kept as a snapshot.
type State struct {
	windows    []WindowRecord
	counter    int
	background Background
	cascade    Cascade
}

// NewState creates an empty desktop
func NewState(cascade Cascade) State {
	return State{cascade: cascade}
}

// Launch appends a window for d at the next cascade position
func (s State) Launch(d AppDescriptor) State {
	record := WindowRecord{
		ID:       d.ID + "-" + strconv.Itoa(s.counter),
		Title:    d.Name,
		Content:  d.Content,
		Color:    d.Color,
		Position: s.cascade.At(s.counter),
	}

	windows := make([]WindowRecord, len(s.windows), len(s.windows)+1)
	copy(windows, s.windows)

	s.windows = append(windows, record)
	s.counter++
	return s
}

// Close removes the window with the given id. Unknown ids are a no-op.
func (s State) Close(id string) State {
	idx := s.indexOf(id)
	if idx < 0 {
		return s
	}

	windows := make([]WindowRecord, 0, len(s.windows)-1)
	windows = append(windows, s.windows[:idx]...)
	windows = append(windows, s.windows[idx+1:]...)

	s.windows = windows
	return s
}

// SetBackground replaces the desktop background
func (s State) SetBackground(b Background) State {
	s.background = b
	return s
}

// Windows returns a copy of the open windows in launch order
func (s State) Windows() []WindowRecord {
	out := make([]WindowRecord, len(s.windows))
	copy(out, s.windows)
	return out
}

// Window looks up a record by id
func (s State) Window(id string) (WindowRecord, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return WindowRecord{}, false
	}
	return s.windows[idx], true
}

// Len returns the number of open windows
func (s State) Len() int {
	return len(s.windows)
}

// Counter returns the number of launches so far
func (s State) Counter() int {
	return s.counter
}

// Background returns the current background
func (s State) Background() Background {
	return s.background
}

func (s State) indexOf(id string) int {
	for i, w := range s.windows {
		if w.ID == id {
			return i
		}
	}
	return -1
}
