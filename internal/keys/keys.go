package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the desktop
type KeyMap struct {
	// Windows
	Launch     key.Binding
	CloseTop   key.Binding
	Background key.Binding

	// Playlist
	CopyLink key.Binding
	OpenLink key.Binding

	// General
	Help   key.Binding
	Escape key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default keybindings
var DefaultKeyMap = KeyMap{
	Launch: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "launch dock app"),
	),
	CloseTop: key.NewBinding(
		key.WithKeys("x", "ctrl+w"),
		key.WithHelp("x", "close top window"),
	),
	Background: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "change background"),
	),
	CopyLink: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy playlist link"),
	),
	OpenLink: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open playlist"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close dialog"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// HelpBindings returns the keybindings to display in help
func HelpBindings() []key.Binding {
	return []key.Binding{
		DefaultKeyMap.Launch,
		DefaultKeyMap.CloseTop,
		DefaultKeyMap.Background,
		DefaultKeyMap.CopyLink,
		DefaultKeyMap.OpenLink,
		DefaultKeyMap.Help,
		DefaultKeyMap.Quit,
	}
}

// LaunchIndex maps a digit key to a zero-based dock index
func LaunchIndex(s string) (int, bool) {
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return 0, false
	}
	return int(s[0] - '1'), true
}
