package app

import "github.com/kmacinski/vibedesk/internal/desktop"

// LaunchMsg asks the shell to open the dock entry at Index
type LaunchMsg struct {
	Index int
}

// CloseMsg asks the shell to close a window
type CloseMsg struct {
	ID string
}

// BackgroundLoadedMsg is sent when a background image has been decoded
type BackgroundLoadedMsg struct {
	Path       string
	Background desktop.Background
}

// BackgroundChangedMsg is sent by the watcher when the background file
// changes on disk
type BackgroundChangedMsg struct {
	Path string
}

// StatusMsg sets the footer status message
type StatusMsg struct {
	Text string
}

// ErrorMsg is sent when an error occurs
type ErrorMsg struct {
	Err error
}
