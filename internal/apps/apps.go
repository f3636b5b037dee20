// Package apps defines the dock catalog and the content each app shows.
package apps

import (
	"fmt"
	"strings"

	"github.com/kmacinski/vibedesk/internal/desktop"
)

// PlaylistURL is the embedded video playlist
const PlaylistURL = "https://www.youtube.com/embed/videoseries?list=PL5vhHYNVZ0BDeGx2LiOq3X3QUpMFYyHD5"

// Linker is content that points at an external resource
type Linker interface {
	URL() string
}

// Playlist shows the embedded playlist link
type Playlist struct {
	Title string
	Link  string
}

// URL returns the playlist address
func (p Playlist) URL() string {
	return p.Link
}

// View renders the playlist card
func (p Playlist) View(width, height int) string {
	lines := []string{
		"",
		"▶ " + p.Title,
		"",
		wrap(p.Link, width),
		"",
		"y copy link · o open in browser",
	}
	return strings.Join(lines, "\n")
}

// Placeholder is content for apps that do nothing yet
type Placeholder struct {
	Text string
}

// View renders the placeholder text centered vertically
func (p Placeholder) View(width, height int) string {
	pad := max(0, (height-1)/2)
	return strings.Repeat("\n", pad) + center(p.Text, width)
}

// Builtin returns the dock catalog in dock order
func Builtin() []desktop.AppDescriptor {
	catalog := []desktop.AppDescriptor{
		{
			ID:      "youtube",
			Name:    "📺 Playlist",
			Color:   "#FFFFFF",
			Content: Playlist{Title: "YouTube Playlist", Link: PlaylistURL},
		},
	}

	extras := []struct {
		icon  string
		color string
	}{
		{"🎨", "#FFB3BA"},
		{"🎵", "#BAFFC9"},
		{"✨", "#BAE1FF"},
		{"🚀", "#FFFFBA"},
	}
	for i, e := range extras {
		n := i + 2
		catalog = append(catalog, desktop.AppDescriptor{
			ID:      fmt.Sprintf("app%d", n),
			Name:    fmt.Sprintf("%s App %d", e.icon, n),
			Color:   e.color,
			Content: Placeholder{Text: fmt.Sprintf("add button %d functionality later", n)},
		})
	}
	return catalog
}

func wrap(s string, width int) string {
	if width <= 0 || len(s) <= width {
		return s
	}
	var lines []string
	for len(s) > width {
		lines = append(lines, s[:width])
		s = s[width:]
	}
	return strings.Join(append(lines, s), "\n")
}

func center(s string, width int) string {
	pad := (width - len([]rune(s))) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
