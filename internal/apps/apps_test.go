package apps

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin_Catalog(t *testing.T) {
	catalog := Builtin()
	require.Len(t, catalog, 5)

	ids := make([]string, 0, len(catalog))
	for _, d := range catalog {
		ids = append(ids, d.ID)
		assert.NotNil(t, d.Content, d.ID)
	}
	assert.Equal(t, []string{"youtube", "app2", "app3", "app4", "app5"}, ids)

	assert.Equal(t, "📺 Playlist", catalog[0].Name)
	assert.Equal(t, "🎵 App 3", catalog[2].Name)
	assert.Equal(t, "#BAFFC9", catalog[2].Color)
	assert.Equal(t, "#FFFFBA", catalog[4].Color)
}

func TestPlaylist_IsLinker(t *testing.T) {
	content := Builtin()[0].Content
	l, ok := content.(Linker)
	require.True(t, ok)
	assert.Equal(t, PlaylistURL, l.URL())
	assert.Contains(t, content.View(200, 10), "YouTube Playlist")
}

func TestPlaylist_WrapsLongURL(t *testing.T) {
	out := Playlist{Title: "t", Link: PlaylistURL}.View(20, 10)
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "y copy") {
			continue
		}
		assert.LessOrEqual(t, len([]rune(line)), 20, line)
	}
}

func TestPlaceholder_View(t *testing.T) {
	out := Placeholder{Text: "add button 2 functionality later"}.View(40, 5)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "    add button 2 functionality later", lines[2])

	_, isLinker := Builtin()[1].Content.(Linker)
	assert.False(t, isLinker)
}
