package canvas

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Blank(t *testing.T) {
	c := New(4, 2)
	assert.Equal(t, "    \n    ", c.Plain())
	assert.Equal(t, Rect{W: 4, H: 2}, c.Bounds())
}

func TestNew_NegativeSize(t *testing.T) {
	c := New(-3, 5)
	assert.Equal(t, 0, c.Width())
	assert.NotPanics(t, func() { c.Text(0, 0, "x", Style{}) })
}

func TestText_ClipsToCanvas(t *testing.T) {
	c := New(5, 1)
	end := c.Text(3, 0, "hello", Style{})
	assert.Equal(t, "   he", c.Plain())
	assert.Equal(t, 8, end)

	c = New(5, 1)
	c.Text(-2, 0, "hello", Style{})
	assert.Equal(t, "llo  ", c.Plain())
}

func TestText_WideRunes(t *testing.T) {
	c := New(6, 1)
	end := c.Text(0, 0, "📺ab", Style{})
	assert.Equal(t, 4, end)
	assert.Equal(t, "📺ab  ", c.Plain())
}

func TestText_WideRuneAtClipEdge(t *testing.T) {
	c := New(3, 1)
	c.Text(2, 0, "📺", Style{})
	assert.Equal(t, "   ", c.Plain())
}

func TestSet_OverwritesHalfOfWideRune(t *testing.T) {
	c := New(4, 1)
	c.Text(0, 0, "🎨", Style{})
	c.Set(1, 0, 'x', Style{})
	assert.Equal(t, " x  ", c.Plain())
}

func TestTextClip(t *testing.T) {
	c := New(10, 1)
	c.TextClip(0, 0, "abcdefghij", Style{}, Rect{X: 2, Y: 0, W: 3, H: 1})
	assert.Equal(t, "  cde     ", c.Plain())
}

func TestFill_Intersects(t *testing.T) {
	c := New(3, 3)
	c.Text(0, 0, "abc", Style{})
	c.Fill(Rect{X: 1, Y: -1, W: 10, H: 2}, Style{Bg: lipgloss.Color("#000000")})
	assert.Equal(t, "a  \n   \n   ", c.Plain())
}

func TestRender_GroupsRuns(t *testing.T) {
	c := New(4, 2)
	c.Text(0, 0, "ab", Style{Bold: true})
	out := c.Render()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "ab")
	assert.Equal(t, "    ", lines[1])
}

func TestRect(t *testing.T) {
	r := Rect{X: 1, Y: 1, W: 2, H: 2}
	assert.True(t, r.Contains(1, 1))
	assert.True(t, r.Contains(2, 2))
	assert.False(t, r.Contains(3, 1))
	assert.True(t, r.Intersect(Rect{X: 5, Y: 5, W: 1, H: 1}).Empty())
	assert.Equal(t, Rect{X: 2, Y: 2, W: 1, H: 1}, r.Intersect(Rect{X: 2, Y: 2, W: 4, H: 4}))
}
