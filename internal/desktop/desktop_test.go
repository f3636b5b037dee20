package desktop

import (
	"fmt"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubContent string

func (c stubContent) View(width, height int) string { return string(c) }

func app(id string) AppDescriptor {
	return AppDescriptor{ID: id, Name: "🎵 " + id, Color: "#BAFFC9", Content: stubContent(id)}
}

func TestLaunch_CascadesAndNumbers(t *testing.T) {
	s := NewState(DefaultCascade)
	const n = 6
	for i := 0; i < n; i++ {
		s = s.Launch(app("app2"))
	}

	windows := s.Windows()
	require.Len(t, windows, n)

	seen := map[string]bool{}
	for i, w := range windows {
		assert.Equal(t, fmt.Sprintf("app2-%d", i), w.ID)
		assert.False(t, seen[w.ID], "duplicate id %s", w.ID)
		seen[w.ID] = true
		assert.Equal(t, Position{X: 100 + 30*i, Y: 100 + 30*i}, w.Position)
	}
	assert.Equal(t, n, s.Counter())
}

func TestLaunch_SameAppTwice(t *testing.T) {
	s := NewState(DefaultCascade)
	s = s.Launch(app("app3")).Launch(app("app3"))

	windows := s.Windows()
	require.Len(t, windows, 2)
	assert.Equal(t, "app3-0", windows[0].ID)
	assert.Equal(t, "app3-1", windows[1].ID)
	assert.Equal(t, Position{100, 100}, windows[0].Position)
	assert.Equal(t, Position{130, 130}, windows[1].Position)
	assert.Equal(t, "🎵 app3", windows[1].Title)
	assert.Equal(t, "#BAFFC9", windows[1].Color)
}

func TestLaunch_CounterIsShared(t *testing.T) {
	s := NewState(DefaultCascade)
	s = s.Launch(app("youtube")).Launch(app("app2")).Launch(app("youtube"))

	ids := []string{}
	for _, w := range s.Windows() {
		ids = append(ids, w.ID)
	}
	assert.Equal(t, []string{"youtube-0", "app2-1", "youtube-2"}, ids)
}

func TestClose_RemovesExactlyOne(t *testing.T) {
	s := NewState(DefaultCascade)
	for _, id := range []string{"a", "b", "c", "d"} {
		s = s.Launch(app(id))
	}
	before := s.Windows()

	s = s.Close("b-1")

	after := s.Windows()
	require.Len(t, after, 3)
	assert.Equal(t, []WindowRecord{before[0], before[2], before[3]}, after)

	_, ok := s.Window("b-1")
	assert.False(t, ok)
}

func TestClose_UnknownIsNoop(t *testing.T) {
	s := NewState(DefaultCascade).Launch(app("a"))
	next := s.Close("missing-9")
	assert.Equal(t, s.Windows(), next.Windows())
}

func TestClose_DoesNotReuseIDs(t *testing.T) {
	s := NewState(DefaultCascade).Launch(app("a"))
	s = s.Close("a-0").Launch(app("a"))

	w := s.Windows()
	require.Len(t, w, 1)
	assert.Equal(t, "a-1", w[0].ID)
	assert.Equal(t, Position{130, 130}, w[0].Position)
}

func TestOperations_LeavePreviousStateIntact(t *testing.T) {
	base := NewState(DefaultCascade).Launch(app("a")).Launch(app("b"))
	snapshot := base.Windows()

	_ = base.Launch(app("c"))
	_ = base.Close("a-0")
	_ = base.SetBackground(Background{Name: "x.png", Image: image.NewRGBA(image.Rect(0, 0, 1, 1))})

	assert.Equal(t, snapshot, base.Windows())
	assert.Equal(t, 2, base.Counter())
	assert.True(t, base.Background().IsZero())
}

func TestSetBackground(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	s := NewState(DefaultCascade).SetBackground(Background{Name: "sky.png", Image: img})

	assert.False(t, s.Background().IsZero())
	assert.Equal(t, "sky.png", s.Background().Name)
}

func TestCascade_Custom(t *testing.T) {
	c := Cascade{Origin: 0, Step: 10}
	assert.Equal(t, Position{0, 0}, c.At(0))
	assert.Equal(t, Position{50, 50}, c.At(5))
}
