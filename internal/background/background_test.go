package background

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/kmacinski/vibedesk/internal/desktop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func splitImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			c := color.RGBA{R: 255, A: 255}
			if x >= 20 {
				c = color.RGBA{B: 255, A: 255}
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func writePNG(t *testing.T, dir, name string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, splitImage()))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func TestLoad_PNG(t *testing.T) {
	path := writePNG(t, t.TempDir(), "sky.png")

	bg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sky.png", bg.Name)
	assert.Equal(t, image.Rect(0, 0, 40, 20), bg.Image.Bounds())
}

func TestLoad_JPEGWithWrongExtension(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, splitImage(), nil))
	path := filepath.Join(t.TempDir(), "photo.dat")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	bg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, bg.IsZero())
}

func TestLoad_RejectsNonImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.png")
	require.NoError(t, os.WriteFile(path, []byte("just some text\n"), 0644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_Directory(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.Error(t, err)
}

func TestDecode_TruncatedImage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, splitImage()))
	data := buf.Bytes()[:len(buf.Bytes())/2]

	_, err := Decode("half.png", data)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotImage)
}

func TestExpandPath_Home(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := ExpandPath("~/pics/a.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "pics", "a.png"), got)
}

func TestSample_KeepsHalves(t *testing.T) {
	bg := desktop.Background{Name: "split", Image: splitImage()}
	grid := Sample(bg, 4, 2)
	require.Len(t, grid, 2)
	require.Len(t, grid[0], 4)

	left, right := grid[1][0], grid[1][3]
	assert.Greater(t, left.R, 0.9)
	assert.Less(t, left.B, 0.1)
	assert.Greater(t, right.B, 0.9)
	assert.Less(t, right.R, 0.1)
}

func TestSample_Empty(t *testing.T) {
	assert.Nil(t, Sample(desktop.Background{}, 10, 10))
	assert.Nil(t, Sample(desktop.Background{Image: splitImage()}, 0, 10))
}

func TestCache_ReusesGrid(t *testing.T) {
	bg := desktop.Background{Name: "split", Image: splitImage()}
	var c Cache

	first := c.Get(bg, 4, 2)
	second := c.Get(bg, 4, 2)
	require.NotNil(t, first)
	assert.Same(t, &first[0][0], &second[0][0])

	third := c.Get(bg, 8, 2)
	assert.Len(t, third[0], 8)
}
