// Package background loads desktop background images and samples them
// down to one color per terminal cell.
package background

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/kmacinski/vibedesk/internal/desktop"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrNotImage is returned for files whose content is not an image
var ErrNotImage = errors.New("not an image")

// MaxFileSize caps how much is read from disk for a background
const MaxFileSize = 64 << 20

// Load reads and decodes an image file into a desktop background
func Load(path string) (desktop.Background, error) {
	path, err := ExpandPath(path)
	if err != nil {
		return desktop.Background{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return desktop.Background{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return desktop.Background{}, fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > MaxFileSize {
		return desktop.Background{}, fmt.Errorf("%s is too large (%d bytes)", path, info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return desktop.Background{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Decode(filepath.Base(path), data)
}

// Decode checks that data is an image and decodes it
func Decode(name string, data []byte) (desktop.Background, error) {
	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return desktop.Background{}, fmt.Errorf("%s (%s): %w", name, mtype.String(), ErrNotImage)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return desktop.Background{}, fmt.Errorf("decode %s (%s): %w", name, mtype.String(), err)
	}
	return desktop.Background{Name: name, Image: img}, nil
}

// ExpandPath resolves a leading ~ and makes the path absolute
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	return abs, nil
}

// Sample scales the background to cols×rows and returns one color per cell,
// indexed [row][col]. A zero background or empty grid yields nil.
func Sample(bg desktop.Background, cols, rows int) [][]colorful.Color {
	if bg.IsZero() || cols <= 0 || rows <= 0 {
		return nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, cols, rows))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), bg.Image, bg.Image.Bounds(), draw.Src, nil)

	grid := make([][]colorful.Color, rows)
	for y := 0; y < rows; y++ {
		grid[y] = make([]colorful.Color, cols)
		for x := 0; x < cols; x++ {
			c, ok := colorful.MakeColor(dst.At(x, y))
			if !ok {
				c = colorful.Color{}
			}
			grid[y][x] = c
		}
	}
	return grid
}

// Cache keeps the last sampled grid so redraws without a size or image
// change skip the scaling step
type Cache struct {
	bg   desktop.Background
	cols int
	rows int
	grid [][]colorful.Color
}

// Get returns the sampled grid for bg at cols×rows
func (c *Cache) Get(bg desktop.Background, cols, rows int) [][]colorful.Color {
	if c.grid != nil && c.cols == cols && c.rows == rows && c.bg == bg {
		return c.grid
	}
	c.bg, c.cols, c.rows = bg, cols, rows
	c.grid = Sample(bg, cols, rows)
	return c.grid
}
