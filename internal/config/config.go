package config

import (
	"fmt"
	"os"
	"path/filepath"

	colorful "github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap/zapcore"
)

// Config holds all application configuration
type Config struct {
	Desktop    DesktopConfig    `yaml:"desktop"`
	Background BackgroundConfig `yaml:"background"`
	Colors     ColorConfig      `yaml:"colors"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// DesktopConfig holds window geometry settings, in logical pixels
type DesktopConfig struct {
	CellWidth     int `yaml:"cell_width"`   // logical pixels per terminal column
	CellHeight    int `yaml:"cell_height"`  // logical pixels per terminal row
	Origin        int `yaml:"origin"`       // first window position on both axes
	CascadeStep   int `yaml:"cascade_step"` // stagger per launch
	MinWidth      int `yaml:"min_width"`
	MinHeight     int `yaml:"min_height"`
	DefaultWidth  int `yaml:"default_width"`
	DefaultHeight int `yaml:"default_height"`
}

// BackgroundConfig holds the initial background
type BackgroundConfig struct {
	Path  string `yaml:"path"`
	Watch bool   `yaml:"watch"` // reload when the file changes on disk
}

// ColorConfig holds color overrides, as hex strings
type ColorConfig struct {
	Desktop       string `yaml:"desktop"`
	MenuBar       string `yaml:"menu_bar"`
	Dock          string `yaml:"dock"`
	BorderFocused string `yaml:"border_focused"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level       string `yaml:"level"`
	File        string `yaml:"file"`
	Development bool   `yaml:"development"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Desktop: DesktopConfig{
			CellWidth:     10,
			CellHeight:    20,
			Origin:        100,
			CascadeStep:   30,
			MinWidth:      300,
			MinHeight:     200,
			DefaultWidth:  600,
			DefaultHeight: 400,
		},
		Background: BackgroundConfig{
			Watch: true,
		},
		Colors: ColorConfig{
			Desktop:       "#1e1e2e",
			MenuBar:       "#313244",
			Dock:          "#181825",
			BorderFocused: "#89b4fa",
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(os.TempDir(), "vibedesk.log"),
		},
	}
}

// Validate checks the configuration for values the desktop cannot use
func (c *Config) Validate() error {
	d := c.Desktop
	if d.CellWidth <= 0 || d.CellHeight <= 0 {
		return fmt.Errorf("desktop.cell_width and desktop.cell_height must be positive (got %d, %d)", d.CellWidth, d.CellHeight)
	}
	if d.MinWidth <= 0 || d.MinHeight <= 0 {
		return fmt.Errorf("desktop.min_width and desktop.min_height must be positive (got %d, %d)", d.MinWidth, d.MinHeight)
	}
	if d.DefaultWidth < d.MinWidth || d.DefaultHeight < d.MinHeight {
		return fmt.Errorf("desktop default size %dx%d is below the minimum %dx%d", d.DefaultWidth, d.DefaultHeight, d.MinWidth, d.MinHeight)
	}
	if d.CascadeStep < 0 {
		return fmt.Errorf("desktop.cascade_step must not be negative (got %d)", d.CascadeStep)
	}

	colors := map[string]string{
		"colors.desktop":        c.Colors.Desktop,
		"colors.menu_bar":       c.Colors.MenuBar,
		"colors.dock":           c.Colors.Dock,
		"colors.border_focused": c.Colors.BorderFocused,
	}
	for name, value := range colors {
		if value == "" {
			continue
		}
		if _, err := colorful.Hex(value); err != nil {
			return fmt.Errorf("%s: invalid hex color %q", name, value)
		}
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}
