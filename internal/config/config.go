// Package config loads editor configuration from TOML files and
// watches them for live reload.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the editor settings.
type Config struct {
	// View controls how documents are mapped onto the screen.
	View ViewConfig `toml:"view"`

	// Conceal toggles the built-in concealment rules.
	Conceal ConcealConfig `toml:"conceal"`

	// Editor holds document-level settings.
	Editor EditorConfig `toml:"editor"`

	// ThemePath points at a JSON theme file. Empty means the built-in
	// default theme.
	ThemePath string `toml:"theme"`
}

// ViewConfig controls screen mapping.
type ViewConfig struct {
	// Width is the display width in cells. Zero means use the
	// terminal width.
	Width int `toml:"width"`

	// TabWidth is the number of cells a tab expands to.
	TabWidth int `toml:"tab_width"`
}

// ConcealConfig toggles the built-in concealment rules.
type ConcealConfig struct {
	// Tabs renders tabs as a visible marker followed by padding.
	Tabs bool `toml:"tabs"`

	// NonPrintable renders control characters as Unicode control
	// pictures.
	NonPrintable bool `toml:"non_printable"`
}

// EditorConfig holds document-level settings.
type EditorConfig struct {
	// MaxUndoEntries caps the undo history per document.
	MaxUndoEntries int `toml:"max_undo_entries"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		View: ViewConfig{
			TabWidth: 4,
		},
		Conceal: ConcealConfig{
			Tabs:         true,
			NonPrintable: true,
		},
		Editor: EditorConfig{
			MaxUndoEntries: 1000,
		},
	}
}

// Load reads configuration from a TOML file. A missing file is not an
// error; the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
	}

	cfg.normalize()
	return cfg, nil
}

// normalize clamps out-of-range values back to their defaults.
func (c *Config) normalize() {
	if c.View.Width < 0 {
		c.View.Width = 0
	}
	if c.View.TabWidth < 1 {
		c.View.TabWidth = Default().View.TabWidth
	}
	if c.Editor.MaxUndoEntries < 0 {
		c.Editor.MaxUndoEntries = Default().Editor.MaxUndoEntries
	}
}
