// Package config provides YAML-based configuration loading and difficulty
// levels for the snake game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Config is the complete, immutable game configuration. It is loaded once at
// startup and handed by value to the game and its renderer.
type Config struct {
	Grid       GridConfig       `yaml:"grid"`
	Cell       CellConfig       `yaml:"cell"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Theme      ThemeConfig      `yaml:"theme"`

	// Source describes where the config came from ("embedded" or a path).
	Source string `yaml:"-"`
}

// GridConfig defines the playfield size in cells.
type GridConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// CellConfig defines how many terminal characters one grid cell occupies.
type CellConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DifficultyConfig maps each level to a tick rate (ticks per second).
type DifficultyConfig struct {
	Easy   int `yaml:"easy"`
	Medium int `yaml:"medium"`
	Hard   int `yaml:"hard"`
}

// ThemeConfig holds color names for the board elements.
type ThemeConfig struct {
	Snake   string `yaml:"snake"`
	Head    string `yaml:"head"`
	Food    string `yaml:"food"`
	Grid    string `yaml:"grid"`
	Frame   string `yaml:"frame"`
	Text    string `yaml:"text"`
	Overlay string `yaml:"overlay"`
}

// Palette is a ThemeConfig resolved to screen colors.
type Palette struct {
	Snake   core.Color
	Head    core.Color
	Food    core.Color
	Grid    core.Color
	Frame   core.Color
	Text    core.Color
	Overlay core.Color
}

// Minimum grid size: the starting snake is three cells long and sits one
// cell left of center.
const (
	MinCols = 4
	MinRows = 2
)

// Validate reports every problem with the config at once.
func (c Config) Validate() error {
	var errs []error

	if c.Grid.Cols < MinCols || c.Grid.Rows < MinRows {
		errs = append(errs, fmt.Errorf("grid %dx%d is smaller than %dx%d",
			c.Grid.Cols, c.Grid.Rows, MinCols, MinRows))
	}
	if c.Cell.Width <= 0 || c.Cell.Height <= 0 {
		errs = append(errs, fmt.Errorf("cell size %dx%d must be positive",
			c.Cell.Width, c.Cell.Height))
	}
	for _, d := range Difficulties() {
		if rate := c.Difficulty.TickRate(d); rate <= 0 {
			errs = append(errs, fmt.Errorf("tick rate for %s must be positive, got %d", d, rate))
		}
	}
	if _, err := c.Theme.Palette(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// Palette resolves the theme's color names.
func (t ThemeConfig) Palette() (Palette, error) {
	var p Palette
	entries := []struct {
		key  string
		name string
		dst  *core.Color
	}{
		{"snake", t.Snake, &p.Snake},
		{"head", t.Head, &p.Head},
		{"food", t.Food, &p.Food},
		{"grid", t.Grid, &p.Grid},
		{"frame", t.Frame, &p.Frame},
		{"text", t.Text, &p.Text},
		{"overlay", t.Overlay, &p.Overlay},
	}
	for _, e := range entries {
		c, ok := core.ParseColor(e.name)
		if !ok {
			return Palette{}, fmt.Errorf("theme.%s: unknown color %q", e.key, e.name)
		}
		*e.dst = c
	}
	return p, nil
}
