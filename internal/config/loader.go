package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/snake.yaml
var defaultYAML []byte

// SourceEmbedded is the Source of a config built from the embedded defaults.
const SourceEmbedded = "embedded"

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}

// Default returns the embedded default configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return fallback() // Only reachable if the embedded file is broken
	}
	cfg.Source = SourceEmbedded
	return cfg
}

// fallback mirrors defaults/snake.yaml.
func fallback() Config {
	return Config{
		Grid:       GridConfig{Cols: 30, Rows: 20},
		Cell:       CellConfig{Width: 2, Height: 1},
		Difficulty: DifficultyConfig{Easy: 8, Medium: 12, Hard: 18},
		Theme: ThemeConfig{
			Snake:   "green",
			Head:    "bright_green",
			Food:    "bright_red",
			Grid:    "dark_gray",
			Frame:   "gray",
			Text:    "bright_white",
			Overlay: "bright_yellow",
		},
		Source: SourceEmbedded,
	}
}

// Load loads the game configuration.
// Search order: customPath -> ~/.tui-snake/config.yaml -> embedded default.
// Files are layered over the defaults, so they only need the keys they change.
// A custom path that cannot be read is an error; a broken user file is too,
// since silently ignoring it hides typos.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		return loadFile(customPath)
	}

	if userPath := userConfigPath(); userPath != "" {
		if _, err := os.Stat(userPath); err == nil {
			return loadFile(userPath)
		}
	}

	cfg := Default()
	return cfg, cfg.Validate()
}

// Parse layers YAML data over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: cannot parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string) (Config, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: cannot expand %s: %w", path, err)
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to read %s: %w", expanded, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%w (in %s)", err, expanded)
	}
	cfg.Source = expanded
	return cfg, nil
}

// userConfigPath returns the per-user config file path, or empty if the home
// directory is unavailable.
func userConfigPath() string {
	home, err := homedir.Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tui-snake", "config.yaml")
}
