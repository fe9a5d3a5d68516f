package sketch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is the file form of Options. Zero fields keep their defaults.
//
//	width = 600
//	height = 600
//	fps = 24
//	background = "skyblue"
//	bounds = [-5, -5, 5, 5]
type Config struct {
	Width      int    `toml:"width" yaml:"width"`
	Height     int    `toml:"height" yaml:"height"`
	FrameRate  int    `toml:"fps" yaml:"fps"`
	Background string `toml:"background" yaml:"background"`
	Title      string `toml:"title" yaml:"title"`
	AutoClear  *bool  `toml:"auto_clear" yaml:"auto_clear"`
	// Bounds is decoded loosely and checked by Options: four numbers
	// minX, minY, maxX, maxY.
	Bounds     any    `toml:"bounds" yaml:"bounds"`
	ShowGrid   bool   `toml:"show_grid" yaml:"show_grid"`
	Fullscreen bool   `toml:"fullscreen" yaml:"fullscreen"`
	ShowStats  bool   `toml:"show_stats" yaml:"show_stats"`
	ExportPath string `toml:"export_path" yaml:"export_path"`
	Seed       uint64 `toml:"seed" yaml:"seed"`
}

// LoadConfig reads a TOML (.toml) or YAML (.yaml, .yml) config file.
// A leading "~" in path expands to the home directory.
func LoadConfig(path string) (Config, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := ParseConfig(data, filepath.Ext(path))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes data in the given format: "toml", "yaml" or "yml",
// with or without a leading dot.
func ParseConfig(data []byte, format string) (Config, error) {
	var cfg Config
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	default:
		return Config{}, &ConfigError{Field: "format", Value: format, Reason: "want toml or yaml"}
	}
	return cfg, nil
}

// Options converts the config to app options. Background must be a color
// ParseColor accepts; bounds must be a list of four numbers.
func (c Config) Options() ([]Option, error) {
	var opts []Option
	if c.Width != 0 || c.Height != 0 {
		w, h := c.Width, c.Height
		if w == 0 {
			w = DefaultOptions().Width
		}
		if h == 0 {
			h = DefaultOptions().Height
		}
		opts = append(opts, WithSize(w, h))
	}
	if c.FrameRate != 0 {
		opts = append(opts, WithFrameRate(c.FrameRate))
	}
	if c.Background != "" {
		bg, err := ParseColor(c.Background)
		if err != nil {
			return nil, &ConfigError{Field: "background", Value: c.Background, Reason: err.Error()}
		}
		opts = append(opts, WithBackground(bg))
	}
	if c.Title != "" {
		opts = append(opts, WithTitle(c.Title))
	}
	if c.AutoClear != nil {
		opts = append(opts, WithAutoClear(*c.AutoClear))
	}
	if c.Bounds != nil {
		b, err := decodeBounds(c.Bounds)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithBounds(b.MinX, b.MinY, b.MaxX, b.MaxY))
	}
	if c.ShowGrid {
		opts = append(opts, WithGrid(true))
	}
	if c.Fullscreen {
		opts = append(opts, WithFullscreen(true))
	}
	if c.ShowStats {
		opts = append(opts, WithStats(true))
	}
	if c.ExportPath != "" {
		opts = append(opts, WithExportPath(c.ExportPath))
	}
	if c.Seed != 0 {
		opts = append(opts, WithSeed(c.Seed))
	}
	return opts, nil
}

func decodeBounds(v any) (Bounds, error) {
	list, ok := v.([]any)
	if !ok || len(list) != 4 {
		return Bounds{}, fmt.Errorf("%w: bounds must be four numbers, got %T", ErrTypeMismatch, v)
	}
	var n [4]float64
	for i, e := range list {
		f, ok := toFloat(e)
		if !ok {
			return Bounds{}, fmt.Errorf("%w: bounds[%d] is %T, not a number", ErrTypeMismatch, i, e)
		}
		n[i] = f
	}
	return Bounds{MinX: n[0], MinY: n[1], MaxX: n[2], MaxY: n[3]}, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
