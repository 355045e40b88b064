package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/crossplot/internal/interact"
	"github.com/san-kum/crossplot/internal/table"
	"github.com/san-kum/crossplot/internal/viewport"
)

const (
	DefaultDelimiter   = ","
	DefaultTheme       = "cyberpunk"
	DefaultPlotWidth   = 60
	DefaultPlotHeight  = 18
	DefaultMarker      = 3.0
	DefaultHoverRadius = 6.0
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Delimiter   string     `yaml:"delimiter"`
	Sheet       string     `yaml:"sheet"`
	PadFraction float64    `yaml:"pad_fraction"`
	ZoomIn      float64    `yaml:"zoom_in"`
	ZoomOut     float64    `yaml:"zoom_out"`
	Theme       string     `yaml:"theme"`
	LogFile     string     `yaml:"log_file"`
	Plot        PlotConfig `yaml:"plot"`
	HoverRadius float64    `yaml:"hover_radius"`
}

type PlotConfig struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	MarkerRadius float64 `yaml:"marker_radius"`
}

func DefaultConfig() *Config {
	return &Config{
		Delimiter:   DefaultDelimiter,
		PadFraction: viewport.DefaultPad,
		ZoomIn:      interact.DefaultZoomIn,
		ZoomOut:     interact.DefaultZoomOut,
		Theme:       DefaultTheme,
		Plot: PlotConfig{
			Width:        DefaultPlotWidth,
			Height:       DefaultPlotHeight,
			MarkerRadius: DefaultMarker,
		},
		HoverRadius: DefaultHoverRadius,
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return fmt.Errorf("%w: delimiter must be one character, got %q", ErrInvalid, c.Delimiter)
	}
	switch c.Delimiter {
	case `"`, "\r", "\n":
		return fmt.Errorf("%w: delimiter %q is reserved", ErrInvalid, c.Delimiter)
	}
	if c.PadFraction <= 0 {
		return fmt.Errorf("%w: pad_fraction must be positive", ErrInvalid)
	}
	if c.ZoomIn <= 0 || c.ZoomIn >= 1 {
		return fmt.Errorf("%w: zoom_in must be in (0, 1), got %v", ErrInvalid, c.ZoomIn)
	}
	if c.ZoomOut <= 1 {
		return fmt.Errorf("%w: zoom_out must be above 1, got %v", ErrInvalid, c.ZoomOut)
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		return fmt.Errorf("%w: plot size must be positive", ErrInvalid)
	}
	return nil
}

// Rune returns the delimiter as a rune, falling back to the table default.
func (c *Config) Rune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	if r == utf8.RuneError {
		return table.DefaultDelimiter
	}
	return r
}

func (c *Config) LoadOptions() table.LoadOptions {
	return table.LoadOptions{Delimiter: c.Rune(), Sheet: c.Sheet}
}

func (c *Config) InteractOptions() interact.Options {
	return interact.Options{ZoomIn: c.ZoomIn, ZoomOut: c.ZoomOut, Pad: c.PadFraction}
}
