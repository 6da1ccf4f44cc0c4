package app

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"life-sandbox/internal/logging"
	"life-sandbox/pkg/core"
	"life-sandbox/pkg/sims/life"
	"life-sandbox/pkg/spatial"

	"gopkg.in/yaml.v3"
)

// Config represents the command-line and file parameters for the shells.
type Config struct {
	CanvasWidth  int     `yaml:"canvas_width"`
	CanvasHeight int     `yaml:"canvas_height"`
	CellSize     int     `yaml:"cell_size"`
	TPS          int     `yaml:"tps"`
	StepEvery    int     `yaml:"step_every"`
	Seed         int64   `yaml:"seed"`
	Density      float64 `yaml:"density"`
	Randomize    bool    `yaml:"randomize"`
	Pattern      string  `yaml:"pattern"`
	Snap         string  `yaml:"snap"`
	ShowGrid     bool    `yaml:"show_grid"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogFile   string `yaml:"log_file"`

	ConfigFile string `yaml:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		CanvasWidth:  512,
		CanvasHeight: 512,
		CellSize:     8,
		TPS:          60,
		StepEvery:    5,
		Seed:         42,
		Density:      core.DefaultDensity,
		Randomize:    true,
		Snap:         spatial.SnapFloor.String(),
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "YAML file with default settings")
	fs.IntVar(&c.CanvasWidth, "width", c.CanvasWidth, "canvas width in pixels")
	fs.IntVar(&c.CanvasHeight, "height", c.CanvasHeight, "canvas height in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.StepEvery, "every", c.StepEvery, "advance one generation every N frames")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomized grids")
	fs.Float64Var(&c.Density, "density", c.Density, "chance a cell starts alive")
	fs.BoolVar(&c.Randomize, "random", c.Randomize, "start from a randomized grid")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "start from a named pattern")
	fs.StringVar(&c.Snap, "snap", c.Snap, "pointer snapping: floor or nearest")
	fs.BoolVar(&c.ShowGrid, "grid", c.ShowGrid, "draw grid lines")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "text or json")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "write logs to this file")
}

// Parse reads args into a Config. When -config names a file, its values
// become the defaults and the flags on the command line still win.
func Parse(name string, args []string) (*Config, error) {
	cfg := NewConfig()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.ConfigFile == "" {
		return cfg, nil
	}

	base := NewConfig()
	if err := base.LoadFile(cfg.ConfigFile); err != nil {
		return nil, err
	}
	fs = flag.NewFlagSet(name, flag.ContinueOnError)
	base.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return base, nil
}

// LoadFile overlays the YAML document at path onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	c.ConfigFile = path
	return nil
}

// Validate reports every setting the shells cannot run with.
func (c *Config) Validate() error {
	var errs []error
	switch {
	case c.CellSize <= 0:
		errs = append(errs, fmt.Errorf("cell size must be positive, got %d", c.CellSize))
	case c.CanvasWidth < c.CellSize || c.CanvasHeight < c.CellSize:
		errs = append(errs, fmt.Errorf("canvas %dx%d smaller than one cell", c.CanvasWidth, c.CanvasHeight))
	case c.CanvasWidth%c.CellSize != 0 || c.CanvasHeight%c.CellSize != 0:
		errs = append(errs, fmt.Errorf("canvas %dx%d is not a multiple of cell size %d", c.CanvasWidth, c.CanvasHeight, c.CellSize))
	case c.CanvasWidth/c.CellSize > core.MaxSize || c.CanvasHeight/c.CellSize > core.MaxSize:
		errs = append(errs, fmt.Errorf("grid exceeds %d cells per side", core.MaxSize))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	if c.StepEvery <= 0 {
		errs = append(errs, fmt.Errorf("step interval must be positive, got %d", c.StepEvery))
	}
	if c.Density < 0 || c.Density > 1 {
		errs = append(errs, fmt.Errorf("density %v outside [0, 1]", c.Density))
	}
	if _, err := spatial.ParseStrategy(c.Snap); err != nil {
		errs = append(errs, err)
	}
	if c.Pattern != "" {
		if _, ok := life.Patterns()[c.Pattern]; !ok {
			errs = append(errs, fmt.Errorf("%w: %q", life.ErrUnknownPattern, c.Pattern))
		}
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat))
	}
	return errors.Join(errs...)
}

// Cells returns the grid dimensions the canvas holds.
func (c *Config) Cells() core.Size {
	return core.Size{W: c.CanvasWidth / c.CellSize, H: c.CanvasHeight / c.CellSize}
}

// SessionConfig derives the engine configuration.
func (c *Config) SessionConfig() life.Config {
	cells := c.Cells()
	return life.Config{
		Width:     cells.W,
		Height:    cells.H,
		Density:   c.Density,
		Seed:      c.Seed,
		Randomize: c.Randomize,
		Pattern:   c.Pattern,
	}
}

// Mapper builds the pointer mapper for the canvas. Call Validate first.
func (c *Config) Mapper() *spatial.Mapper {
	strategy, _ := spatial.ParseStrategy(c.Snap)
	return spatial.NewMapper(c.CanvasWidth, c.CanvasHeight, c.CellSize, strategy)
}

// Logging returns the logger settings.
func (c *Config) Logging() logging.Config {
	return logging.Config{Level: c.LogLevel, Format: c.LogFormat, File: c.LogFile}
}
