package main

import (
	"life-sandbox/internal/app"

	"github.com/integrii/flaggy"
)

// parseArgs reads the terminal flags. A --config file supplies the
// defaults and flags on the command line still win.
func parseArgs(args []string) (*app.Config, error) {
	cfg := app.NewConfig()
	if err := newParser(cfg).ParseArgs(args); err != nil {
		return nil, err
	}
	if cfg.ConfigFile == "" {
		return cfg, nil
	}

	base := app.NewConfig()
	if err := base.LoadFile(cfg.ConfigFile); err != nil {
		return nil, err
	}
	if err := newParser(base).ParseArgs(args); err != nil {
		return nil, err
	}
	return base, nil
}

func newParser(cfg *app.Config) *flaggy.Parser {
	p := flaggy.NewParser("lifeterm")
	p.Description = "Conway's Game of Life in the terminal"
	p.ShowHelpOnUnexpected = true

	p.String(&cfg.ConfigFile, "c", "config", "YAML file with default settings")
	p.Int(&cfg.CanvasWidth, "", "width", "canvas width in pixels")
	p.Int(&cfg.CanvasHeight, "", "height", "canvas height in pixels")
	p.Int(&cfg.CellSize, "", "cell", "cell size in pixels")
	p.Int(&cfg.TPS, "", "tps", "frames per second")
	p.Int(&cfg.StepEvery, "e", "every", "advance one generation every N frames")
	p.Int64(&cfg.Seed, "s", "seed", "seed for randomized grids")
	p.Float64(&cfg.Density, "d", "density", "chance a cell starts alive")
	p.Bool(&cfg.Randomize, "r", "random", "start from a randomized grid")
	p.String(&cfg.Pattern, "p", "pattern", "start from a named pattern")
	p.String(&cfg.Snap, "", "snap", "pointer snapping: floor or nearest")
	p.String(&cfg.LogLevel, "", "log-level", "debug, info, warn or error")
	p.String(&cfg.LogFormat, "", "log-format", "text or json")
	p.String(&cfg.LogFile, "l", "log-file", "write logs to this file")
	return p
}
