package life

import "strconv"

// Config controls the dimensions and initial contents of a Session.
type Config struct {
	Width  int
	Height int

	// Density is the chance a cell starts alive when Randomize is set.
	Density   float64
	Seed      int64
	Randomize bool

	// Pattern, when non-empty, is stamped at the centre of an all-dead grid
	// instead of randomizing.
	Pattern string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:     64,
		Height:    64,
		Density:   0.01,
		Seed:      42,
		Randomize: true,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["random"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Randomize = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		c.Pattern = v
	}
	return c
}
