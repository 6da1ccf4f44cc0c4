package app

import (
	"io"
	"log/slog"

	"life-sandbox/pkg/sims/life"
	"life-sandbox/pkg/spatial"
)

// Controller routes shell input to a life session. Pointer positions arrive
// in centered canvas space and are resolved to cells through the mapper, so
// every shell shares the same editing rules.
type Controller struct {
	session  *life.Session
	mapper   *spatial.Mapper
	log      *slog.Logger
	patterns []string
	next     int
}

// NewController wires a session to a pointer mapper. The mapper must cover
// the session grid.
func NewController(session *life.Session, mapper *spatial.Mapper, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Controller{
		session:  session,
		mapper:   mapper,
		log:      logger,
		patterns: life.PatternNames(),
	}
}

// Session returns the controlled session.
func (c *Controller) Session() *life.Session { return c.session }

// Mapper returns the pointer mapper.
func (c *Controller) Mapper() *spatial.Mapper { return c.mapper }

// Press starts a stroke painting alive or dead cells and paints under p.
func (c *Controller) Press(p spatial.Point, alive bool) bool {
	c.session.BeginStroke(alive)
	return c.Drag(p)
}

// Drag paints under p while a stroke is active.
func (c *Controller) Drag(p spatial.Point) bool {
	if !c.session.Stroking() {
		return false
	}
	idx, ok := c.mapper.Locate(p)
	if !ok {
		return false
	}
	return c.session.PaintStroke(idx.X, idx.Y)
}

// Release ends the active stroke.
func (c *Controller) Release() { c.session.EndStroke() }

// Start begins advancing generations.
func (c *Controller) Start() bool { return c.session.Start() }

// Clear kills every cell.
func (c *Controller) Clear() { c.session.Clear() }

// Reset randomizes the grid with seed and returns to editing.
func (c *Controller) Reset(seed int64) { c.session.Reset(seed) }

// Tick advances one generation if the session is running.
func (c *Controller) Tick() bool { return c.session.Step() }

// Pattern names the pattern StampNext will place.
func (c *Controller) Pattern() string {
	if len(c.patterns) == 0 {
		return ""
	}
	return c.patterns[c.next]
}

// StampNext places the current pattern at the grid centre and moves on to
// the next one. Nothing advances when the session is not editable.
func (c *Controller) StampNext() (string, error) {
	name := c.Pattern()
	if name == "" {
		return "", nil
	}
	if err := c.session.Seed(name); err != nil {
		c.log.Warn("stamp rejected", "pattern", name, "err", err)
		return name, err
	}
	c.next = (c.next + 1) % len(c.patterns)
	return name, nil
}
