package life

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"life-sandbox/pkg/core"
)

// ErrNotEditable reports an edit attempted while the session is running.
var ErrNotEditable = errors.New("life: session is not editable while running")

// Session owns a grid between shell callbacks and enforces the run state.
// It is not safe for concurrent use.
type Session struct {
	cfg Config
	log *slog.Logger

	cur *core.Grid
	nxt *core.Grid

	state      RunState
	generation int
	stroke     stroke

	display []uint8
}

var (
	_ core.Sim            = (*Session)(nil)
	_ core.StatusProvider = (*Session)(nil)
)

// NewSession builds a session with its initial grid. A nil logger discards
// output.
func NewSession(cfg Config, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Session{cfg: cfg, log: logger.With("sim", "life")}
	s.cur = s.initialGrid(cfg.Seed)
	s.nxt = core.NewGrid(cfg.Width, cfg.Height)
	if cfg.Pattern != "" {
		if err := Stamp(s.cur, cfg.Pattern); err != nil {
			return nil, err
		}
	}
	s.log.Info("session created",
		"width", cfg.Width, "height", cfg.Height,
		"pattern", cfg.Pattern, "live", s.cur.LiveCells())
	return s, nil
}

func (s *Session) initialGrid(seed int64) *core.Grid {
	if s.cfg.Randomize && s.cfg.Pattern == "" {
		return core.NewRandomGrid(s.cfg.Width, s.cfg.Height, s.cfg.Density, core.NewRNG(seed))
	}
	return core.NewGrid(s.cfg.Width, s.cfg.Height)
}

// Name returns the simulation identifier.
func (s *Session) Name() string { return "life" }

// Size returns the grid dimensions.
func (s *Session) Size() core.Size { return s.cur.Size() }

// Grid exposes the current generation. Callers must treat it as read-only.
func (s *Session) Grid() *core.Grid { return s.cur }

// Cells renders the current generation into a row-major 0/1 buffer.
func (s *Session) Cells() []uint8 {
	s.display = s.cur.Fill(s.display)
	return s.display
}

// State returns the current run state.
func (s *Session) State() RunState { return s.state }

// Generation returns how many ticks have advanced the grid since the last
// reset.
func (s *Session) Generation() int { return s.generation }

// LiveCells counts the alive cells of the current generation.
func (s *Session) LiveCells() int { return s.cur.LiveCells() }

// Status summarises the session for HUDs.
func (s *Session) Status() core.Status {
	return core.Status{
		State:      s.state.String(),
		Generation: s.generation,
		LiveCells:  s.cur.LiveCells(),
	}
}

// Start moves from Init to Running and reports whether the state changed.
func (s *Session) Start() bool {
	if s.state == StateRunning {
		return false
	}
	s.state = StateRunning
	s.stroke = stroke{}
	s.log.Info("simulation started", "live", s.cur.LiveCells())
	return true
}

// Step advances one generation when running and reports whether it did.
func (s *Session) Step() bool {
	if !s.state.Advancing() {
		return false
	}
	AdvanceInto(s.nxt, s.cur)
	s.cur, s.nxt = s.nxt, s.cur
	s.generation++
	s.log.Debug("generation", "n", s.generation, "live", s.cur.LiveCells())
	return true
}

// Reset replaces the grid with a freshly randomized one and returns to Init.
func (s *Session) Reset(seed int64) {
	rng := core.NewRNG(seed)
	s.cur = core.NewRandomGrid(s.cfg.Width, s.cfg.Height, s.cfg.Density, rng)
	s.nxt = core.NewGrid(s.cfg.Width, s.cfg.Height)
	s.state = StateInit
	s.generation = 0
	s.stroke = stroke{}
	s.log.Info("session reset", "seed", seed, "live", s.cur.LiveCells())
}

// Clear wipes every cell. Run state and generation are kept.
func (s *Session) Clear() {
	s.cur.Clear()
	s.log.Info("cells cleared")
}

// Paint sets a single cell while the session is editable. It reports
// whether the edit was applied; out-of-range indices panic.
func (s *Session) Paint(x, y int, alive bool) bool {
	if !s.state.Editable() {
		return false
	}
	s.cur.Set(x, y, alive)
	return true
}

// Seed stamps a named pattern at the centre of the grid.
func (s *Session) Seed(pattern string) error {
	if !s.state.Editable() {
		return fmt.Errorf("%w: seed %q", ErrNotEditable, pattern)
	}
	if err := Stamp(s.cur, pattern); err != nil {
		return err
	}
	s.log.Info("pattern stamped", "pattern", pattern, "live", s.cur.LiveCells())
	return nil
}

// BeginStroke starts a pointer drag that paints the given value.
func (s *Session) BeginStroke(alive bool) {
	s.stroke = stroke{active: true, alive: alive}
}

// EndStroke finishes the current pointer drag.
func (s *Session) EndStroke() { s.stroke.active = false }

// Stroking reports whether a pointer drag is in progress.
func (s *Session) Stroking() bool { return s.stroke.active }

// Brush returns the value the current or last stroke paints.
func (s *Session) Brush() bool { return s.stroke.alive }

// PaintStroke paints the stroke's value at (x, y) when a stroke is active.
func (s *Session) PaintStroke(x, y int) bool {
	if !s.stroke.active {
		return false
	}
	return s.Paint(x, y, s.stroke.alive)
}
