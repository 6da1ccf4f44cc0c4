package life

import (
	"errors"
	"fmt"
	"slices"

	"life-sandbox/pkg/core"
)

// ErrUnknownPattern reports a pattern name missing from Patterns.
var ErrUnknownPattern = errors.New("life: unknown pattern")

// Pattern is a named seed shape. Cells are offsets from its top-left corner.
type Pattern struct {
	Name  string
	Descr string
	Cells []core.CellIndex
}

// Bounds returns the smallest size enclosing every cell of the pattern.
func (p Pattern) Bounds() core.Size {
	var s core.Size
	for _, c := range p.Cells {
		s.W = max(s.W, c.X+1)
		s.H = max(s.H, c.Y+1)
	}
	return s
}

var patterns = map[string]Pattern{
	"block": {"block", "2x2 still life", cells(
		"##",
		"##",
	)},
	"beehive": {"beehive", "six-cell still life", cells(
		".##.",
		"#..#",
		".##.",
	)},
	"blinker": {"blinker", "period-2 oscillator", cells(
		"###",
	)},
	"toad": {"toad", "period-2 oscillator", cells(
		".###",
		"###.",
	)},
	"beacon": {"beacon", "period-2 oscillator", cells(
		"##..",
		"##..",
		"..##",
		"..##",
	)},
	"glider": {"glider", "diagonal spaceship", cells(
		".#.",
		"..#",
		"###",
	)},
	"lwss": {"lwss", "lightweight spaceship", cells(
		".#..#",
		"#....",
		"#...#",
		"####.",
	)},
	"r-pentomino": {"r-pentomino", "methuselah", cells(
		".##",
		"##.",
		".#.",
	)},
}

func cells(rows ...string) []core.CellIndex {
	var out []core.CellIndex
	for y, row := range rows {
		for x, ch := range row {
			if ch == '#' {
				out = append(out, core.CellIndex{X: x, Y: y})
			}
		}
	}
	return out
}

// Patterns returns a copy of the built-in seed shapes.
func Patterns() map[string]Pattern {
	out := make(map[string]Pattern, len(patterns))
	for name, p := range patterns {
		p.Cells = slices.Clone(p.Cells)
		out[name] = p
	}
	return out
}

// PatternNames returns the pattern names in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Stamp sets the pattern's cells alive with its bounding box centred on g.
// Cells that fall outside the grid are dropped.
func Stamp(g *core.Grid, name string) error {
	p, ok := patterns[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	b := p.Bounds()
	ox := (g.Width() - b.W) / 2
	oy := (g.Height() - b.H) / 2
	for _, c := range p.Cells {
		x, y := ox+c.X, oy+c.Y
		if g.InBounds(x, y) {
			g.Set(x, y, true)
		}
	}
	return nil
}
