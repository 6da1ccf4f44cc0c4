package core

import (
	"errors"
	"fmt"
)

// MaxSize bounds each grid dimension.
const MaxSize = 1024

// DefaultDensity is the chance a cell starts alive on a randomized grid.
const DefaultDensity = 0.01

var (
	// ErrInvalidSize reports a grid dimension outside (0, MaxSize].
	ErrInvalidSize = errors.New("core: invalid grid size")
	// ErrOutOfBounds reports a cell access outside the grid.
	ErrOutOfBounds = errors.New("core: cell out of bounds")
)

// Grid stores alive/dead cells in row-major order. It is sized exactly to
// its logical dimensions.
type Grid struct {
	w, h  int
	cells []bool
}

// NewGrid allocates an all-dead grid. It panics when either dimension is not
// in (0, MaxSize].
func NewGrid(w, h int) *Grid {
	if w <= 0 || h <= 0 || w > MaxSize || h > MaxSize {
		panic(fmt.Errorf("%w: %dx%d (max %d)", ErrInvalidSize, w, h, MaxSize))
	}
	return &Grid{w: w, h: h, cells: make([]bool, w*h)}
}

// NewRandomGrid allocates a grid where every cell is independently alive
// with the given probability. A nil rng is seeded with 0.
func NewRandomGrid(w, h int, density float64, rng *RNG) *Grid {
	if rng == nil {
		rng = NewRNG(0)
	}
	g := NewGrid(w, h)
	for i := range g.cells {
		g.cells[i] = rng.Chance(density)
	}
	return g
}

// Create builds an all-dead grid, or a randomized one at DefaultDensity.
// rng may be nil; see NewRandomGrid.
func Create(w, h int, randomized bool, rng *RNG) *Grid {
	if !randomized {
		return NewGrid(w, h)
	}
	return NewRandomGrid(w, h, DefaultDensity, rng)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.w && y < g.h
}

func (g *Grid) index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, g.w, g.h))
	}
	return y*g.w + x
}

// Get reports whether the cell at (x, y) is alive.
func (g *Grid) Get(x, y int) bool { return g.cells[g.index(x, y)] }

// Set updates the cell at (x, y).
func (g *Grid) Set(x, y int, alive bool) { g.cells[g.index(x, y)] = alive }

// Clear marks every cell dead.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = false
	}
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	c := &Grid{w: g.w, h: g.h, cells: make([]bool, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// CopyFrom overwrites g with the contents of src. Both grids must have the
// same dimensions.
func (g *Grid) CopyFrom(src *Grid) {
	if g.w != src.w || g.h != src.h {
		panic(fmt.Errorf("%w: copy %dx%d into %dx%d", ErrInvalidSize, src.w, src.h, g.w, g.h))
	}
	copy(g.cells, src.cells)
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.w != o.w || g.h != o.h {
		return false
	}
	for i, c := range g.cells {
		if o.cells[i] != c {
			return false
		}
	}
	return true
}

// LiveCells counts the alive cells.
func (g *Grid) LiveCells() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// Alive lists the coordinates of every live cell in row-major order.
func (g *Grid) Alive() []CellIndex {
	var out []CellIndex
	for i, c := range g.cells {
		if c {
			out = append(out, CellIndex{X: i % g.w, Y: i / g.w})
		}
	}
	return out
}

// Fill writes the grid as row-major 0/1 values into buf, growing it when it
// is too small, and returns the filled slice.
func (g *Grid) Fill(buf []uint8) []uint8 {
	if cap(buf) < len(g.cells) {
		buf = make([]uint8, len(g.cells))
	}
	buf = buf[:len(g.cells)]
	for i, c := range g.cells {
		buf[i] = 0
		if c {
			buf[i] = 1
		}
	}
	return buf
}
