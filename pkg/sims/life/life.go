package life

import (
	"fmt"

	"life-sandbox/pkg/core"
)

// Neighbors returns the Moore neighbourhood of (x, y) clipped to the grid.
// Edges do not wrap, so border cells have fewer than eight neighbours.
func Neighbors(g *core.Grid, x, y int) []core.CellIndex {
	if !g.InBounds(x, y) {
		panic(fmt.Errorf("%w: neighbours of (%d,%d)", core.ErrOutOfBounds, x, y))
	}
	out := make([]core.CellIndex, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if g.InBounds(nx, ny) {
				out = append(out, core.CellIndex{X: nx, Y: ny})
			}
		}
	}
	return out
}

// CountNeighbors counts the live cells around (x, y).
func CountNeighbors(g *core.Grid, x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Errorf("%w: neighbours of (%d,%d)", core.ErrOutOfBounds, x, y))
	}
	w, h := g.Width(), g.Height()
	n := 0
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= h {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			nx := x + dx
			if (dx == 0 && dy == 0) || nx < 0 || nx >= w {
				continue
			}
			if g.Get(nx, ny) {
				n++
			}
		}
	}
	return n
}

// NextState applies Conway's rule to a single cell.
func NextState(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// Advance returns the next generation of g. The input is left untouched.
func Advance(g *core.Grid) *core.Grid {
	next := core.NewGrid(g.Width(), g.Height())
	AdvanceInto(next, g)
	return next
}

// AdvanceInto writes the generation following src into dst. The grids must
// be distinct and share dimensions; every neighbour count reads src only.
func AdvanceInto(dst, src *core.Grid) {
	if dst == src {
		panic("life: AdvanceInto needs distinct grids")
	}
	if dst.Size() != src.Size() {
		panic(fmt.Errorf("%w: advance %dx%d into %dx%d", core.ErrInvalidSize,
			src.Width(), src.Height(), dst.Width(), dst.Height()))
	}
	w, h := src.Width(), src.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.Set(x, y, NextState(src.Get(x, y), CountNeighbors(src, x, y)))
		}
	}
}
