package life

import (
	"testing"

	"life-sandbox/pkg/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridWith(w, h int, alive ...core.CellIndex) *core.Grid {
	g := core.NewGrid(w, h)
	for _, c := range alive {
		g.Set(c.X, c.Y, true)
	}
	return g
}

func expectAlive(t *testing.T, g *core.Grid, want ...core.CellIndex) {
	t.Helper()
	expects := map[core.CellIndex]bool{}
	for _, c := range want {
		expects[c] = true
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			alive := g.Get(x, y)
			if expects[core.CellIndex{X: x, Y: y}] != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, !alive)
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	row := []core.CellIndex{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}}
	col := []core.CellIndex{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}

	g := gridWith(5, 5, row...)
	next := Advance(g)
	expectAlive(t, next, col...)

	again := Advance(next)
	expectAlive(t, again, row...)
}

func TestCentredBlinker(t *testing.T) {
	g := gridWith(5, 5, core.CellIndex{X: 2, Y: 1}, core.CellIndex{X: 2, Y: 2}, core.CellIndex{X: 2, Y: 3})
	next := Advance(g)
	expectAlive(t, next, core.CellIndex{X: 1, Y: 2}, core.CellIndex{X: 2, Y: 2}, core.CellIndex{X: 3, Y: 2})
}

func TestEmptyGridIsFixedPoint(t *testing.T) {
	g := core.NewGrid(7, 4)
	next := Advance(g)
	assert.Zero(t, next.LiveCells())
	assert.Zero(t, Advance(next).LiveCells())
}

func TestSingleCellDies(t *testing.T) {
	g := gridWith(3, 3, core.CellIndex{X: 1, Y: 1})
	assert.Zero(t, Advance(g).LiveCells())
}

func TestBlockIsStillLife(t *testing.T) {
	block := []core.CellIndex{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}}
	g := gridWith(4, 4, block...)
	expectAlive(t, Advance(g), block...)

	corner := []core.CellIndex{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	expectAlive(t, Advance(gridWith(2, 2, corner...)), corner...)
}

func TestAdvanceDoesNotMutateInput(t *testing.T) {
	g := core.NewRandomGrid(32, 32, 0.35, core.NewRNG(5))
	before := g.Clone()

	a := Advance(g)
	b := Advance(g)

	assert.True(t, g.Equal(before), "input grid changed")
	assert.True(t, a.Equal(b), "advance is not deterministic")
	assert.NotSame(t, g, a)
}

func TestNoWrapAround(t *testing.T) {
	// A vertical bar on the left edge would feed the right edge on a torus.
	g := gridWith(5, 5, core.CellIndex{X: 0, Y: 1}, core.CellIndex{X: 0, Y: 2}, core.CellIndex{X: 0, Y: 3})
	next := Advance(g)
	expectAlive(t, next, core.CellIndex{X: 0, Y: 2}, core.CellIndex{X: 1, Y: 2})
}

func TestNeighborsClipped(t *testing.T) {
	g := core.NewGrid(4, 3)
	cases := []struct {
		name string
		x, y int
		want int
	}{
		{"corner", 0, 0, 3},
		{"far corner", 3, 2, 3},
		{"top edge", 1, 0, 5},
		{"left edge", 0, 1, 5},
		{"interior", 1, 1, 8},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ns := Neighbors(g, c.x, c.y)
			require.Len(t, ns, c.want)
			for _, n := range ns {
				assert.True(t, g.InBounds(n.X, n.Y))
				assert.NotEqual(t, core.CellIndex{X: c.x, Y: c.y}, n)
			}
		})
	}
	assert.Panics(t, func() { Neighbors(g, 4, 0) })
	assert.Panics(t, func() { CountNeighbors(g, 0, -1) })
}

func TestCountNeighborsMatchesEnumeration(t *testing.T) {
	g := core.NewRandomGrid(9, 6, 0.5, core.NewRNG(11))
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			want := 0
			for _, n := range Neighbors(g, x, y) {
				if g.Get(n.X, n.Y) {
					want++
				}
			}
			if got := CountNeighbors(g, x, y); got != want {
				t.Fatalf("CountNeighbors(%d,%d)=%d, enumeration gives %d", x, y, got, want)
			}
		}
	}
}

func TestNextStateTable(t *testing.T) {
	for k := 0; k <= 8; k++ {
		assert.Equal(t, k == 2 || k == 3, NextState(true, k), "alive with %d", k)
		assert.Equal(t, k == 3, NextState(false, k), "dead with %d", k)
	}
}

func TestAdvanceIntoPreconditions(t *testing.T) {
	g := core.NewGrid(3, 3)
	assert.Panics(t, func() { AdvanceInto(g, g) })
	assert.Panics(t, func() { AdvanceInto(core.NewGrid(2, 3), g) })
}
