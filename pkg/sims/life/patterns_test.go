package life

import (
	"slices"
	"testing"

	"life-sandbox/pkg/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternNamesSorted(t *testing.T) {
	names := PatternNames()
	require.Len(t, names, len(Patterns()))
	assert.True(t, slices.IsSorted(names))
	assert.Contains(t, names, "glider")
}

func TestPatternsReturnsCopy(t *testing.T) {
	cat := Patterns()
	cat["glider"].Cells[0] = core.CellIndex{X: 99, Y: 99}
	delete(cat, "block")
	cat["ufo"] = Pattern{Name: "ufo"}

	fresh := Patterns()
	assert.Contains(t, fresh, "block")
	assert.NotContains(t, fresh, "ufo")
	assert.NotContains(t, fresh["glider"].Cells, core.CellIndex{X: 99, Y: 99})

	g := core.NewGrid(10, 10)
	require.NoError(t, Stamp(g, "block"))
	assert.Equal(t, 4, g.LiveCells())
	assert.ErrorIs(t, Stamp(g, "ufo"), ErrUnknownPattern)
}

func TestStampCentres(t *testing.T) {
	g := core.NewGrid(6, 6)
	require.NoError(t, Stamp(g, "block"))
	expectAlive(t, g,
		core.CellIndex{X: 2, Y: 2}, core.CellIndex{X: 3, Y: 2},
		core.CellIndex{X: 2, Y: 3}, core.CellIndex{X: 3, Y: 3})
}

func TestStampClipsLargePatterns(t *testing.T) {
	g := core.NewGrid(2, 2)
	require.NoError(t, Stamp(g, "lwss"))
	assert.LessOrEqual(t, g.LiveCells(), 4)
}

func TestStampUnknown(t *testing.T) {
	assert.ErrorIs(t, Stamp(core.NewGrid(3, 3), "spaceship"), ErrUnknownPattern)
}

func TestStillLifesAndOscillators(t *testing.T) {
	cases := []struct {
		name   string
		period int
	}{
		{"block", 1},
		{"beehive", 1},
		{"blinker", 2},
		{"toad", 2},
		{"beacon", 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := core.NewGrid(12, 12)
			require.NoError(t, Stamp(g, c.name))
			start := g.Clone()
			for i := 0; i < c.period; i++ {
				g = Advance(g)
				if i < c.period-1 {
					assert.False(t, g.Equal(start), "returned early at step %d", i+1)
				}
			}
			assert.True(t, g.Equal(start))
		})
	}
}

func TestGliderTranslates(t *testing.T) {
	g := core.NewGrid(16, 16)
	require.NoError(t, Stamp(g, "glider"))
	start := g.Alive()
	for i := 0; i < 4; i++ {
		g = Advance(g)
	}
	moved := g.Alive()
	require.Len(t, moved, len(start))
	for i, c := range start {
		assert.Equal(t, core.CellIndex{X: c.X + 1, Y: c.Y + 1}, moved[i])
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"w": "20", "h": "-3", "density": "0.5", "seed": "7", "random": "false", "pattern": "toad",
	})
	assert.Equal(t, 20, c.Width)
	assert.Equal(t, DefaultConfig().Height, c.Height)
	assert.Equal(t, 0.5, c.Density)
	assert.Equal(t, int64(7), c.Seed)
	assert.False(t, c.Randomize)
	assert.Equal(t, "toad", c.Pattern)

	assert.Equal(t, DefaultConfig(), FromMap(nil))
	assert.Equal(t, DefaultConfig().Density, FromMap(map[string]string{"density": "2"}).Density)
}
