package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func panicErr(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		e, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v is not an error", r)
		}
		err = e
	}()
	fn()
	return nil
}

func TestNewGridRejectsInvalidSizes(t *testing.T) {
	cases := []struct{ w, h int }{
		{0, 4}, {4, 0}, {-1, 4}, {MaxSize + 1, 4}, {4, MaxSize + 1},
	}
	for _, c := range cases {
		err := panicErr(t, func() { NewGrid(c.w, c.h) })
		assert.True(t, errors.Is(err, ErrInvalidSize), "size %dx%d: %v", c.w, c.h, err)
	}
	assert.NotPanics(t, func() { NewGrid(MaxSize, 1) })
}

func TestCreateAllDead(t *testing.T) {
	g := Create(8, 5, false, NewRNG(1))
	require.Equal(t, Size{W: 8, H: 5}, g.Size())
	assert.Zero(t, g.LiveCells())
}

func TestCreateRandomizedIsDeterministic(t *testing.T) {
	a := NewRandomGrid(64, 64, 0.3, NewRNG(7))
	b := NewRandomGrid(64, 64, 0.3, NewRNG(7))
	assert.True(t, a.Equal(b))
	assert.NotZero(t, a.LiveCells())
	assert.Less(t, a.LiveCells(), 64*64)
}

func TestCreateNilRNGUsesSeedZero(t *testing.T) {
	var g *Grid
	require.NotPanics(t, func() { g = Create(100, 100, true, nil) })
	assert.True(t, g.Equal(Create(100, 100, true, NewRNG(0))))
	assert.True(t, NewRandomGrid(16, 16, 0.5, nil).Equal(NewRandomGrid(16, 16, 0.5, NewRNG(0))))
}

func TestCreateRandomizedIsSparse(t *testing.T) {
	g := Create(200, 200, true, NewRNG(3))
	live := g.LiveCells()
	// 1% of 40000 is 400; allow a generous band.
	assert.Greater(t, live, 200)
	assert.Less(t, live, 600)
}

func TestGetSetBounds(t *testing.T) {
	g := NewGrid(3, 2)
	g.Set(2, 1, true)
	assert.True(t, g.Get(2, 1))
	assert.False(t, g.Get(1, 1))

	for _, idx := range []CellIndex{{-1, 0}, {0, -1}, {3, 0}, {0, 2}} {
		err := panicErr(t, func() { g.Get(idx.X, idx.Y) })
		assert.ErrorIs(t, err, ErrOutOfBounds)
		err = panicErr(t, func() { g.Set(idx.X, idx.Y, true) })
		assert.ErrorIs(t, err, ErrOutOfBounds)
	}
}

func TestClearAndClone(t *testing.T) {
	g := NewGrid(4, 4)
	g.Set(1, 1, true)
	g.Set(3, 0, true)

	c := g.Clone()
	g.Clear()

	assert.Zero(t, g.LiveCells())
	assert.Equal(t, 2, c.LiveCells())
	assert.Equal(t, []CellIndex{{X: 3, Y: 0}, {X: 1, Y: 1}}, c.Alive())
}

func TestCopyFromRequiresMatchingSize(t *testing.T) {
	dst := NewGrid(2, 2)
	src := NewGrid(2, 2)
	src.Set(0, 1, true)
	dst.CopyFrom(src)
	assert.True(t, dst.Equal(src))

	err := panicErr(t, func() { dst.CopyFrom(NewGrid(3, 2)) })
	assert.ErrorIs(t, err, ErrInvalidSize)
	assert.False(t, dst.Equal(NewGrid(3, 2)))
}

func TestFillRowMajor(t *testing.T) {
	g := NewGrid(3, 2)
	g.Set(0, 0, true)
	g.Set(2, 1, true)

	buf := g.Fill(nil)
	assert.Equal(t, []uint8{1, 0, 0, 0, 0, 1}, buf)

	g.Clear()
	reused := g.Fill(buf)
	assert.Equal(t, []uint8{0, 0, 0, 0, 0, 0}, reused)
}

func TestChanceSaturates(t *testing.T) {
	r := NewRNG(9)
	for i := 0; i < 100; i++ {
		if r.Chance(0) || r.Chance(-1) {
			t.Fatalf("Chance(<=0) returned true")
		}
		if !r.Chance(1) || !r.Chance(2) {
			t.Fatalf("Chance(>=1) returned false")
		}
	}
}
