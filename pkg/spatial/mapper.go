package spatial

import (
	"fmt"
	"math"

	"life-sandbox/pkg/core"
)

// Strategy selects how Mapper.Locate picks the cell under a point.
type Strategy uint8

const (
	// SnapFloor divides the offset from the canvas corner by the cell size.
	SnapFloor Strategy = iota
	// SnapNearest snaps through the four nearest grid intersections.
	SnapNearest
)

func (s Strategy) String() string {
	switch s {
	case SnapFloor:
		return "floor"
	case SnapNearest:
		return "nearest"
	default:
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
}

// ParseStrategy parses "floor" or "nearest".
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "floor", "":
		return SnapFloor, nil
	case "nearest":
		return SnapNearest, nil
	}
	return SnapFloor, fmt.Errorf("spatial: unknown snap strategy %q", s)
}

// Mapper converts centered canvas coordinates into cell indices for a
// canvas of fixed pixel size divided into square cells.
type Mapper struct {
	width, height float64
	cell          float64
	cells         core.Size
	strategy      Strategy
	points        []Point
}

// NewMapper precomputes the grid intersections for a canvas of the given
// pixel size. It panics when the canvas holds no whole cell.
func NewMapper(width, height, cellSize int, strategy Strategy) *Mapper {
	if cellSize <= 0 || width < cellSize || height < cellSize {
		panic(fmt.Sprintf("spatial: canvas %dx%d cannot hold cells of %d", width, height, cellSize))
	}
	return &Mapper{
		width:    float64(width),
		height:   float64(height),
		cell:     float64(cellSize),
		cells:    core.Size{W: width / cellSize, H: height / cellSize},
		strategy: strategy,
		points:   GridPoints(width, height, cellSize),
	}
}

// Cells returns the number of whole cells across and down the canvas.
func (m *Mapper) Cells() core.Size { return m.cells }

// CellSize returns the side of a cell in pixels.
func (m *Mapper) CellSize() float64 { return m.cell }

// Strategy returns the configured snapping strategy.
func (m *Mapper) Strategy() Strategy { return m.strategy }

// Points exposes the precomputed intersections. Callers must not modify it.
func (m *Mapper) Points() []Point { return m.points }

// Closest returns the n intersections nearest to p.
func (m *Mapper) Closest(p Point, n int) []Point { return ClosestN(p, m.points, n) }

// Locate returns the cell under p, or false when p lies outside the canvas
// or snaps outside it.
func (m *Mapper) Locate(p Point) (core.CellIndex, bool) {
	if math.Abs(p.X) > m.width/2 || math.Abs(p.Y) > m.height/2 {
		return core.CellIndex{}, false
	}
	if m.strategy == SnapNearest {
		return CoordinateToIndex(SnapToGrid(p, m.points), m.width, m.height, m.cells.W, m.cells.H)
	}
	x := int(math.Floor((p.X + m.width/2) / m.cell))
	y := int(math.Floor((m.height/2 - p.Y) / m.cell))
	return core.CellIndex{X: clamp(x, m.cells.W), Y: clamp(y, m.cells.H)}, true
}

// CellOrigin returns the lower-left corner of a cell in centered space.
func (m *Mapper) CellOrigin(idx core.CellIndex) Point {
	return Point{
		X: -m.width/2 + float64(idx.X)*m.cell,
		Y: m.height/2 - float64(idx.Y+1)*m.cell,
	}
}

// CellCenter returns the middle of a cell in centered space.
func (m *Mapper) CellCenter(idx core.CellIndex) Point {
	o := m.CellOrigin(idx)
	return Point{X: o.X + m.cell/2, Y: o.Y + m.cell/2}
}
