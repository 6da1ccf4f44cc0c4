package spatial

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"life-sandbox/pkg/core"
)

// ErrInsufficientPoints reports a ClosestN call asking for more points than
// the set holds.
var ErrInsufficientPoints = errors.New("spatial: not enough points")

// GridPoints lists the grid-line intersections row by row, covering
// [-width, width) x [-height, height) in steps of step.
func GridPoints(width, height, step int) []Point {
	if step <= 0 {
		panic(fmt.Sprintf("spatial: grid step must be positive, got %d", step))
	}
	var pts []Point
	for y := -height; y < height; y += step {
		for x := -width; x < width; x += step {
			pts = append(pts, Point{X: float64(x), Y: float64(y)})
		}
	}
	return pts
}

// ClosestN returns the n points nearest to p in ascending distance. Ties
// keep the order of points. The input slice is not modified.
func ClosestN(p Point, points []Point, n int) []Point {
	if n < 0 || len(points) < n {
		panic(fmt.Errorf("%w: want %d of %d", ErrInsufficientPoints, n, len(points)))
	}
	sorted := slices.Clone(points)
	slices.SortStableFunc(sorted, func(a, b Point) int {
		return cmp.Compare(p.Dist2(a), p.Dist2(b))
	})
	return sorted[:n:n]
}

// SnapToGrid returns the coordinate-wise minimum of the four points nearest
// to p: the lower-left corner of the cell around p when those four are its
// corners. Near cell edges they may not be; see Mapper with SnapFloor.
func SnapToGrid(p Point, points []Point) Point {
	closest := ClosestN(p, points, 4)
	snapped := Point{X: math.Inf(1), Y: math.Inf(1)}
	for _, c := range closest {
		snapped.X = min(snapped.X, c.X)
		snapped.Y = min(snapped.Y, c.Y)
	}
	return snapped
}

// CoordinateToIndex maps a snapped point onto cell indices. Points further
// than half the canvas from the centre on either axis are rejected.
func CoordinateToIndex(snapped Point, width, height float64, cellsX, cellsY int) (core.CellIndex, bool) {
	if math.Abs(snapped.X) > width/2 || math.Abs(snapped.Y) > height/2 {
		return core.CellIndex{}, false
	}
	x := int(MapRange(snapped.X, -width/2, width/2, 0, float64(cellsX)))
	y := int(MapRange(snapped.Y, -height/2, height/2, float64(cellsY-1), 0))
	return core.CellIndex{X: clamp(x, cellsX), Y: clamp(y, cellsY)}, true
}

func clamp(v, n int) int {
	return max(0, min(v, n-1))
}
