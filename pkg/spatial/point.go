// Package spatial maps continuous pointer coordinates onto grid cells.
//
// Points live in a centered space: the origin sits at the middle of the
// canvas and y grows upwards. Cell indices count columns from the left and
// rows from the top.
package spatial

import "math"

// Point is a coordinate in centered space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Dist2 returns the squared Euclidean distance between p and q.
func (p Point) Dist2(q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Sqrt(p.Dist2(q)) }

// ToCentered converts screen coordinates (origin top-left, y down) into
// centered space.
func ToCentered(px, py, width, height float64) Point {
	return Point{X: px - width/2, Y: height/2 - py}
}

// FromCentered is the inverse of ToCentered.
func FromCentered(p Point, width, height float64) (px, py float64) {
	return p.X + width/2, height/2 - p.Y
}

// MapRange linearly remaps v from [inMin, inMax] onto [outMin, outMax].
func MapRange(v, inMin, inMax, outMin, outMax float64) float64 {
	return outMin + (v-inMin)/(inMax-inMin)*(outMax-outMin)
}
