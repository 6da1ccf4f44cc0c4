package render

import "life-sandbox/pkg/spatial"

// Line is a grid line segment in centered space.
type Line struct {
	Start, End spatial.Point
	Weight     float64
}

// lineWeight keeps grid lines hairline thin.
const lineWeight = 0.5

// GridLines returns the horizontal then vertical lines bounding the cells of
// a width x height canvas split every step pixels.
func GridLines(width, height, step int) []Line {
	if step <= 0 {
		return nil
	}
	hw, hh := width/2, height/2
	var lines []Line
	for y := -hh; y < hh; y += step {
		lines = append(lines, Line{
			Start:  spatial.Pt(float64(-hw), float64(y)),
			End:    spatial.Pt(float64(hw), float64(y)),
			Weight: lineWeight,
		})
	}
	for x := -hw; x < hw; x += step {
		lines = append(lines, Line{
			Start:  spatial.Pt(float64(x), float64(-hh)),
			End:    spatial.Pt(float64(x), float64(hh)),
			Weight: lineWeight,
		})
	}
	return lines
}
