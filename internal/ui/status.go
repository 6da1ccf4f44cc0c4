package ui

import (
	"fmt"

	"life-sandbox/pkg/core"
	"life-sandbox/pkg/spatial"
)

// KeyHelp lists the GUI key bindings in display order.
var KeyHelp = []string{
	"LMB  paint alive",
	"RMB  paint dead",
	"S    start",
	"R    reset",
	"C    clear",
	"T    stamp pattern",
	"G    toggle grid",
	"P    snap points",
	"Q    quit",
}

// StatusLines formats a sim status for the HUD panel.
func StatusLines(st core.Status, pattern string) []string {
	lines := []string{
		fmt.Sprintf("State       %s", st.State),
		fmt.Sprintf("Generation  %d", st.Generation),
		fmt.Sprintf("Live cells  %d", st.LiveCells),
	}
	if pattern != "" {
		lines = append(lines, fmt.Sprintf("Pattern     %s", pattern))
	}
	return lines
}

// Preview is what the snap overlay shows for a cursor position.
type Preview struct {
	Cursor  spatial.Point
	Closest []spatial.Point
	Cell    core.CellIndex
	Origin  spatial.Point
	InArea  bool
}

// SnapPreview gathers the four grid points nearest to p and the cell the
// mapper picks for it.
func SnapPreview(m *spatial.Mapper, p spatial.Point) Preview {
	pv := Preview{Cursor: p, Closest: m.Closest(p, 4)}
	pv.Cell, pv.InArea = m.Locate(p)
	if pv.InArea {
		pv.Origin = m.CellOrigin(pv.Cell)
	}
	return pv
}
