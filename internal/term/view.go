package term

import (
	"fmt"
	"strings"
	"time"

	"life-sandbox/pkg/core"
	"life-sandbox/pkg/sims/life"
	"life-sandbox/pkg/spatial"

	"github.com/logrusorgru/aurora"
)

const cropNotice = "The field is larger than the view"

// FieldLines renders g one character per cell, cropped to maxW x maxH.
// When the grid does not fit, the last visible row carries a notice instead.
func FieldLines(au aurora.Aurora, g *core.Grid, maxW, maxH int) []string {
	if maxW <= 0 || maxH <= 0 {
		return nil
	}
	live := au.Green("█").BgBrightGreen().String()
	dead := "░"
	crop := g.Width() > maxW || g.Height() > maxH

	rows := min(g.Height(), maxH)
	lines := make([]string, 0, rows)
	var b strings.Builder
	for y := 0; y < rows; y++ {
		if crop && y == maxH-1 {
			lines = append(lines, au.Red(cropNotice).String())
			break
		}
		b.Reset()
		for x := 0; x < min(g.Width(), maxW); x++ {
			if g.Get(x, y) {
				b.WriteString(live)
			} else {
				b.WriteString(dead)
			}
		}
		lines = append(lines, b.String())
	}
	return lines
}

// StatusLines formats the session status with coloured labels.
func StatusLines(au aurora.Aurora, st core.Status, pattern string) []string {
	state := st.State
	switch st.State {
	case life.StateInit.String():
		state = au.Blue(state).String()
	case life.StateRunning.String():
		state = au.Cyan(state).String()
	}
	return []string{
		prop(au, "State", "%s", state),
		prop(au, "Generation", "%d", st.Generation),
		prop(au, "Live cells", "%d", st.LiveCells),
		prop(au, "Next pattern", "%s", pattern),
	}
}

func prop(au aurora.Aurora, name, format string, values ...any) string {
	return fmt.Sprintf(" "+au.Green(name).String()+": "+format, values...)
}

// CursorPoint converts a character position on the field into the centre of
// the matching cell in centered canvas space.
func CursorPoint(m *spatial.Mapper, cx, cy int) spatial.Point {
	s := m.CellSize()
	cells := m.Cells()
	return spatial.ToCentered(
		(float64(cx)+0.5)*s, (float64(cy)+0.5)*s,
		float64(cells.W)*s, float64(cells.H)*s,
	)
}

// TickInterval converts a frame rate and a step period into the time
// between generations.
func TickInterval(tps, every int) time.Duration {
	if tps <= 0 {
		tps = 60
	}
	if every <= 0 {
		every = 1
	}
	return time.Second * time.Duration(every) / time.Duration(tps)
}
