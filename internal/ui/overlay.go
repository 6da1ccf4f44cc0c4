//go:build ebiten

package ui

import (
	"life-sandbox/internal/render"
	"life-sandbox/pkg/spatial"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws the pointer snapping debug view on top of the grid: the
// four intersections nearest the cursor and the outline of the picked cell.
type Overlay struct {
	mapper  *spatial.Mapper
	width   float64
	height  float64
	show    bool
	preview Preview
}

// NewOverlay constructs an overlay for a canvas of the given pixel size.
func NewOverlay(mapper *spatial.Mapper, width, height int) *Overlay {
	return &Overlay{mapper: mapper, width: float64(width), height: float64(height)}
}

// Update toggles the overlay on P and tracks the cursor while visible.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		o.show = !o.show
	}
	if !o.show {
		return
	}
	cx, cy := ebiten.CursorPosition()
	o.preview = SnapPreview(o.mapper, spatial.ToCentered(float64(cx), float64(cy), o.width, o.height))
}

// Draw renders the overlay onto the provided screen with the painter's
// hover colour.
func (o *Overlay) Draw(screen *ebiten.Image, painter *render.GridPainter) {
	if !o.show {
		return
	}
	hover := painter.Palette().Hover
	painter.DrawPoints(screen, o.preview.Closest, o.width, o.height, 3, hover)
	if !o.preview.InArea {
		return
	}
	size := float32(o.mapper.CellSize())
	x, y := spatial.FromCentered(o.preview.Origin, o.width, o.height)
	// Origin is the lower-left corner; screen rects grow downwards.
	vector.StrokeRect(screen, float32(x), float32(y)-size, size, size, 1, hover, false)
}
