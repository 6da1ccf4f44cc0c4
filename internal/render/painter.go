//go:build ebiten

package render

import (
	"image/color"

	"life-sandbox/pkg/spatial"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter updates a single RGBA image based on binary cell data.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette Palette
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, palette Palette) *GridPainter {
	return &GridPainter{
		w:       w,
		h:       h,
		img:     ebiten.NewImage(w, h),
		buf:     make([]byte, 4*w*h),
		palette: palette,
	}
}

// Blit uploads the provided cells into the painter image and draws it
// scaled up to cell size.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	gp.buf = gp.palette.fillRGBA(gp.buf, cells)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// DrawLines strokes grid lines given in centered space onto a canvas of the
// given pixel size.
func (gp *GridPainter) DrawLines(dst *ebiten.Image, lines []Line, width, height float64) {
	for _, l := range lines {
		x0, y0 := spatial.FromCentered(l.Start, width, height)
		x1, y1 := spatial.FromCentered(l.End, width, height)
		vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(l.Weight), gp.palette.Lines, false)
	}
}

// DrawPoints marks points given in centered space with small dots.
func (gp *GridPainter) DrawPoints(dst *ebiten.Image, pts []spatial.Point, width, height float64, radius float32, clr color.Color) {
	for _, p := range pts {
		x, y := spatial.FromCentered(p, width, height)
		vector.DrawFilledCircle(dst, float32(x), float32(y), radius, clr, true)
	}
}

// Palette returns the painter's colours.
func (gp *GridPainter) Palette() Palette { return gp.palette }
