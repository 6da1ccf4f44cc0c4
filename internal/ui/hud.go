//go:build ebiten

package ui

import (
	"image/color"

	"life-sandbox/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status panel to the right of the simulation view.
type HUD struct {
	sim     core.Sim
	width   int
	panel   *ebiten.Image
	status  core.Status
	pattern string
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached status from the simulation. pattern names the
// pattern the next stamp will use.
func (h *HUD) Update(pattern string) {
	if h == nil {
		return
	}
	h.pattern = pattern
	if provider, ok := h.sim.(core.StatusProvider); ok {
		h.status = provider.Status()
	}
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, "Game of Life", face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})

	y += sectionGap
	for _, line := range StatusLines(h.status, h.pattern) {
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		y += lineHeight
	}

	y += sectionGap
	for _, line := range KeyHelp {
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

const (
	panelPadding   = 12
	headerBaseline = 18
	lineHeight     = 18
	sectionGap     = 14
)
