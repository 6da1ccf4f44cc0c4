//go:build ebiten

package app

import (
	"log/slog"
	"time"

	"life-sandbox/internal/core"
	"life-sandbox/internal/render"
	"life-sandbox/internal/ui"
	"life-sandbox/pkg/sims/life"
	"life-sandbox/pkg/spatial"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 200

// Game adapts a life session to the ebiten.Game interface.
type Game struct {
	ctl     *Controller
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	step    *core.FixedStep

	width, height int
	cellSize      int
	showGrid      bool
	lines         []render.Line
}

// New constructs a Game for the provided session and validated config.
func New(cfg *Config, session *life.Session, logger *slog.Logger) *Game {
	mapper := cfg.Mapper()
	cells := mapper.Cells()
	return &Game{
		ctl:      NewController(session, mapper, logger),
		painter:  render.NewGridPainter(cells.W, cells.H, render.DefaultPalette()),
		hud:      ui.NewHUD(session, hudWidth),
		overlay:  ui.NewOverlay(mapper, cfg.CanvasWidth, cfg.CanvasHeight),
		step:     core.Every(cfg.StepEvery),
		width:    cfg.CanvasWidth,
		height:   cfg.CanvasHeight,
		cellSize: cfg.CellSize,
		showGrid: cfg.ShowGrid,
		lines:    render.GridLines(cfg.CanvasWidth, cfg.CanvasHeight, cfg.CellSize),
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.ctl.Start()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.showGrid = !g.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.ctl.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctl.Reset(time.Now().UnixNano())
		g.step.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		_, _ = g.ctl.StampNext()
	}

	g.handlePointer()
	g.overlay.Update()

	if g.step.ShouldStep() {
		g.ctl.Tick()
	}
	g.hud.Update(g.ctl.Pattern())
	return nil
}

func (g *Game) handlePointer() {
	cx, cy := ebiten.CursorPosition()
	p := spatial.ToCentered(float64(cx), float64(cy), float64(g.width), float64(g.height))

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.ctl.Press(p, true)
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		g.ctl.Press(p, false)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight):
		g.ctl.Release()
	default:
		g.ctl.Drag(p)
	}
}

// Draw renders the grid, optional lines, overlay and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.ctl.Session().Cells(), g.cellSize)
	if g.showGrid {
		g.painter.DrawLines(screen, g.lines, float64(g.width), float64(g.height))
	}
	g.overlay.Draw(screen, g.painter)
	g.hud.Draw(screen, g.width, g.height)
}

// Layout returns the logical screen size: the canvas plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width + g.hud.Width(), g.height
}
