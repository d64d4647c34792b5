//go:build ebiten

package app

import (
	"time"

	"circuitgen/internal/core"
	"circuitgen/internal/render"
	"circuitgen/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width in pixels of the parameter panel.
const HUDWidth = 220

// Game adapts a generator to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.TilePainter
	overlay *ui.Overlay
	hud     *ui.HUD

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided generator.
func New(sim core.Sim, scale int, seed int64) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewTilePainter(size.W, size.H, render.DefaultPalette()),
		overlay: ui.NewOverlay(sim, scale),
		hud:     ui.NewHUD(sim, HUDWidth),
		scale:   scale,
		seed:    seed,
	}
}

// Reset regenerates from scratch with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and places the next cells.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()
	g.hud.Update(g.sim.Size().W * g.scale)

	if f, ok := g.sim.(core.Finisher); ok && f.Done() {
		return nil
	}
	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the tiles, the debug overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.sim.Cells(), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + HUDWidth, s.H * g.scale
}
