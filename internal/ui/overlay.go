//go:build ebiten

package ui

import (
	"image/color"

	"circuitgen/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the raw side availability of placed cells on top of the
// tiles. D toggles it.
type Overlay struct {
	sim   core.Sim
	scale int
	show  bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.show = !o.show
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	provider, ok := o.sim.(GridProvider)
	if !ok {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	face := basicfont.Face7x13
	col := color.RGBA{R: 255, G: 215, B: 0, A: 255}
	for _, l := range SideLabels(provider.Grid(), float64(scale)) {
		bounds := text.BoundString(face, l.Text)
		x := int(l.Pos.X) - bounds.Dx()/2
		y := int(l.Pos.Y) + bounds.Dy()/2
		text.Draw(screen, l.Text, face, x, y, col)
	}
}
