package render

import (
	"image/color"

	"circuitgen/internal/circuit"
)

// Palette holds the cell background colors.
type Palette struct {
	Empty   color.RGBA
	Placed  color.RGBA
	Pending color.RGBA
	Circuit color.RGBA
}

// DefaultPalette mirrors DefaultPNGOptions: gold on green, lime while a
// placed cell is still unresolved.
func DefaultPalette() Palette {
	return Palette{
		Empty:   color.RGBA{R: 0, G: 0, B: 0, A: 255},
		Placed:  color.RGBA{R: 0, G: 128, B: 0, A: 255},
		Pending: color.RGBA{R: 0, G: 255, B: 0, A: 255},
		Circuit: color.RGBA{R: 255, G: 215, B: 0, A: 255},
	}
}

// fillBackgroundRGBA converts display bytes into one RGBA pixel per cell.
func fillBackgroundRGBA(buf []byte, cells []uint8, p Palette) {
	for i, c := range cells {
		d := circuit.DecodeJoint(c)
		col := p.Empty
		switch {
		case d.Pending:
			col = p.Pending
		case d.Placed:
			col = p.Placed
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
