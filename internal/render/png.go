package render

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"

	"circuitgen/internal/circuit"
	"circuitgen/internal/geom"
)

// PNGOptions configures PNGPainter.
type PNGOptions struct {
	CellSize   float64
	Background string
	Circuit    string
	// Debug marks every side of every cell with its raw state.
	Debug bool
}

// DefaultPNGOptions returns the standard palette: gold cables on green.
func DefaultPNGOptions() PNGOptions {
	return PNGOptions{CellSize: 24, Background: "#008000", Circuit: "#ffd700"}
}

// PNGPainter rasterizes a grid with gogpu/gg's software renderer.
type PNGPainter struct {
	opts PNGOptions
}

// NewPNGPainter returns a painter for opts. A non-positive cell size falls
// back to the default.
func NewPNGPainter(opts PNGOptions) *PNGPainter {
	def := DefaultPNGOptions()
	if opts.CellSize <= 0 {
		opts.CellSize = def.CellSize
	}
	if opts.Background == "" {
		opts.Background = def.Background
	}
	if opts.Circuit == "" {
		opts.Circuit = def.Circuit
	}
	return &PNGPainter{opts: opts}
}

// Render paints cols x rows cells of grid and returns the image.
func (p *PNGPainter) Render(grid *circuit.Grid, cols, rows int) (image.Image, error) {
	dc, err := p.paint(grid, cols, rows)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	return dc.Image(), nil
}

// WritePNG paints the grid and encodes it as PNG to w.
func (p *PNGPainter) WritePNG(w io.Writer, grid *circuit.Grid, cols, rows int) error {
	dc, err := p.paint(grid, cols, rows)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func (p *PNGPainter) paint(grid *circuit.Grid, cols, rows int) (*gg.Context, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("render: empty grid %dx%d", cols, rows)
	}
	size := p.opts.CellSize
	dc := gg.NewContext(int(float64(cols)*size), int(float64(rows)*size))
	dc.ClearWithColor(gg.Hex(p.opts.Background))

	circuitColor := gg.Hex(p.opts.Circuit).Color()
	var err error
	grid.Each(func(pos circuit.Pos, c *circuit.Cell) {
		if err != nil || pos.X >= cols || pos.Y >= rows {
			return
		}
		anchor := circuit.Anchor(pos, size)
		if c.Joint != nil {
			dc.SetColor(circuitColor)
			for _, s := range TileShapes(c.Joint.Kind, c.Joint.Rotation, c.Joint.Variant, anchor, size) {
				if err = fillShape(dc, s); err != nil {
					err = fmt.Errorf("render cell %v: %w", pos, err)
					return
				}
			}
		}
		if p.opts.Debug {
			err = p.debugSides(dc, c, anchor)
		}
	})
	if err != nil {
		dc.Close()
		return nil, err
	}
	return dc, nil
}

func fillShape(dc *gg.Context, s Shape) error {
	switch s.Kind {
	case ShapeRing:
		dc.SetFillRule(gg.FillRuleEvenOdd)
		dc.DrawCircle(s.Center.X, s.Center.Y, s.Outer)
		if s.Inner > 0 {
			dc.DrawCircle(s.Center.X, s.Center.Y, s.Inner)
		}
		err := dc.Fill()
		dc.SetFillRule(gg.FillRuleNonZero)
		return err
	case ShapeMarker:
		r := s.Outer
		dc.SetLineWidth(r / 4)
		dc.DrawLine(s.Center.X-r/2, s.Center.Y-r/2, s.Center.X+r/2, s.Center.Y+r/2)
		dc.DrawLine(s.Center.X-r/2, s.Center.Y+r/2, s.Center.X+r/2, s.Center.Y-r/2)
		return dc.Stroke()
	default:
		if len(s.Points) == 0 {
			return nil
		}
		dc.MoveTo(s.Points[0].X, s.Points[0].Y)
		for _, pt := range s.Points[1:] {
			dc.LineTo(pt.X, pt.Y)
		}
		dc.ClosePath()
		return dc.Fill()
	}
}

func (p *PNGPainter) debugSides(dc *gg.Context, c *circuit.Cell, anchor geom.Vec[float64]) error {
	r := p.opts.CellSize * 0.06
	for s, pt := range SideMarkers(anchor, p.opts.CellSize) {
		st, ok := c.Side(circuit.Side(s)).State()
		switch {
		case !ok:
			dc.SetRGB(0.5, 0.5, 0.5)
		case st == circuit.Present:
			dc.SetRGB(1, 0.2, 0.2)
		default:
			dc.SetRGB(0, 0, 0)
		}
		dc.DrawCircle(pt.X, pt.Y, r)
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}
