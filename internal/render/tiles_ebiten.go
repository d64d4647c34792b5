//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"circuitgen/internal/circuit"
	"circuitgen/internal/geom"
)

// TilePainter draws a display buffer as circuit tiles: a scaled background
// image with one pixel per cell, then the cable shapes on top.
type TilePainter struct {
	w, h    int
	palette Palette
	bg      *ebiten.Image
	buf     []byte
	white   *ebiten.Image
}

// NewTilePainter allocates a painter for a grid of w*h cells.
func NewTilePainter(w, h int, palette Palette) *TilePainter {
	tp := &TilePainter{w: w, h: h, palette: palette, buf: make([]byte, 4*w*h)}
	tp.bg = ebiten.NewImage(w, h)
	tp.white = ebiten.NewImage(3, 3)
	tp.white.Fill(color.White)
	return tp
}

// Draw paints cells onto dst with square cells of scale pixels.
func (tp *TilePainter) Draw(dst *ebiten.Image, cells []uint8, scale int) {
	if len(cells) != tp.w*tp.h || scale <= 0 {
		return
	}
	fillBackgroundRGBA(tp.buf, cells, tp.palette)
	tp.bg.WritePixels(tp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(tp.bg, op)

	size := float64(scale)
	for i, v := range cells {
		d := circuit.DecodeJoint(v)
		if !d.Placed || d.Pending {
			continue
		}
		pos := geom.V(i%tp.w, i/tp.w)
		anchor := circuit.Anchor(pos, size)
		for _, s := range TileShapes(d.Kind, d.Rotation, d.Variant, anchor, size) {
			tp.drawShape(dst, s)
		}
	}
}

func (tp *TilePainter) drawShape(dst *ebiten.Image, s Shape) {
	col := tp.palette.Circuit
	switch s.Kind {
	case ShapeRing:
		width := s.Outer - s.Inner
		vector.StrokeCircle(dst, float32(s.Center.X), float32(s.Center.Y), float32(s.Outer-width/2), float32(width), col, true)
	case ShapeMarker:
		r := float32(s.Outer / 2)
		cx, cy := float32(s.Center.X), float32(s.Center.Y)
		w := float32(s.Outer / 4)
		vector.StrokeLine(dst, cx-r, cy-r, cx+r, cy+r, w, col, true)
		vector.StrokeLine(dst, cx-r, cy+r, cx+r, cy-r, w, col, true)
	default:
		if len(s.Points) == 0 {
			return
		}
		var path vector.Path
		path.MoveTo(float32(s.Points[0].X), float32(s.Points[0].Y))
		for _, p := range s.Points[1:] {
			path.LineTo(float32(p.X), float32(p.Y))
		}
		path.Close()
		vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
		r, g, b, a := float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, float32(col.A)/255
		for i := range vs {
			vs[i].SrcX, vs[i].SrcY = 1, 1
			vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = r, g, b, a
		}
		dst.DrawTriangles(vs, is, tp.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
	}
}
