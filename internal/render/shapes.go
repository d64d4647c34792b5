package render

import (
	"circuitgen/internal/circuit"
	"circuitgen/internal/geom"
)

// ShapeKind tells a backend how to draw a Shape.
type ShapeKind uint8

const (
	// ShapePolygon is a filled closed polygon.
	ShapePolygon ShapeKind = iota
	// ShapeRing is a filled annulus.
	ShapeRing
	// ShapeMarker is the "unknown joint" marker centred on the cell.
	ShapeMarker
)

// Shape is one filled primitive of a tile, in pixel coordinates.
type Shape struct {
	Kind   ShapeKind
	Points []geom.Vec[float64]

	Center geom.Vec[float64]
	Outer  float64
	Inner  float64
}

const (
	// JointWidth is the cable width as a fraction of the cell size.
	JointWidth = 0.2
	// bleed extends cables past the cell edge so neighbors overlap.
	bleed = 1.0
)

// TileShapes returns the cable shapes for a joint drawn in a cell of the
// given size centred on anchor. None yields no shapes.
func TileShapes(kind circuit.JointKind, rotation, variant int, anchor geom.Vec[float64], size float64) []Shape {
	var local []Shape
	switch kind {
	case circuit.Terminal:
		local = terminalShapes(size)
	case circuit.Curve:
		local = []Shape{curveShape(size)}
	case circuit.Line:
		local = []Shape{lineShape(size)}
	case circuit.Tee:
		local = teeShapes(size)
	case circuit.Cross:
		if variant == 0 {
			local = []Shape{lineShape(size), lineShape(size).rotate(1)}
		} else {
			local = []Shape{curveShape(size), curveShape(size).rotate(2)}
		}
		rotation = 0
	case circuit.Invalid:
		return []Shape{{Kind: ShapeMarker, Center: anchor, Outer: size * 0.4}}
	default:
		return nil
	}
	out := make([]Shape, len(local))
	for i, s := range local {
		out[i] = s.rotate(rotation).translate(anchor)
	}
	return out
}

func rect(x, y, w, h float64) Shape {
	return Shape{Kind: ShapePolygon, Points: []geom.Vec[float64]{
		geom.V(x, y), geom.V(x+w, y), geom.V(x+w, y+h), geom.V(x, y+h),
	}}
}

// lineShape runs north to south.
func lineShape(size float64) Shape {
	js := size * JointWidth
	hs := size / 2
	return rect(-js/2, -hs-bleed, js, size+2*bleed)
}

// curveShape joins north and east with a chamfered bend.
func curveShape(size float64) Shape {
	js := size * JointWidth
	hjs := js / 2
	h3js := hjs * 3
	hs := size / 2
	return Shape{Kind: ShapePolygon, Points: []geom.Vec[float64]{
		geom.V(hs+bleed, hjs),
		geom.V(js, hjs),
		geom.V(-hjs, -js),
		geom.V(-hjs, -hs-bleed),
		geom.V(hjs, -hs-bleed),
		geom.V(hjs, -h3js),
		geom.V(h3js, -hjs),
		geom.V(hs+bleed, -hjs),
	}}
}

// terminalShapes is a ring with a stem reaching the north edge.
func terminalShapes(size float64) []Shape {
	js := size * JointWidth
	hs := size / 2
	qs := size / 4
	inner := 0.0
	if qs > js {
		inner = qs - js
	}
	return []Shape{
		{Kind: ShapeRing, Outer: qs, Inner: inner},
		rect(-js/2, -hs-bleed, js, hs-qs/2+bleed),
	}
}

// teeShapes is a north-south line with a stub to the east.
func teeShapes(size float64) []Shape {
	js := size * JointWidth
	hs := size / 2
	return []Shape{lineShape(size), rect(0, -js/2, hs+bleed, js)}
}

// rotate turns the shape q quarter turns clockwise about the origin.
func (s Shape) rotate(q int) Shape {
	q = ((q % 4) + 4) % 4
	if q == 0 {
		return s
	}
	out := s
	out.Points = make([]geom.Vec[float64], len(s.Points))
	for i, p := range s.Points {
		out.Points[i] = rotateQuarter(p, q)
	}
	out.Center = rotateQuarter(s.Center, q)
	return out
}

func rotateQuarter(p geom.Vec[float64], q int) geom.Vec[float64] {
	for i := 0; i < q; i++ {
		p = geom.V(-p.Y, p.X)
	}
	return p
}

func (s Shape) translate(d geom.Vec[float64]) Shape {
	out := s
	out.Points = make([]geom.Vec[float64], len(s.Points))
	for i, p := range s.Points {
		out.Points[i] = p.Add(d)
	}
	out.Center = s.Center.Add(d)
	return out
}

// SideMarkers returns the midpoint of each cell edge, inset by a quarter of
// the joint width, in N, E, S, W order. Debug overlays draw raw side states
// there.
func SideMarkers(anchor geom.Vec[float64], size float64) [4]geom.Vec[float64] {
	inset := size/2 - size*JointWidth/2
	var out [4]geom.Vec[float64]
	for _, s := range circuit.Sides {
		off := geom.ToFloat(s.Offset()).Scale(inset)
		out[s] = anchor.Add(off)
	}
	return out
}
