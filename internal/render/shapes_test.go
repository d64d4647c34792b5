package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"circuitgen/internal/circuit"
	"circuitgen/internal/geom"
)

type bbox struct{ minX, minY, maxX, maxY float64 }

func bounds(s Shape) bbox {
	b := bbox{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	for _, p := range s.Points {
		b.minX = math.Min(b.minX, p.X)
		b.minY = math.Min(b.minY, p.Y)
		b.maxX = math.Max(b.maxX, p.X)
		b.maxY = math.Max(b.maxY, p.Y)
	}
	return b
}

func TestLineRotation(t *testing.T) {
	origin := geom.V(0.0, 0.0)
	vertical := bounds(TileShapes(circuit.Line, 0, 0, origin, 20)[0])
	require.InDelta(t, -11, vertical.minY, 1e-9)
	require.InDelta(t, 11, vertical.maxY, 1e-9)
	require.InDelta(t, 4, vertical.maxX-vertical.minX, 1e-9)

	horizontal := bounds(TileShapes(circuit.Line, 1, 0, origin, 20)[0])
	require.InDelta(t, -11, horizontal.minX, 1e-9)
	require.InDelta(t, 11, horizontal.maxX, 1e-9)
	require.InDelta(t, 4, horizontal.maxY-horizontal.minY, 1e-9)
}

func TestTerminalStemFollowsRotation(t *testing.T) {
	anchor := geom.V(50.0, 50.0)
	for r, side := range circuit.Sides {
		shapes := TileShapes(circuit.Terminal, r, 0, anchor, 20)
		require.Len(t, shapes, 2)
		require.Equal(t, ShapeRing, shapes[0].Kind)
		require.Equal(t, anchor, shapes[0].Center)
		require.InDelta(t, 5, shapes[0].Outer, 1e-9)
		require.InDelta(t, 1, shapes[0].Inner, 1e-9)

		// The stem reaches the edge on the terminal's side.
		edge := anchor.Add(geom.ToFloat(side.Offset()).Scale(10))
		b := bounds(shapes[1])
		require.True(t, edge.X >= b.minX-1e-9 && edge.X <= b.maxX+1e-9 &&
			edge.Y >= b.minY-1e-9 && edge.Y <= b.maxY+1e-9, "rotation %d stem misses %s edge", r, side)
	}
}

func TestCrossVariants(t *testing.T) {
	origin := geom.V(0.0, 0.0)
	lines := TileShapes(circuit.Cross, 0, 0, origin, 20)
	require.Len(t, lines, 2)
	require.Len(t, lines[0].Points, 4)

	curves := TileShapes(circuit.Cross, 0, 1, origin, 20)
	require.Len(t, curves, 2)
	require.Len(t, curves[0].Points, 8)
	for i, p := range curves[0].Points {
		require.InDelta(t, -p.X, curves[1].Points[i].X, 1e-9)
		require.InDelta(t, -p.Y, curves[1].Points[i].Y, 1e-9)
	}
}

func TestNoneAndInvalid(t *testing.T) {
	require.Empty(t, TileShapes(circuit.None, 0, 0, geom.V(0.0, 0.0), 20))
	marker := TileShapes(circuit.Invalid, 0, 0, geom.V(3.0, 4.0), 20)
	require.Len(t, marker, 1)
	require.Equal(t, ShapeMarker, marker[0].Kind)
	require.Equal(t, geom.V(3.0, 4.0), marker[0].Center)
}

func TestSideMarkers(t *testing.T) {
	m := SideMarkers(geom.V(10.0, 10.0), 20)
	require.Equal(t, geom.V(10.0, 2.0), m[circuit.North])
	require.Equal(t, geom.V(18.0, 10.0), m[circuit.East])
	require.Equal(t, geom.V(10.0, 18.0), m[circuit.South])
	require.Equal(t, geom.V(2.0, 10.0), m[circuit.West])
}
