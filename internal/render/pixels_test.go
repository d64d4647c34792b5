package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"circuitgen/internal/circuit"
)

func TestFillBackgroundRGBA(t *testing.T) {
	p := DefaultPalette()
	cells := []uint8{
		0,
		circuit.EncodeJoint(circuit.NewCell()),
		circuit.EncodeJoint(&circuit.Cell{Joint: &circuit.Joint{Kind: circuit.Line}}),
	}
	buf := make([]byte, 4*len(cells))
	fillBackgroundRGBA(buf, cells, p)

	require.Equal(t, []byte{p.Empty.R, p.Empty.G, p.Empty.B, p.Empty.A}, buf[0:4])
	require.Equal(t, []byte{p.Pending.R, p.Pending.G, p.Pending.B, p.Pending.A}, buf[4:8])
	require.Equal(t, []byte{p.Placed.R, p.Placed.G, p.Placed.B, p.Placed.A}, buf[8:12])
}
