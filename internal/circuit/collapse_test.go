package circuit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func cellWith(sides ...Availability) *Cell {
	c := &Cell{}
	copy(c.Sides[:], sides)
	return c
}

func TestCollapseForceAbsentGivesNone(t *testing.T) {
	c := NewGrid().SeedCellAt(Pos{})
	for _, s := range Sides {
		require.True(t, c.Side(s).IsFree(), "side %s should start free", s)
	}

	src := script(t, 0.0, 0.3, 0.99, 0.5)
	require.NoError(t, Collapse(c, src, WithBias(1.0)))

	require.True(t, src.drained())
	require.Equal(t, P(Absent, Absent, Absent, Absent), c.Joint.Raw)
	require.Equal(t, None, c.Joint.Kind)
}

func TestCollapseIndependentThreshold(t *testing.T) {
	c := NewCell()
	// Samples at or above the bias become Present.
	src := script(t, 0.6, 0.1, 0.5, 0.49)
	require.NoError(t, Collapse(c, src))

	require.Equal(t, P(Present, Absent, Present, Absent), c.Joint.Raw)
	require.Equal(t, Line, c.Joint.Kind)
	require.Equal(t, 0, c.Joint.Rotation)
}

func TestCollapseBiasedModeUsesHigherThreshold(t *testing.T) {
	c := NewCell()
	src := script(t, 0.79, 0.8, 0.5, 0.95)
	require.NoError(t, Collapse(c, src, WithMode(ModeBiased)))

	require.Equal(t, P(Absent, Present, Absent, Present), c.Joint.Raw)
	require.Equal(t, Line, c.Joint.Kind)
	require.Equal(t, 1, c.Joint.Rotation)
}

func TestCollapseLeavesFixedSidesAlone(t *testing.T) {
	c := cellWith(Fixed(Present), Free(), Fixed(Absent), Free())
	src := script(t, 0.9, 0.0)
	require.NoError(t, Collapse(c, src))

	require.True(t, src.drained(), "fixed sides must not consume draws")
	require.Equal(t, P(Present, Present, Absent, Absent), c.Joint.Raw)
	require.Equal(t, Curve, c.Joint.Kind)
	require.Equal(t, 0, c.Joint.Rotation)
}

func TestCollapseCrossDrawsVariant(t *testing.T) {
	for variant := 0; variant < 2; variant++ {
		c := cellWith(Fixed(Present), Fixed(Present), Fixed(Present), Fixed(Present))
		src := script(t).withInts(variant)
		require.NoError(t, Collapse(c, src))

		require.Equal(t, Cross, c.Joint.Kind)
		require.Equal(t, 0, c.Joint.Rotation)
		require.Equal(t, variant, c.Joint.Variant)
		require.Equal(t, []int{2}, src.intNs, "variant drawn from [0, 2)")
	}
}

func TestCollapseNonCrossDrawsNoVariant(t *testing.T) {
	c := cellWith(Fixed(Present), Fixed(Absent), Fixed(Absent), Fixed(Absent))
	src := script(t)
	require.NoError(t, Collapse(c, src))
	require.Equal(t, Terminal, c.Joint.Kind)
	require.Empty(t, src.intNs)
}

func TestCollapseConnectedSingleAcceptance(t *testing.T) {
	c := NewCell()
	// order draw (N,S,E,W), no swap, three rejections at count 0, accept W.
	src := script(t, 0.0, 0.0, 0.95, 0.8, 0.75, 0.1)
	require.NoError(t, Collapse(c, src, WithMode(ModeConnected)))

	require.True(t, src.drained())
	require.Equal(t, 1, c.Joint.Raw.Count())
	require.Equal(t, Terminal, c.Joint.Kind)
	require.Equal(t, 3, c.Joint.Rotation)
}

func TestCollapseConnectedOrderAndSchedule(t *testing.T) {
	c := cellWith(Fixed(Present), Free(), Free(), Free())
	// 0.95 -> (E,W,N,S); 0.6 -> swapped to (W,E,S,N).
	// count starts at 1: W 0.85 < 0.9 accepted; count 2: E 0.05 < 0.1
	// accepted; count 3: S 0.5 >= 0.3 rejected; N is fixed and skipped.
	src := script(t, 0.95, 0.6, 0.85, 0.05, 0.5)
	require.NoError(t, Collapse(c, src, WithMode(ModeConnected)))

	require.True(t, src.drained())
	require.Equal(t, P(Present, Present, Absent, Present), c.Joint.Raw)
	require.Equal(t, Tee, c.Joint.Kind)
	require.Equal(t, 3, c.Joint.Rotation)
}

func TestCollapseConnectedRejectsAtCountTwo(t *testing.T) {
	c := NewCell()
	// (N,S,E,W) swapped to (S,N,W,E). S 0.69 accepted at count 0, N 0.89
	// accepted at count 1, W 0.1 rejected at count 2, E 0.2 rejected.
	src := script(t, 0.0, 0.5, 0.69, 0.89, 0.1, 0.2)
	require.NoError(t, Collapse(c, src, WithMode(ModeConnected)))

	require.Equal(t, P(Present, Absent, Present, Absent), c.Joint.Raw)
	require.Equal(t, Line, c.Joint.Kind)
}

func TestCollapseConnectedCanIsolate(t *testing.T) {
	c := cellWith(Fixed(Absent), Fixed(Absent), Free(), Free())
	src := script(t, 0.0, 0.0, 0.7, 0.99)
	require.NoError(t, Collapse(c, src, WithMode(ModeConnected)))
	require.Equal(t, None, c.Joint.Kind)
}

func TestCollapseRejectsUnsetSide(t *testing.T) {
	c := cellWith(Free(), Free(), Availability{}, Free())
	err := Collapse(c, script(t))
	require.ErrorIs(t, err, ErrEmptyAvailability)
	require.Nil(t, c.Joint)
}

func TestCollapseTwiceOnlyReclassifies(t *testing.T) {
	c := cellWith(Fixed(Present), Fixed(Present), Fixed(Present), Fixed(Present))
	require.NoError(t, Collapse(c, script(t).withInts(1)))
	first := *c.Joint

	src := script(t)
	require.NoError(t, Collapse(c, src, WithMode(ModeConnected)))
	require.Equal(t, first, *c.Joint)
	require.Empty(t, src.intNs)
}

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{
		"balanced":  ModeBalanced,
		"Biased":    ModeBiased,
		"connected": ModeConnected,
		"1":         ModeBalanced,
		"2":         ModeBiased,
		"3":         ModeConnected,
	}
	for in, want := range cases {
		got, err := ParseMode(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	for _, in := range []string{"", "4", "dense"} {
		_, err := ParseMode(in)
		require.ErrorIs(t, err, ErrUnknownMode, in)
	}
}
