package circuit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"circuitgen/internal/geom"
)

func TestSideOppositeAndOffset(t *testing.T) {
	pairs := map[Side]Side{North: South, East: West, South: North, West: East}
	for s, want := range pairs {
		require.Equal(t, want, s.Opposite(), "opposite of %s", s)
		require.Equal(t, geom.V(0, 0), s.Offset().Add(s.Opposite().Offset()), "offsets of %s must cancel", s)
	}
	require.Equal(t, geom.V(0, -1), North.Offset())
	require.Equal(t, geom.V(1, 0), East.Offset())
}

func TestAvailabilityOf(t *testing.T) {
	fixed, err := AvailabilityOf(Present)
	require.NoError(t, err)
	st, ok := fixed.State()
	require.True(t, ok)
	require.Equal(t, Present, st)
	require.Equal(t, []SideState{Present}, fixed.States())

	free, err := AvailabilityOf(Absent, Present)
	require.NoError(t, err)
	require.True(t, free.IsFree())
	require.Equal(t, []SideState{Absent, Present}, free.States())

	bad := [][]SideState{
		nil,
		{Present, Absent},
		{Absent, Absent},
		{Absent, Present, Present},
		{SideState(3)},
	}
	for _, states := range bad {
		_, err := AvailabilityOf(states...)
		require.ErrorIs(t, err, ErrInvalidAvailability, "states %v", states)
	}
}

func TestZeroAvailabilityIsUnset(t *testing.T) {
	var a Availability
	require.False(t, a.IsSet())
	require.False(t, a.IsFixed())
	require.False(t, a.IsFree())
	require.Nil(t, a.States())
}
