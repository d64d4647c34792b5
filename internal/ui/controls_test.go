package ui

import (
	"testing"

	"circuitgen/internal/circuit"
	"circuitgen/internal/core"

	"github.com/stretchr/testify/require"
)

func controlIndex(t *testing.T, cs *controlSet, key string) int {
	t.Helper()
	for i, s := range cs.states {
		if s.control.Key == key {
			return i
		}
	}
	t.Fatalf("no control %q", key)
	return -1
}

func TestControlSetChoiceStepsThroughModes(t *testing.T) {
	g := circuit.New(4, 4)
	cs := newControlSet(g)
	cs.refresh(g.Parameters())

	mode := controlIndex(t, &cs, "mode")
	require.Equal(t, "balanced", cs.states[mode].value)
	require.False(t, cs.canAdjust(mode, -1), "first mode has no predecessor")

	require.True(t, cs.adjust(mode, 1))
	require.Equal(t, "biased", cs.states[mode].value)
	require.Equal(t, circuit.ModeBiased, g.Config().Mode)

	cs.refresh(g.Parameters())
	bias := controlIndex(t, &cs, "bias")
	require.Equal(t, "0.80", cs.states[bias].value)

	require.True(t, cs.adjust(mode, 1))
	require.False(t, cs.canAdjust(mode, 1), "last mode has no successor")
	require.False(t, cs.adjust(mode, 1))
	require.Equal(t, circuit.ModeConnected, g.Config().Mode)
}

func TestControlSetFloatAndIntClamp(t *testing.T) {
	g := circuit.New(4, 4)
	cs := newControlSet(g)
	cs.refresh(g.Parameters())

	bias := controlIndex(t, &cs, "bias")
	require.True(t, cs.adjust(bias, 1))
	require.InDelta(t, 0.55, g.Config().Bias, 1e-9)
	require.Equal(t, "0.55", cs.states[bias].value)

	steps := controlIndex(t, &cs, "steps")
	require.False(t, cs.canAdjust(steps, -1))
	require.True(t, cs.adjust(steps, 1))
	require.Equal(t, 2, g.Config().StepsPerTick)
}

func TestControlSetMissingParameter(t *testing.T) {
	g := circuit.New(4, 4)
	cs := newControlSet(g)
	cs.refresh(core.ParameterSnapshot{})

	for i, s := range cs.states {
		require.False(t, s.hasValue)
		require.Equal(t, "--", s.value)
		require.False(t, cs.adjust(i, 1))
	}
}

func TestControlSetLayoutAndHit(t *testing.T) {
	cs := newControlSet(circuit.New(4, 4))
	cs.layout(200)

	first := cs.states[0]
	require.Equal(t, controlsTop, first.top)
	require.Equal(t, 200-panelPadding, first.plusRect.Max.X)
	require.Equal(t, first.plusRect.Min.X-buttonGap, first.minusRect.Max.X)

	i, dir, ok := cs.hit(first.plusRect.Min.X, first.plusRect.Min.Y)
	require.True(t, ok)
	require.Equal(t, 0, i)
	require.Equal(t, 1, dir)

	i, dir, ok = cs.hit(cs.states[1].minusRect.Min.X+1, cs.states[1].minusRect.Min.Y+1)
	require.True(t, ok)
	require.Equal(t, 1, i)
	require.Equal(t, -1, dir)

	_, _, ok = cs.hit(0, 0)
	require.False(t, ok)
}

func TestFormatFloatPrecision(t *testing.T) {
	require.Equal(t, "0.5", formatFloat(core.ParameterControl{Step: 0.5}, 0.5))
	require.Equal(t, "0.50", formatFloat(core.ParameterControl{Step: 0.05}, 0.5))
	require.Equal(t, "0.500", formatFloat(core.ParameterControl{Step: 0.005}, 0.5))
	require.Equal(t, "0.50", formatFloat(core.ParameterControl{}, 0.5))
}
