package circuit

import (
	"math"

	"circuitgen/internal/core"
)

// Parameters reports the current tunables for the HUD.
func (g *Generator) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("w", "Width", g.cfg.Width),
				core.IntParam("h", "Height", g.cfg.Height),
				core.Int64Param("seed", "Seed", g.cfg.Seed),
				core.IntParam("placed", "Placed", g.grid.Len()),
			},
		},
		{
			Name: "Collapse",
			Params: []core.Parameter{
				core.ChoiceParam("mode", "Mode", int(g.cfg.Mode), g.cfg.Mode.String()),
				core.FloatParam("bias", "Bias", g.cfg.EffectiveBias()),
				core.IntParam("steps", "Cells per tick", g.cfg.StepsPerTick),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable parameters.
func (g *Generator) ParameterControls() []core.ParameterControl {
	names := make([]string, len(Modes))
	for i, m := range Modes {
		names[i] = m.String()
	}
	return []core.ParameterControl{
		{Key: "mode", Label: "Mode", Type: core.ParamTypeChoice, Step: 1, Min: 0, Max: float64(len(Modes) - 1), HasMin: true, HasMax: true, Choices: names},
		{Key: "bias", Label: "Bias", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "steps", Label: "Cells per tick", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 256, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates mode or steps for cells placed after the call.
// Selecting a mode drops any bias override so the mode's preset applies.
func (g *Generator) SetIntParameter(key string, value int) bool {
	switch key {
	case "mode":
		if value < 0 || value >= len(Modes) {
			return false
		}
		g.cfg.Mode = Mode(value)
		g.cfg.Bias = ModeBias
		return true
	case "steps":
		if value < 1 {
			value = 1
		}
		if value > 256 {
			value = 256
		}
		g.cfg.StepsPerTick = value
		return true
	}
	return false
}

// SetFloatParameter updates the bias, clamped to [0, 1]. It applies to
// cells placed after the call.
func (g *Generator) SetFloatParameter(key string, value float64) bool {
	if key != "bias" || math.IsNaN(value) {
		return false
	}
	g.cfg.Bias = math.Min(1, math.Max(0, value))
	return true
}
