package ui

import (
	"image"
	"math"
	"strconv"

	"circuitgen/internal/core"
)

// controlState tracks one HUD row: the control description, the last value
// read from the generator and the hit boxes of its buttons.
type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// controlSet holds the adjustable rows for a generator. It is free of any
// rendering so both builds share it.
type controlSet struct {
	states      []controlState
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
}

func newControlSet(sim any) controlSet {
	var cs controlSet
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		cs.states = make([]controlState, len(controls))
		for i, ctrl := range controls {
			cs.states[i] = controlState{control: ctrl, value: "--"}
		}
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		cs.intSetter = setter
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		cs.floatSetter = setter
	}
	return cs
}

func (cs *controlSet) refresh(snapshot core.ParameterSnapshot) {
	for i := range cs.states {
		state := &cs.states[i]
		param, ok := snapshot.Lookup(state.control.Key)
		if !ok {
			state.clear()
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt, core.ParamTypeChoice:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				state.clear()
				continue
			}
			state.setInt(parsed)
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				state.clear()
				continue
			}
			state.floatValue = parsed
			state.value = formatFloat(state.control, parsed)
			state.hasValue = true
		default:
			state.clear()
		}
	}
}

// adjust steps control i in direction and reports whether the generator
// accepted the new value.
func (cs *controlSet) adjust(i, direction int) bool {
	if i < 0 || i >= len(cs.states) || direction == 0 {
		return false
	}
	state := &cs.states[i]
	if !state.hasValue {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt, core.ParamTypeChoice:
		if cs.intSetter == nil {
			return false
		}
		target := state.intTarget(direction)
		if target == state.intValue {
			return false
		}
		if !cs.intSetter.SetIntParameter(state.control.Key, target) {
			return false
		}
		state.setInt(target)
		return true
	case core.ParamTypeFloat:
		if cs.floatSetter == nil {
			return false
		}
		target := state.floatTarget(direction)
		if math.Abs(target-state.floatValue) < 1e-9 {
			return false
		}
		if !cs.floatSetter.SetFloatParameter(state.control.Key, target) {
			return false
		}
		state.floatValue = target
		state.value = formatFloat(state.control, target)
		return true
	}
	return false
}

func (cs *controlSet) canAdjust(i, direction int) bool {
	if i < 0 || i >= len(cs.states) || direction == 0 {
		return false
	}
	state := &cs.states[i]
	if !state.hasValue {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt, core.ParamTypeChoice:
		return cs.intSetter != nil && state.intTarget(direction) != state.intValue
	case core.ParamTypeFloat:
		return cs.floatSetter != nil && math.Abs(state.floatTarget(direction)-state.floatValue) >= 1e-9
	}
	return false
}

// layout positions the rows inside a panel of the given width.
func (cs *controlSet) layout(width int) {
	if width <= 0 {
		return
	}
	for i := range cs.states {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		cs.states[i].top = top
		cs.states[i].minusRect = minusRect
		cs.states[i].plusRect = plusRect
	}
}

// hit returns the control index and direction of the button under (x, y).
func (cs *controlSet) hit(x, y int) (int, int, bool) {
	for i := range cs.states {
		if pointInRect(x, y, cs.states[i].minusRect) {
			return i, -1, true
		}
		if pointInRect(x, y, cs.states[i].plusRect) {
			return i, 1, true
		}
	}
	return 0, 0, false
}

func (s *controlState) clear() {
	s.hasValue = false
	s.value = "--"
}

func (s *controlState) setInt(v int) {
	s.intValue = v
	s.floatValue = float64(v)
	s.hasValue = true
	s.value = strconv.Itoa(v)
	if s.control.Type == core.ParamTypeChoice && v >= 0 && v < len(s.control.Choices) {
		s.value = s.control.Choices[v]
	}
}

func (s *controlState) intTarget(direction int) int {
	step := int(math.Round(s.control.Step))
	if step <= 0 {
		step = 1
	}
	target := s.intValue + direction*step
	if s.control.HasMin {
		target = max(target, int(math.Round(s.control.Min)))
	}
	if s.control.HasMax {
		target = min(target, int(math.Round(s.control.Max)))
	}
	if s.control.Type == core.ParamTypeChoice && len(s.control.Choices) > 0 {
		target = min(max(target, 0), len(s.control.Choices)-1)
	}
	return target
}

func (s *controlState) floatTarget(direction int) float64 {
	step := s.control.Step
	if step <= 0 {
		step = 0.05
	}
	target := s.floatValue + float64(direction)*step
	if s.control.HasMin && target < s.control.Min {
		target = s.control.Min
	}
	if s.control.HasMax && target > s.control.Max {
		target = s.control.Max
	}
	return target
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	controlsTop    = panelPadding + headerBaseline + 14
)
