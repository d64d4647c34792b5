package circuit

import (
	"errors"
	"fmt"

	"circuitgen/internal/geom"
)

// Side is one of the four cell boundaries. The numeric order N, E, S, W is
// also the clockwise rotation order.
type Side uint8

const (
	North Side = iota
	East
	South
	West
)

// Sides lists every side in N, E, S, W order.
var Sides = [4]Side{North, East, South, West}

var sideNames = [4]string{"N", "E", "S", "W"}

func (s Side) String() string {
	if int(s) < len(sideNames) {
		return sideNames[s]
	}
	return fmt.Sprintf("Side(%d)", uint8(s))
}

// Opposite returns the side facing s across a shared boundary.
func (s Side) Opposite() Side { return (s + 2) & 3 }

// Offset is the grid step towards the neighbor sharing side s. Rows grow
// southwards.
func (s Side) Offset() geom.Vec[int] {
	switch s {
	case North:
		return geom.V(0, -1)
	case East:
		return geom.V(1, 0)
	case South:
		return geom.V(0, 1)
	default:
		return geom.V(-1, 0)
	}
}

// SideState records whether a cable crosses a side.
type SideState uint8

const (
	Absent SideState = iota
	Present
)

func (s SideState) String() string {
	switch s {
	case Absent:
		return "0"
	case Present:
		return "1"
	default:
		return "?"
	}
}

func (s SideState) valid() bool { return s == Absent || s == Present }

// ErrInvalidAvailability is returned when a list of states does not describe
// a fixed or a free side.
var ErrInvalidAvailability = errors.New("circuit: invalid side availability")

type availabilityTag uint8

const (
	tagUnset availabilityTag = iota
	tagFixed
	tagFree
)

// Availability is the set of states a side may still take: either a single
// fixed state or free. The zero value is unset and rejected by Collapse.
type Availability struct {
	tag   availabilityTag
	state SideState
}

// Fixed returns an availability pinned to state.
func Fixed(state SideState) Availability { return Availability{tag: tagFixed, state: state} }

// Free returns an undetermined availability.
func Free() Availability { return Availability{tag: tagFree} }

// AvailabilityOf converts the list form: one state is fixed, the pair
// {Absent, Present} in that order is free.
func AvailabilityOf(states ...SideState) (Availability, error) {
	switch len(states) {
	case 1:
		if !states[0].valid() {
			return Availability{}, fmt.Errorf("%w: unknown state %d", ErrInvalidAvailability, states[0])
		}
		return Fixed(states[0]), nil
	case 2:
		if states[0] != Absent || states[1] != Present {
			return Availability{}, fmt.Errorf("%w: free side must list [0 1], got %v", ErrInvalidAvailability, states)
		}
		return Free(), nil
	default:
		return Availability{}, fmt.Errorf("%w: length %d", ErrInvalidAvailability, len(states))
	}
}

// IsFixed reports whether the side is pinned to a single state.
func (a Availability) IsFixed() bool { return a.tag == tagFixed }

// IsFree reports whether the side is still undetermined.
func (a Availability) IsFree() bool { return a.tag == tagFree }

// IsSet reports whether a holds either a fixed state or the free set.
func (a Availability) IsSet() bool { return a.tag != tagUnset }

// State returns the fixed state, if any.
func (a Availability) State() (SideState, bool) {
	if a.tag != tagFixed {
		return Absent, false
	}
	return a.state, true
}

// States returns the list form of a.
func (a Availability) States() []SideState {
	switch a.tag {
	case tagFixed:
		return []SideState{a.state}
	case tagFree:
		return []SideState{Absent, Present}
	default:
		return nil
	}
}

func (a Availability) String() string {
	switch a.tag {
	case tagFixed:
		return a.state.String()
	case tagFree:
		return "*"
	default:
		return "-"
	}
}
