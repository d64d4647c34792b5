package core

import "golang.org/x/exp/slices"

// Size describes the dimensions of a generator grid in cells.
type Size struct {
	W int
	H int
}

// Sim is the contract the viewers drive: a grid that advances one tick at a
// time and exposes one display byte per cell.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Finisher is implemented by sims that reach a terminal state.
type Finisher interface {
	Done() bool
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available factories.
func Sims() map[string]Factory {
	return sims
}

// Names returns the registered names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
