package circuit

import "strings"

// Cell is one grid position: an availability per side and, once collapsed,
// the classified joint.
type Cell struct {
	Sides [4]Availability
	Joint *Joint
}

// NewCell returns a cell with every side free.
func NewCell() *Cell {
	c := &Cell{}
	for i := range c.Sides {
		c.Sides[i] = Free()
	}
	return c
}

// Side returns the availability on side s.
func (c *Cell) Side(s Side) Availability { return c.Sides[s] }

// Pattern returns the fixed states once every side is fixed.
func (c *Cell) Pattern() (Pattern, bool) {
	var p Pattern
	for i, a := range c.Sides {
		st, ok := a.State()
		if !ok {
			return Pattern{}, false
		}
		p[i] = st
	}
	return p, true
}

// Resolved reports whether the cell has been collapsed and classified.
func (c *Cell) Resolved() bool { return c.Joint != nil }

// FreeSides returns the sides still undetermined, in N, E, S, W order.
func (c *Cell) FreeSides() []Side {
	var out []Side
	for _, s := range Sides {
		if c.Sides[s].IsFree() {
			out = append(out, s)
		}
	}
	return out
}

func (c *Cell) String() string {
	var b strings.Builder
	for i, a := range c.Sides {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(Side(i).String())
		b.WriteString(a.String())
	}
	if c.Joint != nil {
		b.WriteString(" -> ")
		b.WriteString(c.Joint.Kind.String())
	}
	return b.String()
}
