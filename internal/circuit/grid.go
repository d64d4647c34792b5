package circuit

import (
	"errors"
	"fmt"

	"circuitgen/internal/geom"
)

// Pos is a (column, row) grid coordinate.
type Pos = geom.Vec[int]

// ErrOccupied is returned by Place when the position already holds a cell.
var ErrOccupied = errors.New("circuit: position already occupied")

// Grid is a sparse collection of cells keyed by position. It grows lazily;
// positions never placed are simply absent.
type Grid struct {
	cells  map[Pos]*Cell
	origin Pos
	extent Pos
}

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	return &Grid{cells: make(map[Pos]*Cell)}
}

// HasCellAt reports whether a cell was placed at pos.
func (g *Grid) HasCellAt(pos Pos) bool {
	_, ok := g.cells[pos]
	return ok
}

// CellAt returns the cell at pos, if any.
func (g *Grid) CellAt(pos Pos) (*Cell, bool) {
	c, ok := g.cells[pos]
	return c, ok
}

// Len returns the number of placed cells.
func (g *Grid) Len() int { return len(g.cells) }

// Bounds returns one past the largest placed column and row.
func (g *Grid) Bounds() Pos { return g.extent }

// Origin returns the smallest placed column and row, or zero when nothing
// was placed at a negative coordinate.
func (g *Grid) Origin() Pos { return g.origin }

// NextEmptyPosition scans rows 0..maxRow and, within a row, columns
// 0..maxCol (both inclusive) and returns the first position without a cell.
// ok is false when the bounded region is saturated.
func (g *Grid) NextEmptyPosition(maxCol, maxRow int) (pos Pos, ok bool) {
	for r := 0; r <= maxRow; r++ {
		for c := 0; c <= maxCol; c++ {
			p := geom.V(c, r)
			if !g.HasCellAt(p) {
				return p, true
			}
		}
	}
	return Pos{}, false
}

// SeedCellAt builds a new cell for pos. Each side facing a placed neighbor
// copies that neighbor's facing availability; the rest are free.
func (g *Grid) SeedCellAt(pos Pos) *Cell {
	c := NewCell()
	for _, s := range Sides {
		n, ok := g.cells[pos.Add(s.Offset())]
		if !ok {
			continue
		}
		c.Sides[s] = n.Sides[s.Opposite()]
	}
	return c
}

// Place stores cell at pos. Overwriting is not allowed.
func (g *Grid) Place(pos Pos, cell *Cell) error {
	if g.HasCellAt(pos) {
		return fmt.Errorf("place %v: %w", pos, ErrOccupied)
	}
	g.cells[pos] = cell
	if pos.X+1 > g.extent.X {
		g.extent.X = pos.X + 1
	}
	if pos.Y+1 > g.extent.Y {
		g.extent.Y = pos.Y + 1
	}
	g.origin.X = min(g.origin.X, pos.X)
	g.origin.Y = min(g.origin.Y, pos.Y)
	return nil
}

// Each calls fn for every placed cell in row-major order from Origin up to
// Bounds.
func (g *Grid) Each(fn func(pos Pos, c *Cell)) {
	for y := g.origin.Y; y < g.extent.Y; y++ {
		for x := g.origin.X; x < g.extent.X; x++ {
			p := geom.V(x, y)
			if c, ok := g.cells[p]; ok {
				fn(p, c)
			}
		}
	}
}

// Mismatch describes two adjacent cells that disagree on their shared side.
type Mismatch struct {
	A, B Pos
	Side Side
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%v.%s != %v.%s", m.A, m.Side, m.B, m.Side.Opposite())
}

// VerifyConsistency checks every pair of placed, resolved neighbors (east
// and south of each cell) and returns the boundaries they disagree on.
func VerifyConsistency(g *Grid) []Mismatch {
	var out []Mismatch
	g.Each(func(pos Pos, c *Cell) {
		for _, s := range [2]Side{East, South} {
			npos := pos.Add(s.Offset())
			n, ok := g.CellAt(npos)
			if !ok {
				continue
			}
			a, aok := c.Sides[s].State()
			b, bok := n.Sides[s.Opposite()].State()
			if !aok || !bok {
				continue
			}
			if a != b {
				out = append(out, Mismatch{A: pos, B: npos, Side: s})
			}
		}
	})
	return out
}
