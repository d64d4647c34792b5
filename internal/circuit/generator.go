package circuit

import (
	"fmt"

	"github.com/google/uuid"

	"circuitgen/internal/core"
	"circuitgen/internal/geom"
)

// Generator fills a bounded grid cell by cell in row-major order: find the
// next empty position, seed it from placed neighbors, collapse it, place it.
// It is not safe for concurrent use.
type Generator struct {
	cfg Config

	grid    *Grid
	display *core.ByteGrid
	src     Source
	runID   uuid.UUID
	done    bool
}

// New returns a Generator with the provided dimensions using defaults.
func New(w, h int) *Generator {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a Generator seeded from cfg.Seed.
func NewWithConfig(cfg Config) *Generator {
	if cfg.StepsPerTick <= 0 {
		cfg.StepsPerTick = 1
	}
	g := &Generator{
		cfg:     cfg,
		display: core.NewByteGrid(cfg.Width, cfg.Height),
	}
	g.Reset(0)
	return g
}

// NewWithSource returns a Generator drawing from src instead of a seeded
// RNG. Reset keeps using src.
func NewWithSource(cfg Config, src Source) *Generator {
	g := NewWithConfig(cfg)
	g.src = src
	return g
}

// Name returns the generator identifier.
func (g *Generator) Name() string { return "circuit" }

// Size reports the grid dimensions.
func (g *Generator) Size() core.Size { return core.Size{W: g.cfg.Width, H: g.cfg.Height} }

// Config returns the active configuration.
func (g *Generator) Config() Config { return g.cfg }

// Grid exposes the cells placed so far.
func (g *Generator) Grid() *Grid { return g.grid }

// Cells exposes the display buffer, one EncodeJoint byte per cell.
func (g *Generator) Cells() []uint8 { return g.display.Cells() }

// RunID identifies the current run in logs.
func (g *Generator) RunID() uuid.UUID { return g.runID }

// Done reports whether every position within the bounds has been placed.
func (g *Generator) Done() bool { return g.done }

// Reset clears the grid. A zero seed falls back to the configured seed. A
// generator built with NewWithSource keeps its source.
func (g *Generator) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = g.cfg.Seed
	}
	if _, seeded := g.src.(*core.RNG); g.src == nil || seeded {
		g.src = core.NewRNG(effective)
	}
	g.grid = NewGrid()
	g.display.Clear()
	g.done = g.cfg.Width <= 0 || g.cfg.Height <= 0
	g.runID = uuid.New()
	Logger().Info("circuit reset",
		"run", g.runID,
		"seed", effective,
		"mode", g.cfg.Mode.String(),
		"bias", g.cfg.EffectiveBias(),
		"w", g.cfg.Width,
		"h", g.cfg.Height)
}

// Step places up to StepsPerTick cells.
func (g *Generator) Step() {
	for i := 0; i < g.cfg.StepsPerTick; i++ {
		if _, ok := g.PlaceNext(); !ok {
			return
		}
	}
}

// Fill places cells until the grid is saturated and returns how many were
// placed.
func (g *Generator) Fill() int {
	n := 0
	for {
		if _, ok := g.PlaceNext(); !ok {
			return n
		}
		n++
	}
}

// PlaceNext runs one round of the generation protocol. ok is false once the
// grid is saturated.
func (g *Generator) PlaceNext() (pos Pos, ok bool) {
	if g.done {
		return Pos{}, false
	}
	pos, ok = g.grid.NextEmptyPosition(g.cfg.Width-1, g.cfg.Height-1)
	if !ok {
		g.done = true
		Logger().Debug("circuit saturated", "run", g.runID, "cells", g.grid.Len())
		return Pos{}, false
	}
	cell := g.grid.SeedCellAt(pos)
	if err := Collapse(cell, g.src, g.cfg.CollapseOptions()...); err != nil {
		panic(fmt.Sprintf("circuit: collapse seeded cell %v: %v", pos, err))
	}
	if err := g.grid.Place(pos, cell); err != nil {
		panic(fmt.Sprintf("circuit: %v", err))
	}
	g.display.Set(pos.X, pos.Y, EncodeJoint(cell))
	return pos, true
}

// Stats summarizes a grid.
type Stats struct {
	Cells      int
	Kinds      map[JointKind]int
	Mismatches int
}

// Stats tallies the joint kinds placed so far and checks boundary
// consistency.
func (g *Generator) Stats() Stats {
	return GridStats(g.grid)
}

// GridStats tallies the joint kinds in grid and checks boundary consistency.
func GridStats(grid *Grid) Stats {
	s := Stats{Kinds: make(map[JointKind]int, len(JointKinds))}
	grid.Each(func(_ Pos, c *Cell) {
		s.Cells++
		if c.Joint != nil {
			s.Kinds[c.Joint.Kind]++
		}
	})
	s.Mismatches = len(VerifyConsistency(grid))
	return s
}

// Anchor returns the pixel-space centre of the cell at pos for a square cell
// of the given size.
func Anchor(pos Pos, cellSize float64) geom.Vec[float64] {
	half := cellSize / 2
	return geom.ToFloat(pos).Scale(cellSize).Add(geom.V(half, half))
}

func init() {
	core.Register("circuit", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
