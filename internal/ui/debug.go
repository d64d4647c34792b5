package ui

import (
	"circuitgen/internal/circuit"
	"circuitgen/internal/geom"
	"circuitgen/internal/render"
)

// GridProvider exposes the sparse grid behind a generator.
type GridProvider interface {
	Grid() *circuit.Grid
}

// SideLabel is one availability digit drawn by the debug overlay.
type SideLabel struct {
	Pos  geom.Vec[float64]
	Text string
}

// SideLabels lists the raw N/E/S/W availability of every placed cell,
// positioned just inside the matching cell edge.
func SideLabels(grid *circuit.Grid, cellSize float64) []SideLabel {
	if grid == nil || cellSize <= 0 {
		return nil
	}
	labels := make([]SideLabel, 0, 4*grid.Len())
	grid.Each(func(pos circuit.Pos, c *circuit.Cell) {
		markers := render.SideMarkers(circuit.Anchor(pos, cellSize), cellSize)
		for _, s := range circuit.Sides {
			labels = append(labels, SideLabel{Pos: markers[s], Text: c.Side(s).String()})
		}
	})
	return labels
}
