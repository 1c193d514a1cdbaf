// Package gridgraph provides utilities to treat a 2D grid of integer cell costs
// as a graph with four-connectivity.
package gridgraph

import (
	"fmt"
	"strings"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrNegativeCost if any cell is below zero.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		for x, v := range values[y] {
			if v < 0 {
				return nil, fmt.Errorf("%w: (%d,%d)=%d", ErrNegativeCost, x, y, v)
			}
			cells[y][x] = v
		}
	}

	return &GridGraph{Width: w, Height: h, cells: cells}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Cost returns the cost of entering cell (x,y). The caller must check InBounds.
// Complexity: O(1).
func (gg *GridGraph) Cost(x, y int) int {
	return gg.cells[y][x]
}

// Cell returns the cell at (x,y) with its cost.
func (gg *GridGraph) Cell(x, y int) Cell {
	return Cell{X: x, Y: y, Value: gg.cells[y][x]}
}

// Cells returns a deep copy of the cost rows.
func (gg *GridGraph) Cells() [][]int {
	out := make([][]int, gg.Height)
	for y := range gg.cells {
		out[y] = append([]int(nil), gg.cells[y]...)
	}

	return out
}

// Origin returns the top-left corner.
func (gg *GridGraph) Origin() (x, y int) {
	return 0, 0
}

// Target returns the bottom-right corner.
func (gg *GridGraph) Target() (x, y int) {
	return gg.Width - 1, gg.Height - 1
}

// Index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// String renders the grid one row per line. Cells above 9 are written in
// decimal and separated by spaces, so the output only round-trips through
// Parse for single-digit grids.
func (gg *GridGraph) String() string {
	wide := false
	for _, row := range gg.cells {
		for _, v := range row {
			if v > 9 {
				wide = true
			}
		}
	}
	var sb strings.Builder
	for y, row := range gg.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, v := range row {
			if wide && x > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", v)
		}
	}

	return sb.String()
}
