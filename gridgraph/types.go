// Package gridgraph defines core types and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/crucible.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNegativeCost indicates a cell with a cost below zero.
	ErrNegativeCost = errors.New("gridgraph: cell costs must be non-negative")
	// ErrNonDigit indicates a character other than '0'..'9' in text input.
	ErrNonDigit = errors.New("gridgraph: grid text must contain only digits")
)

// offsets4 lists orthogonal neighbor displacements in N, E, S, W order.
var offsets4 = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Cell represents a single grid cell with its coordinates and stored cost.
type Cell struct {
	X, Y  int // Coordinates within the grid
	Value int // Cost of entering (X, Y)
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// Width and Height define dimensions; cells[y][x] holds the cost of entering (x, y).
type GridGraph struct {
	Width, Height int
	cells         [][]int
}
