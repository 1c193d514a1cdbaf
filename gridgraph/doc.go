// Package gridgraph treats a 2D grid of non-negative cell costs as an
// implicit graph, the input of the constrained searches in package crucible.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid and is immutable once built.
//   - Parse and ParseString read the classic "one digit per cell" text form.
//   - Reachable runs a plain 4-connected flood fill over passable cells.
//
// Why:
//
//   - Heat-loss maps, terrain costs, city blocks: any map where entering a
//     cell costs something and the walker only moves N/E/S/W.
//   - A GridGraph is safe to share between goroutines: nothing mutates it.
//
// Complexity:
//
//   - NewGridGraph, Parse: O(W×H) time and memory.
//   - Reachable:           O(W×H) time, O(W×H) memory.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeCost: a cell holds a negative cost.
//   - ErrNonDigit: text input holds a character outside '0'..'9'.
package gridgraph
