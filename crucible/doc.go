// Package crucible finds the cheapest walk across a cost grid when the walk's
// shape is constrained by run-length rules on direction changes.
//
// Overview:
//
//   - A walker starts in the top-left cell and must reach the bottom-right cell.
//     Entering a cell costs that cell's value; the start cell is free.
//   - The walker may never reverse. It may continue straight only while its
//     current run is shorter than Max, and it may turn (or stop on the target)
//     only once its run has reached Min.
//   - Because the legal moves depend on the last direction and run length, the
//     search runs over augmented states (position, direction, run) rather than
//     over cells. Run length is a sufficient statistic: no path history is kept.
//
// When to use:
//
//   - Routing vehicles that cannot hold a heading for too long, or that need a
//     minimum straight stretch to build up before turning.
//   - Any grid problem where the cost of a step depends on how you got there
//     only through "how many steps in a row in this direction".
//
// Key features:
//
//   - RunBounds are explicit parameters; Unconstrained (0..3) and MandatoryRun
//     (4..10) are just two values of the same type driving the same engine.
//   - Functional options mirror lvlath's dijkstra/bfs: WithRunBounds,
//     WithReturnPath, WithBestCosts, WithMaxCost, WithWallThreshold, hooks and
//     a logrus logger.
//   - Deterministic tie-break: equal-cost frontier entries are ordered by State,
//     so two runs over the same grid explore in the same order.
//
// Performance and complexity:
//
//   - States: V = W·H·4·Max. Each state has at most 3 successors.
//   - Time:  O(V log V) heap operations.
//   - Space: O(V) for the BestCost map and the lazy frontier.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:         Search was handed a nil grid.
//   - ErrBadRunBounds:    Min < 0, Max < 1 or Min > Max.
//   - ErrOptionViolation: a negative MaxCost or non-positive WallThreshold.
//   - ErrNoPath:          the frontier ran dry without a state satisfying the
//     terminal condition. This is an outcome, never a zero cost.
//
// Thread safety:
//
//   - A *gridgraph.GridGraph is read-only and may be shared by any number of
//     concurrent searches. Each Search call owns its BestCost map and frontier.
//   - SolveAll runs variants in parallel; hooks passed to it must be safe for
//     concurrent use.
package crucible
