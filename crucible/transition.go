package crucible

import "github.com/katalvlaran/crucible/gridgraph"

// Transition is one legal move: the state reached and the cost of the cell entered.
type Transition struct {
	Next State
	Cost int64
}

// Transitions enumerates the legal successors of s, in Direction order.
//
// Rules per heading d:
//  1. d == s.Dir.Opposite(): never legal.
//  2. d == s.Dir: legal while s.Run < b.Max; run becomes s.Run+1.
//  3. any other d (a turn): legal once s.Run ≥ b.Min; run becomes 1.
//  4. the next position must lie inside g.
//
// Transitions is pure; it reads g and allocates only the returned slice.
func Transitions(g *gridgraph.GridGraph, s State, b RunBounds) []Transition {
	out := make([]Transition, 0, 3)
	for _, d := range directions {
		if d == s.Dir.Opposite() {
			continue
		}
		run := 1
		if d == s.Dir {
			if s.Run >= b.Max {
				continue
			}
			run = s.Run + 1
		} else if s.Run < b.Min {
			continue
		}
		next := s.Pos.Step(d)
		if !g.InBounds(next.X, next.Y) {
			continue
		}
		out = append(out, Transition{
			Next: State{Pos: next, Dir: d, Run: run},
			Cost: int64(g.Cost(next.X, next.Y)),
		})
	}

	return out
}
