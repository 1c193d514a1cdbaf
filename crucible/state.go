package crucible

import "fmt"

// State is the augmented search node: where the walker stands, the heading of
// its last move and how many cells in a row it has entered on that heading.
// States are plain values and are used directly as map keys.
type State struct {
	Pos Position
	Dir Direction
	Run int
}

// startDirections is the explicit initial-heading set. Both start states have
// run 0, so the first move on either axis is legal under any bounds.
var startDirections = [2]Direction{East, South}

// StartStates returns the synthetic start states at origin.
func StartStates(origin Position) []State {
	out := make([]State, 0, len(startDirections))
	for _, d := range startDirections {
		out = append(out, State{Pos: origin, Dir: d, Run: 0})
	}

	return out
}

// Less is the deterministic tie-break: position, then direction, then run.
func (s State) Less(t State) bool {
	if s.Pos != t.Pos {
		return s.Pos.Less(t.Pos)
	}
	if s.Dir != t.Dir {
		return s.Dir < t.Dir
	}

	return s.Run < t.Run
}

func (s State) String() string {
	return fmt.Sprintf("%s %s×%d", s.Pos, s.Dir, s.Run)
}
