package crucible

// Result is the outcome of a successful Search.
//
//   - Cost:   minimal accumulated cost; the start cell is not counted.
//   - Goal:   the state that satisfied the terminal condition.
//   - Best:   final BestCost map; nil unless WithBestCosts.
//   - Prev:   predecessor map; nil unless WithReturnPath.
//   - Popped: non-stale frontier extractions.
//   - Pushed: frontier insertions, start states included.
type Result struct {
	Cost   int64
	Goal   State
	Best   map[State]int64
	Prev   map[State]State
	Popped int
	Pushed int
}

// Path rebuilds the state sequence from a start state to Goal.
// Returns nil when the search ran without WithReturnPath.
func (r *Result) Path() []State {
	if r.Prev == nil {
		return nil
	}
	path := []State{r.Goal}
	for cur := r.Goal; ; {
		p, ok := r.Prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Positions projects Path onto grid cells, start cell first.
func (r *Result) Positions() []Position {
	path := r.Path()
	if path == nil {
		return nil
	}
	out := make([]Position, len(path))
	for i, s := range path {
		out[i] = s.Pos
	}

	return out
}
