// Package crucible implements Dijkstra's algorithm over run-length states.
//
// Notes on implementation choices:
//
//   - We validate options and bounds before allocating anything, so invalid
//     configuration never costs a search.
//   - With a WallThreshold we flood-fill the grid first: if walls cut the
//     target off, ErrNoPath is returned without touching the heap.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries when they are popped.
//   - The terminal condition is checked on pop, not on push, so the first goal
//     popped is globally optimal.
package crucible

import (
	"container/heap"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/crucible/gridgraph"
)

// Search computes the minimal cost of walking from the top-left to the
// bottom-right cell of g under the configured run bounds.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGrid).
//  3. Bounds must be valid (ErrBadRunBounds).
//
// Returns ErrNoPath when the frontier is exhausted without a state on the
// target whose run satisfies Bounds.Min.
func Search(g *gridgraph.GridGraph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := cfg.Bounds.Validate(); err != nil {
		return nil, err
	}

	ox, oy := g.Origin()
	tx, ty := g.Target()
	log := cfg.Logger.WithFields(logrus.Fields{
		"bounds": cfg.Bounds.String(),
		"width":  g.Width,
		"height": g.Height,
	})

	if cfg.WallThreshold < math.MaxInt {
		seen := g.Reachable(ox, oy, func(c int) bool { return c < cfg.WallThreshold })
		if !seen[g.Index(tx, ty)] {
			log.Debug("crucible: target walled off")
			return nil, ErrNoPath
		}
	}

	// Upper bound on distinct states; the maps grow lazily past the hint.
	hint := g.Width * g.Height * 4
	r := &runner{
		g:       g,
		options: cfg,
		origin:  Position{X: ox, Y: oy},
		target:  Position{X: tx, Y: ty},
		best:    make(map[State]int64, hint),
		visited: make(map[State]bool, hint),
		pq:      make(statePQ, 0, hint),
	}
	if cfg.ReturnPath {
		r.prev = make(map[State]State, hint)
	}

	r.init()
	res, err := r.process()
	log = log.WithFields(logrus.Fields{
		"popped": r.popped,
		"pushed": r.pushed,
		"states": len(r.best),
	})
	if err != nil {
		log.Debug("crucible: frontier exhausted")
		return nil, err
	}
	log.WithField("cost", res.Cost).Debug("crucible: search finished")

	return res, nil
}

// runner holds the mutable state for a single search. Nothing in it is shared.
type runner struct {
	g       *gridgraph.GridGraph // read-only
	options Options
	origin  Position
	target  Position
	best    map[State]int64 // BestCost: only ever inserted or lowered
	prev    map[State]State // predecessor on the best walk; nil unless ReturnPath
	visited map[State]bool  // finalized states
	pq      statePQ
	popped  int
	pushed  int
}

// init records both start states at cost 0 and pushes them onto the heap.
func (r *runner) init() {
	heap.Init(&r.pq)
	for _, s := range StartStates(r.origin) {
		r.best[s] = 0
		r.push(s, 0)
	}
}

// process is the main loop. It returns the first goal state popped, or
// ErrNoPath once the heap is empty or every remaining entry exceeds MaxCost.
func (r *runner) process() (*Result, error) {
	cfg := r.options
	var s State
	var d int64
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*stateItem)
		s, d = item.state, item.cost

		// Stale entry: finalized already, or superseded by a cheaper push.
		if r.visited[s] || d > r.best[s] {
			continue
		}
		// Heap is ordered by cost, so nothing cheaper remains.
		if d > cfg.MaxCost {
			break
		}
		r.visited[s] = true
		r.popped++
		cfg.OnPop(s, d)

		// A target state with too short a run is not a goal, but it still
		// relaxes: the walker may carry on and come back.
		if s.Pos == r.target && cfg.Bounds.CanStop(s.Run) {
			return r.result(s, d), nil
		}
		r.relax(s, d)
	}

	return nil, ErrNoPath
}

// relax pushes every successor of u whose BestCost strictly improves.
func (r *runner) relax(u State, d int64) {
	cfg := r.options
	for _, t := range Transitions(r.g, u, cfg.Bounds) {
		if t.Cost >= int64(cfg.WallThreshold) {
			continue
		}
		nd := d + t.Cost
		if nd > cfg.MaxCost {
			continue
		}
		old, ok := r.best[t.Next]
		if !ok {
			old = math.MaxInt64
		}
		// “<” rather than “≤”: equal costs would only duplicate heap entries.
		if nd >= old {
			continue
		}
		r.best[t.Next] = nd
		if r.prev != nil {
			r.prev[t.Next] = u
		}
		cfg.OnRelax(t.Next, old, nd)
		r.push(t.Next, nd)
	}
}

func (r *runner) push(s State, cost int64) {
	heap.Push(&r.pq, &stateItem{state: s, cost: cost})
	r.pushed++
}

func (r *runner) result(goal State, cost int64) *Result {
	res := &Result{
		Cost:   cost,
		Goal:   goal,
		Popped: r.popped,
		Pushed: r.pushed,
		Prev:   r.prev,
	}
	if r.options.BestCosts {
		res.Best = r.best
	}

	return res
}

// stateItem is a frontier entry.
type stateItem struct {
	state State
	cost  int64
}

// statePQ is a min-heap of *stateItem ordered by cost, then State.Less.
type statePQ []*stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less orders by cost; equal costs fall back to the State order so runs are reproducible.
func (pq statePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].state.Less(pq[j].state)
}

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *stateItem. Called by heap.Push.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

// Pop removes the last element. Called by heap.Pop.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
