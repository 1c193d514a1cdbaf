package crucible

import (
	"strconv"
	"sync"

	"github.com/katalvlaran/crucible/gridgraph"
)

// MinimalCost runs Search with bounds b and returns only the cost.
// b takes precedence over any bounds set in opts.
func MinimalCost(g *gridgraph.GridGraph, b RunBounds, opts ...Option) (int64, error) {
	res, err := Search(g, append(append([]Option(nil), opts...), WithBounds(b))...)
	if err != nil {
		return 0, err
	}

	return res.Cost, nil
}

// Solve parses a digit grid and renders its minimal cost under b as a decimal string.
// Parse errors are returned as-is (gridgraph sentinels); no path yields ErrNoPath.
func Solve(input string, b RunBounds) (string, error) {
	g, err := gridgraph.ParseString(input)
	if err != nil {
		return "", err
	}
	cost, err := MinimalCost(g, b)
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(cost, 10), nil
}

// Outcome is one variant's answer from SolveAll. Err is set instead of Cost
// when the search failed, ErrNoPath included.
type Outcome struct {
	Variant Variant
	Cost    int64
	Err     error
}

// SolveAll searches g once per variant, concurrently. The grid is shared
// read-only; each search owns its BestCost map and frontier. Outcomes are
// returned in the order of variants. opts apply to every search, with the
// logger tagged by variant name.
func SolveAll(g *gridgraph.GridGraph, variants []Variant, opts ...Option) []Outcome {
	out := make([]Outcome, len(variants))
	var wg sync.WaitGroup
	for i, v := range variants {
		wg.Add(1)
		go func(i int, v Variant) {
			defer wg.Done()
			cfg := DefaultOptions()
			for _, opt := range opts {
				opt(&cfg)
			}
			tagged := append(append([]Option(nil), opts...),
				WithLogger(cfg.Logger.WithField("variant", v.Name)))
			cost, err := MinimalCost(g, v.Bounds, tagged...)
			out[i] = Outcome{Variant: v, Cost: cost, Err: err}
		}(i, v)
	}
	wg.Wait()

	return out
}
