package crucible

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGrid indicates that a nil *gridgraph.GridGraph was passed to Search.
	ErrNilGrid = errors.New("crucible: grid is nil")

	// ErrBadRunBounds indicates run-length bounds that no walk could honour.
	ErrBadRunBounds = errors.New("crucible: invalid run bounds")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("crucible: invalid option supplied")

	// ErrNoPath indicates that no walk reaches the target within the bounds.
	ErrNoPath = errors.New("crucible: no path satisfies the run bounds")
)

// Options configures a single Search.
//
// Bounds        – run-length constraints (default Unconstrained).
// ReturnPath    – keep a predecessor map so Result.Path can rebuild the walk.
// BestCosts     – return the final BestCost map in Result.Best.
// MaxCost       – states costing more than this are not explored. Must be ≥ 0.
// WallThreshold – cells costing ≥ this value are never entered. Must be > 0.
type Options struct {
	Bounds        RunBounds
	ReturnPath    bool
	BestCosts     bool
	MaxCost       int64
	WallThreshold int

	// OnPop is called for every non-stale frontier extraction.
	OnPop func(s State, cost int64)

	// OnRelax is called whenever a state's best-known cost improves.
	// old is math.MaxInt64 when the state had no cost yet.
	OnRelax func(s State, old, cost int64)

	// Logger receives a debug summary of each search.
	Logger logrus.FieldLogger

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns Options with no caps, no walls, no hooks and a
// logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Bounds:        Unconstrained,
		MaxCost:       math.MaxInt64,
		WallThreshold: math.MaxInt,
		OnPop:         func(State, int64) {},
		OnRelax:       func(State, int64, int64) {},
		Logger:        discardLogger(),
	}
}

// WithRunBounds sets the minimum and maximum run length.
// Validity is checked by Search, which returns ErrBadRunBounds.
func WithRunBounds(min, max int) Option {
	return func(o *Options) {
		o.Bounds = RunBounds{Min: min, Max: max}
	}
}

// WithBounds is WithRunBounds for an existing RunBounds value.
func WithBounds(b RunBounds) Option {
	return func(o *Options) {
		o.Bounds = b
	}
}

// WithReturnPath enables the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithBestCosts returns the BestCost map in the result.
func WithBestCosts() Option {
	return func(o *Options) {
		o.BestCosts = true
	}
}

// WithMaxCost stops exploring states whose accumulated cost exceeds max.
//
//	max ≥ 0: cap exploration
//	max < 0: invalid option → ErrOptionViolation
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, max)
			return
		}
		o.MaxCost = max
	}
}

// WithWallThreshold treats every cell costing threshold or more as impassable.
// A non-positive threshold would wall off every cell and is rejected.
func WithWallThreshold(threshold int) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = fmt.Errorf("%w: WallThreshold must be positive (%d)", ErrOptionViolation, threshold)
			return
		}
		o.WallThreshold = threshold
	}
}

// WithOnPop registers a callback run on every non-stale frontier extraction.
func WithOnPop(fn func(s State, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPop = fn
		}
	}
}

// WithOnRelax registers a callback run whenever a BestCost entry improves.
func WithOnRelax(fn func(s State, old, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// WithLogger sets the logger used for the search summary.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.Out = io.Discard

	return l
}
