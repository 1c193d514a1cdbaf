package crucible

import "fmt"

// RunBounds constrains straight runs.
//
// Min – cells to enter on one heading before a turn (or a stop) is allowed; 0 means none.
// Max – cells that may be entered on one heading before a turn is mandatory.
type RunBounds struct {
	Min, Max int
}

// Named configurations sharing the same engine.
var (
	// Unconstrained lets the walker turn at any time but never run more than 3 cells.
	Unconstrained = RunBounds{Min: 0, Max: 3}

	// MandatoryRun needs at least 4 cells before turning or stopping, and at most 10.
	MandatoryRun = RunBounds{Min: 4, Max: 10}
)

// Validate returns ErrBadRunBounds unless 0 ≤ Min ≤ Max and Max ≥ 1.
func (b RunBounds) Validate() error {
	switch {
	case b.Min < 0:
		return fmt.Errorf("%w: min %d is negative", ErrBadRunBounds, b.Min)
	case b.Max < 1:
		return fmt.Errorf("%w: max %d must be at least 1", ErrBadRunBounds, b.Max)
	case b.Min > b.Max:
		return fmt.Errorf("%w: min %d exceeds max %d", ErrBadRunBounds, b.Min, b.Max)
	}

	return nil
}

// CanStop reports whether a walker with run length run may finish its walk.
func (b RunBounds) CanStop(run int) bool {
	return run >= b.Min
}

func (b RunBounds) String() string {
	return fmt.Sprintf("%d..%d", b.Min, b.Max)
}

// Variant names a RunBounds configuration.
type Variant struct {
	Name   string
	Bounds RunBounds
}

// Variants returns the two named configurations in a fixed order.
func Variants() []Variant {
	return []Variant{
		{Name: "unconstrained", Bounds: Unconstrained},
		{Name: "mandatory", Bounds: MandatoryRun},
	}
}

// LookupVariant finds a named configuration.
func LookupVariant(name string) (Variant, bool) {
	for _, v := range Variants() {
		if v.Name == name {
			return v, true
		}
	}

	return Variant{}, false
}
