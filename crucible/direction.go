package crucible

import "fmt"

// Direction is one of the four compass headings.
type Direction int

// Direction constants. The declaration order is the tie-break order.
const (
	North Direction = iota
	South
	East
	West
)

// directions lists every heading in tie-break order.
var directions = [4]Direction{North, South, East, West}

// Directions returns all headings in tie-break order.
func Directions() []Direction {
	out := directions

	return out[:]
}

// String returns the heading name.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// IsValid reports whether d is one of the four headings.
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Delta returns the unit displacement (dx, dy); y grows southwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	default:
		return -1, 0
	}
}

// Position is a cell coordinate: X is the column, Y the row, both 0-based.
type Position struct {
	X, Y int
}

// Step returns the neighbouring position in direction d.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()

	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Less orders positions by X, then Y.
func (p Position) Less(q Position) bool {
	if p.X != q.X {
		return p.X < q.X
	}

	return p.Y < q.Y
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
