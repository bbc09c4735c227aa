// Package geometry holds board-relative positions and directions.
package geometry

import "fmt"

type Direction uint8

const (
	Across Direction = iota
	Down
	NoDirection
)

func (d Direction) String() string {
	switch d {
	case Across:
		return "across"
	case Down:
		return "down"
	}
	return "none"
}

// Other returns the orthogonal direction. NoDirection has none.
func (d Direction) Other() Direction {
	switch d {
	case Across:
		return Down
	case Down:
		return Across
	}
	return NoDirection
}

// A Position is a 0-indexed row/column pair. Negative values are legal
// and simply out of bounds on every board.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Translate moves distance squares along the axis of d. Distance may be
// negative.
func (p Position) Translate(d Direction, distance int) Position {
	switch d {
	case Across:
		p.Col += distance
	case Down:
		p.Row += distance
	}
	return p
}

func (p Position) Next(d Direction) Position {
	return p.Translate(d, 1)
}

// Coord returns the coordinate that changes when moving along d.
func (p Position) Coord(d Direction) int {
	if d == Down {
		return p.Row
	}
	return p.Col
}
