package maze

import (
	"fmt"
	"strings"
)

// Direction is an agent heading: one of the four cardinals or None (stopped).
type Direction int

const (
	None Direction = iota
	Left
	Right
	Up
	Down
)

// scanOrder is the fixed order adversaries scan when picking a new heading.
var scanOrder = [4]Direction{Right, Left, Down, Up}

// Valid reports whether d is None or one of the cardinals.
func (d Direction) Valid() bool {
	return d >= None && d <= Down
}

// Cardinal reports whether d is one of the four movement directions.
func (d Direction) Cardinal() bool {
	return d >= Left && d <= Down
}

// Vector returns the unit step (dx, dy) for d. Screen y grows downward.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	default:
		return 0, 0
	}
}

// Opposite returns the reverse heading. None is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	case Down:
		return Up
	default:
		return None
	}
}

func (d Direction) String() string {
	switch d {
	case None:
		return "none"
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// ParseDirection parses a heading name such as "left" (case-insensitive).
// The empty string parses as None.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "stop":
		return None, nil
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	}
	return None, fmt.Errorf("maze: unknown direction %q: %w", s, ErrHeading)
}
