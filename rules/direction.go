package rules

import (
	"strings"

	"github.com/pkg/errors"
)

// Direction is the heading of the snake.
type Direction int

// The four headings a snake can travel in.
const (
	Up Direction = iota
	Down
	Left
	Right
)

// Key codes understood by the input gate. Only these four trigger a turn.
const (
	KeyLeft  = 37
	KeyUp    = 38
	KeyRight = 39
	KeyDown  = 40
)

var directionNames = map[Direction]string{
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "unknown"
}

// ParseDirection converts "up", "down", "left" or "right" into a Direction.
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d, name := range directionNames {
		if name == s {
			return d, nil
		}
	}
	return Up, errors.Errorf("rules: unknown direction %q", s)
}

// Delta is the one cell offset travelled in this direction. The y axis grows
// downwards.
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	}
	return Point{}
}

// Opposite returns the 180 degree reversal of d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Horizontal reports whether d is Left or Right.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// Perpendicular reports whether d and other lie on different axes.
func (d Direction) Perpendicular(other Direction) bool {
	return d.Horizontal() != other.Horizontal()
}

// DirectionForKey maps an arrow key code to a Direction.
func DirectionForKey(code int) (Direction, bool) {
	switch code {
	case KeyLeft:
		return Left, true
	case KeyUp:
		return Up, true
	case KeyRight:
		return Right, true
	case KeyDown:
		return Down, true
	}
	return Up, false
}
