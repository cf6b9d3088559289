package rules

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidBounds is returned when a grid is too small to hold the initial
// snake and a piece of food.
var ErrInvalidBounds = errors.New("rules: invalid bounds")

// minGridSide is the smallest width or height that fits the initial body
// (which reaches x=5, y=5) inside the grid.
const minGridSide = 6

// Point is a cell on the grid, in grid units.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add offsets p by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Bounds is the size of the playing field in cells.
type Bounds struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Contains checks if p lies within [0,Width) x [0,Height).
func (b Bounds) Contains(p Point) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// Cells returns the number of cells on the grid.
func (b Bounds) Cells() int {
	return b.Width * b.Height
}

// Validate makes sure the grid can hold a new game.
func (b Bounds) Validate() error {
	if b.Width < minGridSide || b.Height < minGridSide {
		return errors.Wrapf(ErrInvalidBounds, "grid %dx%d is smaller than %dx%d",
			b.Width, b.Height, minGridSide, minGridSide)
	}
	return nil
}

// Wrap moves a head that left the grid through the edge it was travelling
// towards back onto the opposite edge. Only the edge in the direction of
// travel is checked.
func (b Bounds) Wrap(p Point, heading Direction) Point {
	switch heading {
	case Right:
		if p.X >= b.Width {
			p.X = 0
		}
	case Left:
		if p.X < 0 {
			p.X = b.Width - 1
		}
	case Down:
		if p.Y >= b.Height {
			p.Y = 0
		}
	case Up:
		if p.Y < 0 {
			p.Y = b.Height - 1
		}
	}
	return p
}
