package rules

import (
	"github.com/pkg/errors"
)

// ErrInvalidState is returned by State.Validate.
var ErrInvalidState = errors.New("rules: invalid state")

// InitialBody is the body every new game starts with, head first.
var InitialBody = []Point{
	{X: 5, Y: 5},
	{X: 4, Y: 5},
	{X: 3, Y: 5},
	{X: 2, Y: 5},
}

// InitialHeading is the heading every new game starts with.
const InitialHeading = Right

// State is the snake over two ticks. Current is the body after the last step
// and Previous the body before the head last moved; each trailing segment
// follows into the cell its predecessor held in Previous. Both are head
// first and always the same length.
type State struct {
	Turn     int64     `json:"turn"`
	Current  []Point   `json:"current"`
	Previous []Point   `json:"previous"`
	Food     Point     `json:"food"`
	Heading  Direction `json:"heading"`
}

// NewState creates the starting state for a game on bounds, with freshly
// placed food.
func NewState(bounds Bounds, food *FoodPlacer) (*State, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	s := FromBody(InitialBody, InitialHeading, Point{})
	p, err := food.Place(s.Previous, bounds)
	if err != nil {
		return nil, errors.Wrap(err, "placing initial food")
	}
	s.Food = p
	return s, nil
}

// FromBody builds a state whose current and previous bodies are both body.
func FromBody(body []Point, heading Direction, food Point) *State {
	return &State{
		Current:  clonePoints(body),
		Previous: clonePoints(body),
		Food:     food,
		Heading:  heading,
	}
}

// Head returns the first point of the current body.
func (s *State) Head() Point {
	if len(s.Current) == 0 {
		return Point{}
	}
	return s.Current[0]
}

// Len returns the number of segments.
func (s *State) Len() int {
	return len(s.Current)
}

// Clone makes a deep copy of the state.
func (s *State) Clone() *State {
	return &State{
		Turn:     s.Turn,
		Current:  clonePoints(s.Current),
		Previous: clonePoints(s.Previous),
		Food:     s.Food,
		Heading:  s.Heading,
	}
}

// Occupied returns every cell held by the current or previous body.
func (s *State) Occupied() map[Point]struct{} {
	occupied := make(map[Point]struct{}, len(s.Current)+len(s.Previous))
	for _, p := range s.Current {
		occupied[p] = struct{}{}
	}
	for _, p := range s.Previous {
		occupied[p] = struct{}{}
	}
	return occupied
}

// Contains checks if p is one of the current body segments.
func (s *State) Contains(p Point) bool {
	for _, b := range s.Current {
		if b == p {
			return true
		}
	}
	return false
}

// Validate checks the invariants that hold between ticks.
func (s *State) Validate(bounds Bounds) error {
	if len(s.Current) < 2 {
		return errors.Wrapf(ErrInvalidState, "body has %d segments", len(s.Current))
	}
	if len(s.Current) != len(s.Previous) {
		return errors.Wrapf(ErrInvalidState, "current has %d segments, previous has %d",
			len(s.Current), len(s.Previous))
	}
	for i, p := range s.Current {
		if !bounds.Contains(p) {
			return errors.Wrapf(ErrInvalidState, "segment %d at %s is off the grid", i, p)
		}
	}
	// A full board has no free cell, the food is left on the head.
	if s.Len() < bounds.Cells() && s.Contains(s.Food) {
		return errors.Wrapf(ErrInvalidState, "food at %s is on the body", s.Food)
	}
	return nil
}

func clonePoints(points []Point) []Point {
	out := make([]Point, len(points))
	copy(out, points)
	return out
}
