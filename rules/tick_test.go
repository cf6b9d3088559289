package rules

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

var commonBounds = Bounds{Width: 20, Height: 20}

func TestStepSnakeEats(t *testing.T) {
	engine := &Engine{
		Bounds: commonBounds,
		Food:   &FoodPlacer{Source: &scriptedSource{values: []int{10, 10}}},
	}
	s := FromBody([]Point{
		{X: 5, Y: 5},
		{X: 4, Y: 5},
		{X: 3, Y: 5},
		{X: 2, Y: 5},
	}, Right, Point{X: 6, Y: 5})

	res := engine.Step(s)
	require.Equal(t, OutcomeAte, res.Outcome)
	require.Nil(t, res.Death)
	require.Equal(t, []Point{
		{X: 6, Y: 5},
		{X: 5, Y: 5},
		{X: 4, Y: 5},
		{X: 3, Y: 5},
		{X: 2, Y: 5},
	}, res.State.Current)
	require.Equal(t, res.State.Current, res.State.Previous)
	require.Equal(t, Point{X: 10, Y: 10}, res.State.Food)
	require.False(t, res.State.Contains(res.State.Food))
	require.Equal(t, Right, res.State.Heading)
	require.Equal(t, int64(1), res.State.Turn)
}

func TestStepWrapsRightEdge(t *testing.T) {
	engine := &Engine{Bounds: commonBounds, Food: seeded(1)}
	s := FromBody([]Point{
		{X: 19, Y: 5},
		{X: 18, Y: 5},
		{X: 17, Y: 5},
		{X: 16, Y: 5},
	}, Right, Point{X: 1, Y: 1})

	res := engine.Step(s)
	require.Equal(t, OutcomeMoved, res.Outcome)
	require.Equal(t, []Point{
		{X: 0, Y: 5},
		{X: 19, Y: 5},
		{X: 18, Y: 5},
		{X: 17, Y: 5},
	}, res.State.Current)
	require.Equal(t, res.State.Current, res.State.Previous)
}

func TestStepWrapsEveryEdge(t *testing.T) {
	tests := []struct {
		Name     string
		Body     []Point
		Heading  Direction
		Expected Point
	}{
		{
			Name:     "right",
			Body:     []Point{{X: 19, Y: 3}, {X: 18, Y: 3}},
			Heading:  Right,
			Expected: Point{X: 0, Y: 3},
		},
		{
			Name:     "left",
			Body:     []Point{{X: 0, Y: 3}, {X: 1, Y: 3}},
			Heading:  Left,
			Expected: Point{X: 19, Y: 3},
		},
		{
			Name:     "up",
			Body:     []Point{{X: 7, Y: 0}, {X: 7, Y: 1}},
			Heading:  Up,
			Expected: Point{X: 7, Y: 19},
		},
		{
			Name:     "down",
			Body:     []Point{{X: 7, Y: 19}, {X: 7, Y: 18}},
			Heading:  Down,
			Expected: Point{X: 7, Y: 0},
		},
	}

	for _, test := range tests {
		engine := &Engine{Bounds: commonBounds, Food: seeded(1)}
		s := FromBody(test.Body, test.Heading, Point{X: 10, Y: 10})
		res := engine.Step(s)
		require.Equal(t, OutcomeMoved, res.Outcome, "Heading: %s", test.Name)
		require.Equal(t, test.Expected, res.State.Head(), "Heading: %s", test.Name)
		require.Equal(t, test.Body[0], res.State.Current[1], "Heading: %s", test.Name)
	}
}

func TestStepSelfCollision(t *testing.T) {
	engine := &Engine{Bounds: commonBounds, Food: seeded(1)}
	s := FromBody([]Point{
		{X: 5, Y: 5},
		{X: 6, Y: 5},
		{X: 5, Y: 5},
		{X: 4, Y: 5},
	}, Left, Point{X: 10, Y: 10})
	s.Turn = 7

	res := engine.Step(s)
	require.Equal(t, OutcomeDead, res.Outcome)
	require.True(t, res.Terminal())
	require.NotNil(t, res.Death)
	require.Equal(t, DeathCauseSelfCollision, res.Death.Cause)
	require.Equal(t, int64(8), res.Death.Turn)
	// The move is not applied.
	require.Equal(t, s.Current, res.State.Current)
}

func TestStepTailCellIsACollision(t *testing.T) {
	engine := &Engine{Bounds: commonBounds, Food: seeded(1)}
	s := FromBody([]Point{
		{X: 5, Y: 5},
		{X: 5, Y: 6},
		{X: 4, Y: 6},
		{X: 4, Y: 5},
	}, Left, Point{X: 10, Y: 10})

	res := engine.Step(s)
	require.Equal(t, OutcomeDead, res.Outcome)
}

func TestStepMoveKeepsLength(t *testing.T) {
	engine := &Engine{Bounds: commonBounds, Food: seeded(1)}
	s := FromBody(InitialBody, Right, Point{X: 15, Y: 15})
	before := s.Clone()

	res := engine.Step(s)
	require.Equal(t, OutcomeMoved, res.Outcome)
	require.False(t, res.Terminal())
	require.Nil(t, res.Death)
	require.Equal(t, s.Len(), res.State.Len())
	require.Equal(t, []Point{
		{X: 6, Y: 5},
		{X: 5, Y: 5},
		{X: 4, Y: 5},
		{X: 3, Y: 5},
	}, res.State.Current)
	require.Equal(t, Point{X: 15, Y: 15}, res.State.Food)
	require.Equal(t, before, s, "input state must not be modified")
}

func TestStepFollowsPreviousBody(t *testing.T) {
	engine := &Engine{Bounds: commonBounds, Food: seeded(1)}
	s := FromBody(InitialBody, Right, Point{X: 15, Y: 15})
	s.Heading = Down

	res := engine.Step(s)
	require.Equal(t, []Point{
		{X: 5, Y: 6},
		{X: 5, Y: 5},
		{X: 4, Y: 5},
		{X: 3, Y: 5},
	}, res.State.Current)

	res = engine.Step(res.State)
	require.Equal(t, []Point{
		{X: 5, Y: 7},
		{X: 5, Y: 6},
		{X: 5, Y: 5},
		{X: 4, Y: 5},
	}, res.State.Current)
}

func TestStepBoardFull(t *testing.T) {
	b := Bounds{Width: 6, Height: 6}
	// Walk the grid row by row, alternating direction.
	var path []Point
	for y := 0; y < b.Height; y++ {
		for i := 0; i < b.Width; i++ {
			x := i
			if y%2 == 1 {
				x = b.Width - 1 - i
			}
			path = append(path, Point{X: x, Y: y})
		}
	}
	food := path[len(path)-1]
	body := make([]Point, 0, len(path)-1)
	for i := len(path) - 2; i >= 0; i-- {
		body = append(body, path[i])
	}

	engine := &Engine{Bounds: b, Food: seeded(3)}
	res := engine.Step(FromBody(body, Left, food))
	require.Equal(t, OutcomeBoardFull, res.Outcome)
	require.True(t, res.Terminal())
	require.Nil(t, res.Death)
	require.Equal(t, b.Cells(), res.State.Len())
	require.NoError(t, res.State.Validate(b))
}

func TestStepFoodPlacementError(t *testing.T) {
	// A grid without columns can not hold food, which is not a full board.
	b := Bounds{Width: 0, Height: 10}
	s := FromBody([]Point{{X: 0, Y: 1}, {X: 0, Y: 0}}, Down, Point{X: 0, Y: 2})

	engine := &Engine{Bounds: b, Food: seeded(1)}
	res := engine.Step(s)
	require.Equal(t, OutcomeError, res.Outcome)
	require.True(t, res.Terminal())
	require.Equal(t, ErrInvalidBounds, errors.Cause(res.Err))
	require.Equal(t, s.Current, res.State.Current)
	require.Equal(t, s.Food, res.State.Food)
}

func TestStepInvariantsOverManyTicks(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	engine := &Engine{Bounds: commonBounds, Food: &FoodPlacer{Source: rng}}
	s, err := NewState(commonBounds, engine.Food)
	require.NoError(t, err)

	gate := &Gate{}
	directions := []Direction{Up, Down, Left, Right}
	for i := 0; i < 5000; i++ {
		gate.Reset()
		if rng.Intn(4) == 0 {
			gate.RequestTurn(s, directions[rng.Intn(len(directions))])
		}
		res := engine.Step(s)
		switch res.Outcome {
		case OutcomeMoved:
			require.Equal(t, s.Len(), res.State.Len())
		case OutcomeAte:
			require.Equal(t, s.Len()+1, res.State.Len())
			require.False(t, res.State.Contains(res.State.Food))
		case OutcomeDead:
			s, err = NewState(commonBounds, engine.Food)
			require.NoError(t, err)
			continue
		default:
			t.Fatalf("unexpected outcome %s", res.Outcome)
		}
		require.NoError(t, res.State.Validate(commonBounds))
		requireInBounds(t, commonBounds, res.State)
		s = res.State
	}
}
