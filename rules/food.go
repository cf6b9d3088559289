package rules

import (
	"github.com/pkg/errors"
)

// ErrBoardFull is returned when there is no free cell left for food.
var ErrBoardFull = errors.New("rules: no unoccupied cell left for food")

// DefaultFoodAttempts is the number of random draws made before food
// placement falls back to scanning the grid.
const DefaultFoodAttempts = 64

// Source is the random source used for food placement. *rand.Rand satisfies
// it.
type Source interface {
	Intn(n int) int
}

// FoodPlacer places food using a random source.
type FoodPlacer struct {
	Source      Source
	MaxAttempts int
}

// Place returns a free cell for the given body.
func (fp *FoodPlacer) Place(body []Point, bounds Bounds) (Point, error) {
	occupied := make(map[Point]struct{}, len(body))
	for _, p := range body {
		occupied[p] = struct{}{}
	}
	return SpawnFood(occupied, bounds, fp.Source, fp.MaxAttempts)
}

// SpawnFood draws uniformly random cells until one outside occupied is found.
// Rejection sampling gets slow as the snake fills the grid, so after
// maxAttempts draws the free cells are collected and one of them is picked
// instead. ErrBoardFull is returned when no cell is free.
func SpawnFood(occupied map[Point]struct{}, bounds Bounds, src Source, maxAttempts int) (Point, error) {
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return Point{}, errors.Wrapf(ErrInvalidBounds, "grid %dx%d", bounds.Width, bounds.Height)
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultFoodAttempts
	}

	for i := 0; i < maxAttempts; i++ {
		p := Point{X: src.Intn(bounds.Width), Y: src.Intn(bounds.Height)}
		if _, ok := occupied[p]; !ok {
			return p, nil
		}
	}

	free := unoccupiedPoints(occupied, bounds)
	if len(free) == 0 {
		return Point{}, ErrBoardFull
	}
	return free[src.Intn(len(free))], nil
}

func unoccupiedPoints(occupied map[Point]struct{}, bounds Bounds) []Point {
	candidates := make([]Point, 0, bounds.Cells())
	for y := 0; y < bounds.Height; y++ {
		for x := 0; x < bounds.Width; x++ {
			p := Point{X: x, Y: y}
			if _, ok := occupied[p]; !ok {
				candidates = append(candidates, p)
			}
		}
	}
	return candidates
}
