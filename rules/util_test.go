package rules

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedSource returns the queued values in order, then zeros.
type scriptedSource struct {
	values []int
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v % n
}

func seeded(seed int64) *FoodPlacer {
	return &FoodPlacer{
		Source:      rand.New(rand.NewSource(seed)),
		MaxAttempts: DefaultFoodAttempts,
	}
}

func requireInBounds(t *testing.T, b Bounds, s *State) {
	t.Helper()
	for i, p := range s.Current {
		require.True(t, b.Contains(p), "segment %d at %s is off the grid", i, p)
	}
	for i, p := range s.Previous {
		require.True(t, b.Contains(p), "previous segment %d at %s is off the grid", i, p)
	}
}
