package rules

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Outcome describes what happened during a tick.
type Outcome string

const (
	// OutcomeMoved is a normal move, the body length is unchanged
	OutcomeMoved Outcome = "moved"
	// OutcomeAte means the head reached the food and the snake grew by one
	OutcomeAte Outcome = "ate"
	// OutcomeDead means the head ran into the body, the game is over
	OutcomeDead Outcome = "dead"
	// OutcomeBoardFull means the snake grew and no cell is left for food,
	// the game is over and won
	OutcomeBoardFull Outcome = "board-full"
	// OutcomeError means the engine could not produce a valid next state,
	// Result.Err holds the reason
	OutcomeError Outcome = "error"
)

// Result is the outcome of one step along with the state it produced.
type Result struct {
	Outcome Outcome
	State   *State
	Death   *Death
	Err     error
}

// Engine advances a game one tick at a time.
type Engine struct {
	Bounds Bounds
	Food   *FoodPlacer
}

// Step runs the game one tick. The passed state is left untouched; the
// returned Result holds the next state. Running into the body is reported
// through the outcome, not as an error.
func (e *Engine) Step(s *State) Result {
	head := e.Bounds.Wrap(s.Head().Add(s.Heading.Delta()), s.Heading)

	if hitsBody(head, s.Previous) {
		next := s.Clone()
		next.Turn++
		death := &Death{Turn: next.Turn, Cause: DeathCauseSelfCollision}
		log.WithFields(log.Fields{
			"Turn": next.Turn,
			"Head": head,
		}).Debug("snake collided with itself")
		return Result{Outcome: OutcomeDead, State: next, Death: death}
	}

	if head == s.Food {
		return e.grow(s, head)
	}

	next := &State{
		Turn:    s.Turn + 1,
		Current: make([]Point, len(s.Current)),
		Food:    s.Food,
		Heading: s.Heading,
	}
	next.Current[0] = head
	for i := 1; i < len(next.Current); i++ {
		next.Current[i] = s.Previous[i-1]
	}
	next.Previous = clonePoints(next.Current)
	return Result{Outcome: OutcomeMoved, State: next}
}

// grow prepends the eaten food to the previous body, so every segment keeps
// its place and the snake gains one cell at the front.
func (e *Engine) grow(s *State, food Point) Result {
	body := make([]Point, 0, len(s.Previous)+1)
	body = append(body, food)
	body = append(body, s.Previous...)

	next := &State{
		Turn:     s.Turn + 1,
		Current:  body,
		Previous: clonePoints(body),
		Food:     food,
		Heading:  s.Heading,
	}

	fields := log.Fields{
		"Turn":   next.Turn,
		"Food":   food,
		"Length": len(body),
	}
	p, err := e.Food.Place(body, e.Bounds)
	if errors.Cause(err) == ErrBoardFull {
		// The food stays on the head, nothing reads it once the game is over.
		log.WithFields(fields).Info("no room left for food")
		return Result{Outcome: OutcomeBoardFull, State: next}
	}
	if err != nil {
		log.WithFields(fields).WithError(err).Error("unable to place food")
		return Result{
			Outcome: OutcomeError,
			State:   s.Clone(),
			Err:     errors.Wrap(err, "unable to place food"),
		}
	}
	next.Food = p
	log.WithFields(fields).Debug("snake ate")
	return Result{Outcome: OutcomeAte, State: next}
}

// hitsBody checks the head against every segment but the first.
func hitsBody(head Point, body []Point) bool {
	for i, b := range body {
		if i == 0 {
			continue
		}
		if b == head {
			return true
		}
	}
	return false
}
