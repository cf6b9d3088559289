package rules

// Gate filters heading changes. A turn is accepted only when it is
// perpendicular to the current heading, and at most one turn is accepted
// between two calls to Reset. Without the second rule two quick turns could
// reverse the snake into its own neck before the head moves.
//
// The zero value is an open gate. The tick driver owns the gate and calls
// Reset once per tick.
type Gate struct {
	locked bool
}

// RequestTurn changes s.Heading to d if the gate allows it and reports
// whether the turn was accepted. Rejected requests leave the gate open.
func (g *Gate) RequestTurn(s *State, d Direction) bool {
	if g.locked {
		return false
	}
	if !d.Perpendicular(s.Heading) {
		return false
	}
	s.Heading = d
	g.locked = true
	return true
}

// RequestKey is RequestTurn for an arrow key code. Other keys are ignored.
func (g *Gate) RequestKey(s *State, code int) bool {
	d, ok := DirectionForKey(code)
	if !ok {
		return false
	}
	return g.RequestTurn(s, d)
}

// Reset opens the gate for the next tick.
func (g *Gate) Reset() {
	g.locked = false
}

// Locked reports whether a turn was already accepted this tick.
func (g *Gate) Locked() bool {
	return g.locked
}
