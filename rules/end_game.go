package rules

// Terminal reports whether the result ends the game.
func (r Result) Terminal() bool {
	return CheckForGameOver(r.Outcome)
}

// CheckForGameOver checks if the outcome of a tick ends the game. A snake
// that collided with itself is dead, a snake that filled the board has won
// and an engine error stops the game.
func CheckForGameOver(o Outcome) bool {
	return o == OutcomeDead || o == OutcomeBoardFull || o == OutcomeError
}
