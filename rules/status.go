package rules

// GameStatus is the lifecycle state of a game.
type GameStatus string

const (
	// GameStatusRunning represents a game that is still being ticked
	GameStatusRunning GameStatus = "running"
	// GameStatusComplete represents a game that is done
	GameStatusComplete GameStatus = "complete"
	// GameStatusError represents a game that was stopped by an engine error
	GameStatusError GameStatus = "error"
)
