package rules

const (
	// DeathCauseSelfCollision is the death reason when the head moves onto the
	// snake's own body
	DeathCauseSelfCollision = "self-collision"
)

// Death records when and why a game ended.
type Death struct {
	Turn  int64  `json:"turn"`
	Cause string `json:"cause"`
}
