package session

import "github.com/0wafi0/ng-snake/rules"

// Frame is a snapshot of a session handed to the presentation layer after
// every tick. Every Body cell and the Food cell map to one grid cell.
type Frame struct {
	ID      string           `json:"id"`
	Turn    int64            `json:"turn"`
	Width   int              `json:"width"`
	Height  int              `json:"height"`
	Body    []rules.Point    `json:"body"`
	Food    rules.Point      `json:"food"`
	Heading rules.Direction  `json:"heading"`
	Status  rules.GameStatus `json:"status"`
	Outcome rules.Outcome    `json:"outcome,omitempty"`
	Death   *rules.Death     `json:"death,omitempty"`
	Paused  bool             `json:"paused"`
}

// Over reports whether the frame ends the session.
func (f Frame) Over() bool {
	return f.Status == rules.GameStatusComplete || f.Status == rules.GameStatusError
}

// Head returns the first body cell.
func (f Frame) Head() rules.Point {
	if len(f.Body) == 0 {
		return rules.Point{}
	}
	return f.Body[0]
}
