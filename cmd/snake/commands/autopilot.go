package commands

import (
	"github.com/0wafi0/ng-snake/rules"
	"github.com/0wafi0/ng-snake/session"
)

// autopilot picks the heading for the next tick of a simulated game. It
// greedily heads for the food over the wrapping grid and only keeps going
// into the body when every other move is blocked.
func autopilot(f session.Frame) rules.Direction {
	bounds := rules.Bounds{Width: f.Width, Height: f.Height}
	head := f.Head()

	best := f.Heading
	bestDist := -1
	bestSafe := false
	for _, d := range candidates(f.Heading) {
		next := bounds.Wrap(head.Add(d.Delta()), d)
		safe := !blocked(next, f.Body)
		dist := wrappedDistance(next, f.Food, bounds)
		switch {
		case bestDist < 0,
			safe && !bestSafe,
			safe == bestSafe && dist < bestDist:
			best, bestDist, bestSafe = d, dist, safe
		}
	}
	return best
}

// candidates returns the current heading followed by both turns.
func candidates(heading rules.Direction) []rules.Direction {
	if heading.Horizontal() {
		return []rules.Direction{heading, rules.Up, rules.Down}
	}
	return []rules.Direction{heading, rules.Left, rules.Right}
}

func blocked(p rules.Point, body []rules.Point) bool {
	for i := 1; i < len(body); i++ {
		if body[i] == p {
			return true
		}
	}
	return false
}

func wrappedDistance(a, b rules.Point, bounds rules.Bounds) int {
	return axisDistance(a.X, b.X, bounds.Width) + axisDistance(a.Y, b.Y, bounds.Height)
}

func axisDistance(a, b, size int) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	if size-d < d {
		return size - d
	}
	return d
}
