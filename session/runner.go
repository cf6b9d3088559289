package session

import (
	"context"

	"golang.org/x/time/rate"
)

// Observer receives every frame produced by a Runner.
type Observer interface {
	Observe(Frame) error
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Frame) error

// Observe calls f.
func (f ObserverFunc) Observe(frame Frame) error { return f(frame) }

// Runner ticks a session at the limiter's rate until the game ends. It is the
// only caller of Session.Tick, so steps never overlap.
type Runner struct {
	Session  *Session
	Limiter  *rate.Limiter
	Observer Observer
}

// Run drives the session to completion and returns the final frame. It
// returns early with ctx.Err() when the context is done, or with the error
// of a failing observer.
func (r *Runner) Run(ctx context.Context) (Frame, error) {
	limiter := r.Limiter
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}

	for {
		if err := limiter.Wait(ctx); err != nil {
			return r.Session.Frame(), err
		}
		select {
		case <-ctx.Done():
			return r.Session.Frame(), ctx.Err()
		default:
		}

		f, err := r.Session.Tick()
		if err != nil {
			return f, err
		}
		if r.Observer != nil {
			if err := r.Observer.Observe(f); err != nil {
				return f, err
			}
		}
		if f.Over() {
			return f, nil
		}
	}
}
