// Package session owns a running game. It serialises every mutation of the
// game state (ticks, turn requests and restarts) behind one lock so that
// input may arrive from any goroutine while a single driver ticks the game.
package session

import (
	"math/rand"
	"sync"

	"github.com/0wafi0/ng-snake/config"
	"github.com/0wafi0/ng-snake/rules"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

// ErrSessionOver is returned when ticking a session that already ended.
var ErrSessionOver = errors.New("session: game is over")

// Option customises a Session.
type Option func(*Session)

// WithSource replaces the seeded random source used for food placement.
func WithSource(src rules.Source) Option {
	return func(s *Session) { s.engine.Food.Source = src }
}

// WithStepper replaces the stepper, by default the instrumented engine.
func WithStepper(st Stepper) Option {
	return func(s *Session) { s.stepper = st }
}

// Session is a single player game with restart support.
type Session struct {
	mu sync.Mutex

	id      string
	engine  *rules.Engine
	stepper Stepper
	state   *rules.State
	gate    rules.Gate
	status  rules.GameStatus
	outcome rules.Outcome
	death   *rules.Death
	paused  bool

	// History holds the frames of the current game, reset on restart.
	History *History
}

// New creates a session with a fresh game.
func New(cfg config.Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid session config")
	}
	engine := &rules.Engine{
		Bounds: cfg.Bounds(),
		Food: &rules.FoodPlacer{
			Source:      rand.New(rand.NewSource(cfg.SeedOrNow())),
			MaxAttempts: cfg.FoodAttempts,
		},
	}
	s := &Session{
		engine:  engine,
		stepper: InstrumentStepper(engine),
		History: &History{},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// reset starts a new game, s.mu must be held.
func (s *Session) reset() error {
	state, err := rules.NewState(s.engine.Bounds, s.engine.Food)
	if err != nil {
		return errors.Wrap(err, "unable to create initial state")
	}
	s.id = uuid.NewV4().String()
	s.state = state
	s.gate.Reset()
	s.status = rules.GameStatusRunning
	s.outcome = ""
	s.death = nil
	s.paused = false
	s.History.Reset()
	s.History.Append(s.frame())

	sessionEvents.WithLabelValues("started").Inc()
	log.WithFields(log.Fields{
		"SessionID": s.id,
		"Width":     s.engine.Bounds.Width,
		"Height":    s.engine.Bounds.Height,
		"Food":      state.Food,
	}).Info("session started")
	return nil
}

// Restart discards the current game and starts a new one.
func (s *Session) Restart() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log.WithField("SessionID", s.id).Info("restarting session")
	return s.reset()
}

// Turn requests a heading change for the next tick. It reports whether the
// request was accepted.
func (s *Session) Turn(d rules.Direction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != rules.GameStatusRunning || s.paused {
		return false
	}
	return s.gate.RequestTurn(s.state, d)
}

// Key is Turn for an arrow key code.
func (s *Session) Key(code int) bool {
	d, ok := rules.DirectionForKey(code)
	if !ok {
		return false
	}
	return s.Turn(d)
}

// TogglePause pauses or resumes the game and returns the new paused state.
// A paused session ignores turns and ticks without moving.
func (s *Session) TogglePause() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.paused = !s.paused
	return s.paused
}

// Tick advances the game by one step and opens the input gate for the next
// tick. Once the game is over ErrSessionOver is returned along with the final
// frame. An engine error ends the session and is returned with its frame.
func (s *Session) Tick() (Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != rules.GameStatusRunning {
		return s.frame(), ErrSessionOver
	}
	if s.paused {
		return s.frame(), nil
	}

	res := s.stepper.Step(s.state)
	s.gate.Reset()
	s.state = res.State
	s.outcome = res.Outcome
	s.death = res.Death

	if res.Terminal() {
		s.status = rules.GameStatusComplete
		if res.Err != nil {
			s.status = rules.GameStatusError
		}
		sessionEvents.WithLabelValues(string(res.Outcome)).Inc()
		entry := log.WithFields(log.Fields{
			"SessionID": s.id,
			"Turn":      res.State.Turn,
			"Length":    res.State.Len(),
			"Outcome":   res.Outcome,
		})
		if res.Death != nil {
			entry = entry.WithField("Cause", res.Death.Cause)
		}
		if res.Err != nil {
			entry.WithError(res.Err).Error("session stopped")
		} else {
			entry.Info("session ended")
		}
	}

	f := s.frame()
	s.History.Append(f)
	if res.Err != nil {
		return f, errors.Wrapf(res.Err, "session %s", s.id)
	}
	return f, nil
}

// Frame returns a snapshot of the current game.
func (s *Session) Frame() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.frame()
}

// ID returns the identifier of the current game.
func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.id
}

func (s *Session) frame() Frame {
	body := make([]rules.Point, len(s.state.Current))
	copy(body, s.state.Current)
	return Frame{
		ID:      s.id,
		Turn:    s.state.Turn,
		Width:   s.engine.Bounds.Width,
		Height:  s.engine.Bounds.Height,
		Body:    body,
		Food:    s.state.Food,
		Heading: s.state.Heading,
		Status:  s.status,
		Outcome: s.outcome,
		Death:   s.death,
		Paused:  s.paused,
	}
}
