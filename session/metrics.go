package session

import (
	"time"

	"github.com/0wafi0/ng-snake/rules"
	"github.com/prometheus/client_golang/prometheus"
)

// Stepper advances a game state by one tick. *rules.Engine satisfies it.
type Stepper interface {
	Step(*rules.State) rules.Result
}

// InstrumentStepper wraps a stepper to time every step and count outcomes.
func InstrumentStepper(s Stepper) Stepper { return &metrics{s} }

var (
	stepDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "snake",
			Subsystem: "engine",
			Name:      "step_seconds",
			Help:      "Time spent advancing the game by one tick.",
			Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 10),
		},
	)
	stepOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "engine",
			Name:      "steps_total",
			Help:      "Steps processed by the engine, by outcome.",
		},
		[]string{"outcome"},
	)
	sessionEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "session",
			Name:      "events_total",
			Help:      "Session lifecycle events.",
		},
		[]string{"event"},
	)
)

func instrument() func() time.Duration {
	t := prometheus.NewTimer(stepDuration)
	return t.ObserveDuration
}

func init() {
	prometheus.MustRegister(stepDuration, stepOutcomes, sessionEvents)
}

type metrics struct{ s Stepper }

func (m *metrics) Step(s *rules.State) rules.Result {
	defer instrument()()
	res := m.s.Step(s)
	stepOutcomes.WithLabelValues(string(res.Outcome)).Inc()
	return res
}
