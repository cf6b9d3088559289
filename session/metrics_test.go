package session

import (
	"testing"

	"github.com/0wafi0/ng-snake/rules"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestInstrumentStepperCountsOutcomes(t *testing.T) {
	moved := testutil.ToFloat64(stepOutcomes.WithLabelValues(string(rules.OutcomeMoved)))
	dead := testutil.ToFloat64(stepOutcomes.WithLabelValues(string(rules.OutcomeDead)))
	ended := testutil.ToFloat64(sessionEvents.WithLabelValues(string(rules.OutcomeDead)))

	s := newSession(t)
	s.state = rules.FromBody(rules.InitialBody, rules.Right, rules.Point{X: 15, Y: 15})
	_, err := s.Tick()
	require.NoError(t, err)
	collide(s)
	_, err = s.Tick()
	require.NoError(t, err)

	require.Equal(t, moved+1, testutil.ToFloat64(stepOutcomes.WithLabelValues(string(rules.OutcomeMoved))))
	require.Equal(t, dead+1, testutil.ToFloat64(stepOutcomes.WithLabelValues(string(rules.OutcomeDead))))
	require.Equal(t, ended+1, testutil.ToFloat64(sessionEvents.WithLabelValues(string(rules.OutcomeDead))))
}
