package commands

import (
	"context"
	"time"

	"github.com/0wafi0/ng-snake/rules"
	"github.com/0wafi0/ng-snake/session"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	games    int
	maxTurns int64
	dump     bool
	realtime bool
)

var errTurnLimit = errors.New("turn limit reached")

func init() {
	simulateCmd.Flags().IntVarP(&games, "games", "n", 10, "number of games to simulate")
	simulateCmd.Flags().Int64Var(&maxTurns, "max-turns", 10000, "stop a game after this many turns")
	simulateCmd.Flags().BoolVar(&dump, "dump", false, "dump the final frame of every game")
	simulateCmd.Flags().BoolVar(&realtime, "realtime", false, "tick at the configured interval instead of as fast as possible")
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "plays games with a simple autopilot and reports the results",
	RunE: func(*cobra.Command, []string) error {
		serveMetrics(metricsAddr)

		start := time.Now()
		var won, totalLength, bestLength int
		for i := 0; i < games; i++ {
			f, err := simulateGame(context.Background(), i)
			if err != nil {
				return err
			}
			if f.Outcome == rules.OutcomeBoardFull {
				won++
			}
			totalLength += len(f.Body)
			if len(f.Body) > bestLength {
				bestLength = len(f.Body)
			}
		}

		fields := log.Fields{
			"elapsed":    time.Since(start),
			"games":      games,
			"won":        won,
			"bestLength": bestLength,
		}
		if games > 0 {
			fields["avgLength"] = float64(totalLength) / float64(games)
		}
		log.WithFields(fields).Info("All games complete")
		return nil
	},
}

// simulateGame plays one game to the end, or until the turn limit, and
// returns its last frame.
func simulateGame(ctx context.Context, n int) (session.Frame, error) {
	gameCfg := cfg
	if gameCfg.Seed != 0 {
		gameCfg.Seed += int64(n)
	}
	s, err := session.New(gameCfg)
	if err != nil {
		return session.Frame{}, err
	}

	r := &session.Runner{
		Session:  s,
		Observer: session.ObserverFunc(steer(s, maxTurns)),
	}
	if realtime {
		r.Limiter = gameCfg.Limiter()
	}

	s.Turn(autopilot(s.Frame()))
	f, err := r.Run(ctx)
	if err != nil && errors.Cause(err) != errTurnLimit {
		return f, errors.Wrapf(err, "game %d failed", n)
	}

	entry := log.WithFields(log.Fields{
		"id":      f.ID,
		"turn":    f.Turn,
		"length":  len(f.Body),
		"outcome": f.Outcome,
	})
	if err != nil {
		entry = entry.WithField("stopped", err.Error())
	}
	entry.Info("Game Status")
	if dump {
		spew.Dump(f)
	}
	return f, nil
}

// steer returns an observer that turns the snake after every tick and stops
// the game once limit turns have been played. A limit of zero or less means
// no limit.
func steer(s *session.Session, limit int64) func(session.Frame) error {
	return func(f session.Frame) error {
		if f.Over() {
			return nil
		}
		if limit > 0 && f.Turn >= limit {
			return errTurnLimit
		}
		s.Turn(autopilot(f))
		return nil
	}
}
