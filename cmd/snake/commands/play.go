package commands

import (
	"context"
	"fmt"
	"io/ioutil"

	"github.com/0wafi0/ng-snake/rules"
	"github.com/0wafi0/ng-snake/session"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var errQuit = errors.New("quit")

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "plays snake in the terminal",
	RunE: func(*cobra.Command, []string) error {
		return play()
	},
}

type runResult struct {
	frame session.Frame
	err   error
}

func play() error {
	s, err := session.New(cfg)
	if err != nil {
		return err
	}
	serveMetrics(metricsAddr)

	// termbox owns the terminal, logs only go to a file.
	if logFile == "" {
		log.SetOutput(ioutil.Discard)
	}

	if err = termbox.Init(); err != nil {
		return errors.Wrap(err, "unable to initialise terminal")
	}
	defer termbox.Close()

	eventQueue := setupEventQueue()
	for {
		final, err := runGame(context.Background(), s, eventQueue, renderFrame)
		if errors.Cause(err) == errQuit {
			return nil
		}
		if err != nil {
			return err
		}

		restart, err := gameOver(s, final, eventQueue)
		if err != nil {
			return err
		}
		if !restart {
			return nil
		}
		if err := s.Restart(); err != nil {
			return err
		}
	}
}

// runGame ticks the session in the background while keyboard input is fed to
// it. It returns the final frame once the game ends. termbox is not safe for
// concurrent use: draw runs on the calling goroutine for the first frame and
// on the runner goroutine after that, never on both at once.
func runGame(ctx context.Context, s *session.Session, eventQueue <-chan termbox.Event, draw func(session.Frame) error) (session.Frame, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := draw(s.Frame()); err != nil {
		return session.Frame{}, err
	}

	r := &session.Runner{
		Session:  s,
		Limiter:  cfg.Limiter(),
		Observer: session.ObserverFunc(draw),
	}
	done := make(chan runResult, 1)
	go func() {
		f, err := r.Run(ctx)
		done <- runResult{frame: f, err: err}
	}()

	for {
		select {
		case res := <-done:
			return res.frame, res.err
		case ev := <-eventQueue:
			switch ev.Type {
			case termbox.EventError:
				cancel()
				<-done
				return session.Frame{}, errors.Wrap(ev.Err, "terminal input failed")
			case termbox.EventKey:
			default:
				continue
			}

			switch {
			case ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC:
				cancel()
				res := <-done
				return res.frame, errQuit
			case ev.Key == termbox.KeySpace:
				s.TogglePause()
			default:
				if code, ok := keyCode(ev); ok {
					s.Key(code)
				}
			}
		}
	}
}

// gameOver shows the final frame until the player restarts (true), quits
// (false) or asks for a replay of the game that just ended.
func gameOver(s *session.Session, final session.Frame, eventQueue <-chan termbox.Event) (bool, error) {
	for {
		if err := render(final, gameOverMessage(final)); err != nil {
			return false, err
		}
		ev := <-eventQueue
		if ev.Type == termbox.EventError {
			return false, errors.Wrap(ev.Err, "terminal input failed")
		}
		if ev.Type != termbox.EventKey {
			continue
		}
		switch {
		case ev.Key == termbox.KeyEnter:
			return true, nil
		case ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC || ev.Ch == 'q':
			return false, nil
		case ev.Ch == 'r':
			if err := replayGame(s.History, eventQueue); err != nil {
				return false, err
			}
		}
	}
}

func gameOverMessage(f session.Frame) string {
	result := "Game over!"
	if f.Outcome == rules.OutcomeBoardFull {
		result = "Board full, you win!"
	}
	return fmt.Sprintf("%s Length %d. enter: restart, r: replay, esc: quit", result, len(f.Body))
}

// keyCode translates terminal keys into the arrow key codes understood by
// the session.
func keyCode(ev termbox.Event) (int, bool) {
	switch ev.Key {
	case termbox.KeyArrowUp:
		return rules.KeyUp, true
	case termbox.KeyArrowDown:
		return rules.KeyDown, true
	case termbox.KeyArrowLeft:
		return rules.KeyLeft, true
	case termbox.KeyArrowRight:
		return rules.KeyRight, true
	}
	switch ev.Ch {
	case 'k', 'w':
		return rules.KeyUp, true
	case 'j', 's':
		return rules.KeyDown, true
	case 'h', 'a':
		return rules.KeyLeft, true
	case 'l', 'd':
		return rules.KeyRight, true
	}
	return 0, false
}

func setupEventQueue() <-chan termbox.Event {
	eventQueue := make(chan termbox.Event)
	go func(ev chan<- termbox.Event) {
		for {
			ev <- termbox.PollEvent()
		}
	}(eventQueue)
	return eventQueue
}
