package commands

import (
	"time"

	"github.com/0wafi0/ng-snake/session"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
)

const replayInterval = 100 * time.Millisecond

func moveFrameForwards(frameIndex int, frames *session.History) (int, session.Frame, bool) {
	frameIndex++
	if frameIndex >= frames.Count() {
		frameIndex = frames.Count() - 1
		f, _ := frames.Get(frameIndex)
		return frameIndex, f, true
	}
	f, _ := frames.Get(frameIndex)
	return frameIndex, f, false
}

func moveFrameBackwards(frameIndex int, frames *session.History) (int, session.Frame) {
	frameIndex--
	if frameIndex <= 0 {
		frameIndex = 0
	}
	f, _ := frames.Get(frameIndex)
	return frameIndex, f
}

// replayGame plays back the frames of the last game. Space pauses, the left
// and right arrows step through frames and esc returns to the caller.
func replayGame(frames *session.History, eventQueue <-chan termbox.Event) error {
	currentFrame, ok := frames.Get(0)
	if !ok {
		return errors.New("no frames to replay")
	}

	cycle := time.NewTicker(replayInterval)
	defer func() { cycle.Stop() }()
	frameIndex := 0
	paused := false
	done := false

	show := func() error {
		msg := "Replay - space: pause, left/right: step, esc: back"
		if done {
			msg = "Replay finished - left: step back, esc: back"
		}
		return render(currentFrame, msg)
	}
	if err := show(); err != nil {
		return err
	}

	for {
		select {
		case ev := <-eventQueue:
			if ev.Type == termbox.EventError {
				return errors.Wrap(ev.Err, "terminal input failed")
			}
			if ev.Type != termbox.EventKey {
				continue
			}
			switch ev.Key {
			case termbox.KeyEsc, termbox.KeyCtrlC:
				return nil
			case termbox.KeySpace:
				paused = !paused
			case termbox.KeyArrowLeft:
				paused = true
				done = false
				frameIndex, currentFrame = moveFrameBackwards(frameIndex, frames)
			case termbox.KeyArrowRight:
				paused = true
				frameIndex, currentFrame, done = moveFrameForwards(frameIndex, frames)
			default:
				continue
			}
			if err := show(); err != nil {
				return err
			}
		case <-cycle.C:
			if paused || done {
				continue
			}
			frameIndex, currentFrame, done = moveFrameForwards(frameIndex, frames)
			if err := show(); err != nil {
				return err
			}
		}
	}
}
