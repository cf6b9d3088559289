package commands

import (
	"errors"
	"fmt"

	"github.com/0wafi0/ng-snake/session"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	snakeColor   = termbox.ColorGreen
	headColor    = termbox.ColorYellow
	foodColor    = termbox.ColorRed
	foodRune     = '*'

	boardLeft = 2
	boardTop  = 2
)

// render draws a frame, with an optional message under the board.
func render(frame session.Frame, message string) error {
	if frame.Width == 0 {
		return errors.New("received empty frame")
	}
	err := termbox.Clear(defaultColor, defaultColor)
	if err != nil {
		return err
	}

	bottom := boardTop + frame.Height + 1

	renderTitle(boardLeft, boardTop, frame)
	renderBoard(frame, boardTop, bottom, boardLeft)
	renderFood(boardLeft, boardTop, frame)
	renderSnake(boardLeft, boardTop, frame)
	if message != "" {
		tbprint(boardLeft-1, bottom+1, defaultColor, defaultColor, message)
	}

	return termbox.Flush()
}

// renderFrame is the observer used while a game is running.
func renderFrame(frame session.Frame) error {
	if frame.Paused {
		return render(frame, "Paused - space to resume")
	}
	return render(frame, "arrows/hjkl/wasd to turn, space to pause, esc to quit")
}

func renderSnake(left, top int, frame session.Frame) {
	for i := len(frame.Body) - 1; i >= 0; i-- {
		color := snakeColor
		if i == 0 {
			color = headColor
		}
		b := frame.Body[i]
		termbox.SetCell(left+b.X, top+b.Y+1, ' ', color, color)
	}
}

func renderFood(left, top int, frame session.Frame) {
	f := frame.Food
	termbox.SetCell(left+f.X, top+f.Y+1, foodRune, foodColor, bgColor)
}

func renderBoard(frame session.Frame, top, bottom, left int) {
	for i := top + 1; i < bottom; i++ {
		termbox.SetCell(left-1, i, '│', defaultColor, bgColor)
		termbox.SetCell(left+frame.Width, i, '│', defaultColor, bgColor)
	}

	termbox.SetCell(left-1, top, '┌', defaultColor, bgColor)
	termbox.SetCell(left-1, bottom, '└', defaultColor, bgColor)
	termbox.SetCell(left+frame.Width, top, '┐', defaultColor, bgColor)
	termbox.SetCell(left+frame.Width, bottom, '┘', defaultColor, bgColor)

	fill(left, top, frame.Width, 1, termbox.Cell{Ch: '─'})
	fill(left, bottom, frame.Width, 1, termbox.Cell{Ch: '─'})
}

func renderTitle(left, top int, frame session.Frame) {
	tbprint(left-1, top-1, defaultColor, defaultColor,
		fmt.Sprintf("Snake! - Turn %d - Length %d", frame.Turn, len(frame.Body)))
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
