package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/hangman/internal/game"
	"github.com/samdwyer/hangman/internal/gamedata"
)

// ErrQuit is returned by Renderer.ReadGuess when the player leaves the game.
var ErrQuit = errors.New("player quit")

const (
	continueText = "Press any key to exit."
	quitHint     = "(Esc to quit)"
)

// Renderer draws the game on a full terminal screen and reads guesses from it.
// It implements both game.Presenter and game.InputReader.
type Renderer struct {
	screen  *Screen
	figures *gamedata.Figures
	stage   tcell.Color
	row     int // first free row below the last presented snapshot
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, figures *gamedata.Figures) *Renderer {
	return &Renderer{screen: screen, figures: figures}
}

// Present draws a snapshot, replacing whatever was on screen.
func (r *Renderer) Present(s game.Snapshot) error {
	r.screen.Clear()
	r.stage = r.figures.Stage(s.Lives).TCellColor()

	lines := Layout(s, r.figures)
	for y, line := range lines {
		r.screen.DrawText(0, y, line.Text, r.lineStyle(line.Kind))
	}
	r.row = len(lines)

	r.screen.Show()
	return nil
}

// lineStyle returns the style for a line kind.
func (r *Renderer) lineStyle(kind LineKind) tcell.Style {
	switch kind {
	case LineTitle:
		return tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	case LineFigure:
		return tcell.StyleDefault.Foreground(r.stage)
	case LineStatus:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case LineWord:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	case LineWon:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	case LineLost:
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite)
	}
}

// ReadGuess collects key presses into a line until Enter is pressed with
// non-blank text. Esc and Ctrl-C return ErrQuit.
func (r *Renderer) ReadGuess(ctx context.Context) (string, error) {
	var buf []rune
	r.drawPrompt(buf)

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		switch ev := r.screen.PollEvent().(type) {
		case nil:
			return "", ErrQuit
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return "", ErrQuit
			case tcell.KeyEnter:
				text := strings.TrimSpace(string(buf))
				buf = buf[:0]
				if text != "" {
					return text, nil
				}
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(buf) > 0 {
					buf = buf[:len(buf)-1]
				}
			case tcell.KeyRune:
				buf = append(buf, ev.Rune())
			}
		case *tcell.EventResize:
			r.screen.Sync()
		}

		r.drawPrompt(buf)
	}
}

// drawPrompt shows the prompt and the line being typed below the snapshot.
func (r *Renderer) drawPrompt(buf []rune) {
	hint := tcell.StyleDefault.Foreground(tcell.ColorGray)
	r.screen.DrawText(0, r.row, promptText+" "+quitHint, hint)

	input := "> " + string(buf)
	r.screen.DrawText(0, r.row+1, input, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	r.screen.ShowCursor(len([]rune(input)), r.row+1)
	r.screen.Show()
}

// Pause keeps the final screen visible until a key is pressed.
func (r *Renderer) Pause(ctx context.Context) {
	r.screen.DrawText(0, r.row, continueText, tcell.StyleDefault.Foreground(tcell.ColorGray))
	r.screen.Show()

	for ctx.Err() == nil {
		switch r.screen.PollEvent().(type) {
		case nil, *tcell.EventKey:
			return
		case *tcell.EventResize:
			r.screen.Sync()
		}
	}
}
