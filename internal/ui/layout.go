// Package ui renders game snapshots and reads guesses, either as plain text
// on a console or full-screen through tcell.
package ui

import (
	"strconv"
	"strings"

	"github.com/samdwyer/hangman/internal/game"
	"github.com/samdwyer/hangman/internal/gamedata"
)

const (
	titleText   = "HANGMAN: Guess the Word!!"
	promptText  = "Enter your guess:"
	wonText     = "You Won!"
	lostText    = "You Lost!"
	wordWasText = "The word was: "
)

// LineKind tells a frontend how to style a line.
type LineKind int

const (
	LineTitle LineKind = iota
	LineLives
	LineTried
	LineFigure
	LineStatus
	LineWord
	LineWon
	LineLost
)

// Line is one line of rendered output.
type Line struct {
	Kind LineKind
	Text string
}

// Layout returns the lines for a snapshot in display order: title, lives,
// tried letters, figure, status message, then the masked word followed by
// the win banner, or the loss banner and the revealed word.
func Layout(s game.Snapshot, figures *gamedata.Figures) []Line {
	lines := []Line{
		{LineTitle, titleText},
		{LineLives, "Lives: " + strconv.Itoa(s.Lives.Int())},
		{LineTried, "Tried Letters: " + spaced(s.LettersTried)},
	}
	for _, art := range figures.Stage(s.Lives).Art {
		lines = append(lines, Line{LineFigure, art})
	}
	lines = append(lines, Line{LineStatus, s.LastOutcome.Message()})

	switch s.Phase {
	case game.PhaseLost:
		lines = append(lines,
			Line{LineLost, lostText},
			Line{LineLost, wordWasText + s.SecretWord},
		)
	case game.PhaseWon:
		lines = append(lines,
			Line{LineWord, spaced(s.Masked)},
			Line{LineWon, wonText},
		)
	default:
		lines = append(lines, Line{LineWord, spaced(s.Masked)})
	}
	return lines
}

// spaced writes every rune followed by a space.
func spaced(runes []rune) string {
	var b strings.Builder
	for _, r := range runes {
		b.WriteRune(r)
		b.WriteByte(' ')
	}
	return b.String()
}
