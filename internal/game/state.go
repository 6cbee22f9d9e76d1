// Package game provides the hangman state machine: turn sequencing, guess
// classification and win/loss detection.
package game

// Phase represents the current phase of a game.
type Phase int

const (
	// PhasePlaying is the initial phase; the player still has guesses to make.
	PhasePlaying Phase = iota
	// PhaseWon means every non-whitespace character of the secret word was revealed.
	PhaseWon
	// PhaseLost means the player ran out of lives.
	PhaseLost
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the game is over.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}
