package game

// Outcome is the classification of the most recent guess.
type Outcome int

const (
	// OutcomeNone means no guess has been made yet.
	OutcomeNone Outcome = iota
	// OutcomeRepeated means the letter was already revealed.
	OutcomeRepeated
	// OutcomeMultiple means the guess had more than one character.
	OutcomeMultiple
	// OutcomeCorrect means the letter is in the secret word.
	OutcomeCorrect
	// OutcomeWrong means the letter is not in the secret word; a life was lost.
	OutcomeWrong
)

// String returns the outcome name used in logs and spans.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeRepeated:
		return "repeated_character"
	case OutcomeMultiple:
		return "multiple_characters"
	case OutcomeCorrect:
		return "correct_character"
	case OutcomeWrong:
		return "wrong_character"
	default:
		return "unknown"
	}
}

// Message returns the status line shown to the player on the next render.
// OutcomeNone has an empty message.
func (o Outcome) Message() string {
	switch o {
	case OutcomeRepeated:
		return "You have already tried this letter previously."
	case OutcomeMultiple:
		return "Enter a single character at a time."
	case OutcomeCorrect:
		return "Yay! You got one."
	case OutcomeWrong:
		return "Uh Oh! You misguessed."
	default:
		return ""
	}
}
