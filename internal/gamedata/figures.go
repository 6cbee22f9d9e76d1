package gamedata

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/hangman/internal/game"
)

// ErrInvalidFigures is returned when the figure table does not hold exactly
// one stage for every lives value.
var ErrInvalidFigures = errors.New("invalid hangman figures")

// Stage is one hangman drawing, shown while the player has Lives lives left.
type Stage struct {
	Lives int      `json:"lives"` // Lives value this stage is shown for (0-5)
	Color string   `json:"color"` // Hex color code used by the screen frontend
	Art   []string `json:"art"`   // Drawing, one entry per line
}

// TCellColor returns the stage color as a tcell.Color.
func (s Stage) TCellColor() tcell.Color {
	color, err := ParseHexColor(s.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// FiguresFile represents the structure of figures.json.
type FiguresFile struct {
	Stages []Stage `json:"stages"`
}

// Figures maps every lives value to its stage.
type Figures struct {
	stages [game.MaxLives + 1]Stage
}

// NewFigures builds a figure table. Every lives value from 0 to
// game.MaxLives must appear exactly once.
func NewFigures(stages []Stage) (*Figures, error) {
	f := &Figures{}
	seen := make(map[int]bool, len(stages))
	for _, s := range stages {
		if s.Lives < 0 || s.Lives > game.MaxLives {
			return nil, fmt.Errorf("%w: stage for %d lives", ErrInvalidFigures, s.Lives)
		}
		if seen[s.Lives] {
			return nil, fmt.Errorf("%w: duplicate stage for %d lives", ErrInvalidFigures, s.Lives)
		}
		if len(s.Art) == 0 {
			return nil, fmt.Errorf("%w: stage for %d lives has no art", ErrInvalidFigures, s.Lives)
		}
		seen[s.Lives] = true
		f.stages[s.Lives] = s
	}
	if len(seen) != len(f.stages) {
		return nil, fmt.Errorf("%w: got %d stages, want %d", ErrInvalidFigures, len(seen), len(f.stages))
	}
	return f, nil
}

// LoadFigures loads the figure table from the embedded figures.json.
func LoadFigures() (*Figures, error) {
	file, err := Load[FiguresFile]("figures.json")
	if err != nil {
		return nil, err
	}
	return NewFigures(file.Stages)
}

// MustLoadFigures loads the figure table, panicking on error.
func MustLoadFigures() *Figures {
	figures, err := LoadFigures()
	if err != nil {
		panic(err)
	}
	return figures
}

// Stage returns the drawing for the given lives.
func (f *Figures) Stage(lives game.Lives) Stage {
	return f.stages[lives.Int()]
}
