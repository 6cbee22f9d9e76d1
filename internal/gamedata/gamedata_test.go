package gamedata

import (
	"errors"
	"strings"
	"testing"

	"github.com/samdwyer/hangman/internal/game"
)

func TestLoadFigures(t *testing.T) {
	figures, err := LoadFigures()
	if err != nil {
		t.Fatalf("Failed to load figures: %v", err)
	}

	for n := 0; n <= game.MaxLives; n++ {
		lives, err := game.NewLives(n)
		if err != nil {
			t.Fatalf("NewLives(%d): %v", n, err)
		}
		stage := figures.Stage(lives)
		if stage.Lives != n {
			t.Errorf("Stage(%d).Lives = %d", n, stage.Lives)
		}
		if stage.TCellColor() == 0 {
			t.Errorf("Stage(%d) has zero color", n)
		}
	}
}

func TestFigureArt(t *testing.T) {
	figures := MustLoadFigures()

	lost := strings.Join(figures.Stage(game.Lives{}).Art, "\n")
	if !strings.Contains(lost, "XO") {
		t.Errorf("lost stage should show the hanged figure, got:\n%s", lost)
	}

	full := strings.Join(figures.Stage(game.FullLives()).Art, "\n")
	if strings.HasPrefix(full, " _________") {
		t.Errorf("full-lives stage should have no gallows beam, got:\n%s", full)
	}
	if !strings.Contains(full, `/|\`) {
		t.Errorf("full-lives stage missing body, got:\n%s", full)
	}
}

func TestNewFiguresValidation(t *testing.T) {
	art := []string{"|"}
	complete := func() []Stage {
		stages := make([]Stage, 0, game.MaxLives+1)
		for n := 0; n <= game.MaxLives; n++ {
			stages = append(stages, Stage{Lives: n, Art: art})
		}
		return stages
	}

	if _, err := NewFigures(complete()); err != nil {
		t.Fatalf("NewFigures(complete) error: %v", err)
	}

	tests := []struct {
		name   string
		stages []Stage
	}{
		{"missing", complete()[:game.MaxLives]},
		{"duplicate", append(complete()[:game.MaxLives], Stage{Lives: 0, Art: art})},
		{"out of range", append(complete(), Stage{Lives: 6, Art: art})},
		{"negative", append(complete(), Stage{Lives: -1, Art: art})},
		{"no art", append(complete()[1:], Stage{Lives: 0})},
		{"empty", nil},
	}

	for _, tt := range tests {
		if _, err := NewFigures(tt.stages); !errors.Is(err, ErrInvalidFigures) {
			t.Errorf("NewFigures(%s) error = %v, want ErrInvalidFigures", tt.name, err)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load[FiguresFile]("missing.json"); err == nil {
		t.Error("Load(missing.json) should fail")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#34C759", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}
