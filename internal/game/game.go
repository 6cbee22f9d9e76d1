package game

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/samdwyer/hangman/internal/telemetry"
)

// Blank is the placeholder shown for characters that are not revealed yet.
const Blank = '_'

// ErrEmptySecret is returned by New when the secret word has no characters.
var ErrEmptySecret = errors.New("secret word is empty")

// Presenter renders a snapshot of the game.
type Presenter interface {
	Present(Snapshot) error
}

// InputReader blocks until the player enters a non-blank line and returns it trimmed.
type InputReader interface {
	ReadGuess(ctx context.Context) (string, error)
}

// Snapshot is an immutable view of the game handed to a Presenter.
type Snapshot struct {
	Phase        Phase
	Lives        Lives
	LettersTried []rune
	LastOutcome  Outcome
	Masked       []rune
	// SecretWord is only set once the game is lost.
	SecretWord string
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for per-guess debug events.
func WithLogger(logger zerolog.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// Game holds the state of a single hangman game.
type Game struct {
	secret string
	folded []rune // case-folded runes of secret, index-aligned
	lives  Lives
	tried  []rune // case-folded
	last   Outcome
	phase  Phase
	turns  int
	over   bool // the terminal snapshot has been presented

	lower  cases.Caser
	fold   cases.Caser
	logger zerolog.Logger
}

// New creates a game for the given secret word with MaxLives lives.
// The word is lowercased for display. Guesses and the word are compared
// case-folded, so an uppercase guess matches its lowercase letter.
func New(secret string, opts ...Option) (*Game, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrEmptySecret
	}

	g := &Game{
		lives:  FullLives(),
		phase:  PhasePlaying,
		lower:  cases.Lower(language.Und),
		fold:   cases.Fold(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.secret = g.lower.String(secret)
	for _, r := range g.secret {
		g.folded = append(g.folded, g.foldRune(r))
	}
	return g, nil
}

// Phase returns the phase reached by the last applied guess.
func (g *Game) Phase() Phase { return g.phase }

// Lives returns the remaining lives.
func (g *Game) Lives() Lives { return g.lives }

// LastOutcome returns the classification of the most recent guess.
func (g *Game) LastOutcome() Outcome { return g.last }

// SecretWord returns the word being guessed.
func (g *Game) SecretWord() string { return g.secret }

// Turns returns the number of turns played so far.
func (g *Game) Turns() int { return g.turns }

// LettersTried returns a copy of the correctly guessed letters in guess
// order, case-folded.
func (g *Game) LettersTried() []rune {
	return slices.Clone(g.tried)
}

// Masked returns the secret word with every character that is neither
// whitespace nor already guessed replaced by Blank.
func (g *Game) Masked() []rune {
	masked := make([]rune, 0, len(g.folded))
	for i, r := range []rune(g.secret) {
		if unicode.IsSpace(r) || slices.Contains(g.tried, g.folded[i]) {
			masked = append(masked, r)
		} else {
			masked = append(masked, Blank)
		}
	}
	return masked
}

// revealed reports whether every non-whitespace character has been guessed.
func (g *Game) revealed() bool {
	for i, r := range []rune(g.secret) {
		if !unicode.IsSpace(r) && !slices.Contains(g.tried, g.folded[i]) {
			return false
		}
	}
	return true
}

// evaluate is the single win/loss check. Loss is checked first.
func (g *Game) evaluate() Phase {
	if g.lives.Exhausted() {
		return PhaseLost
	}
	if g.revealed() {
		return PhaseWon
	}
	return PhasePlaying
}

// Snapshot returns the current state for rendering. It does not modify the game.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Phase:        g.evaluate(),
		Lives:        g.lives,
		LettersTried: g.LettersTried(),
		LastOutcome:  g.last,
		Masked:       g.Masked(),
	}
	if s.Phase == PhaseLost {
		s.SecretWord = g.secret
	}
	return s
}

// Guess classifies a guess and applies it to the game.
// A blank guess, or any guess once the game is won or lost, is ignored and
// reports OutcomeNone.
func (g *Game) Guess(text string) Outcome {
	text = strings.TrimSpace(text)
	if text == "" || g.evaluate().Terminal() {
		return OutcomeNone
	}
	if utf8.RuneCountInString(text) > 1 {
		g.last = OutcomeMultiple
		return g.last
	}

	r, _ := utf8.DecodeRuneInString(text)
	c := g.foldRune(r)
	switch {
	case slices.Contains(g.tried, c):
		g.last = OutcomeRepeated
	case slices.Contains(g.folded, c):
		g.tried = append(g.tried, c)
		g.last = OutcomeCorrect
	default:
		g.lives = g.lives.Lose()
		g.last = OutcomeWrong
	}
	g.phase = g.evaluate()
	return g.last
}

// foldRune case-folds a single character. Characters that fold into several
// runes, such as 'ß', are kept as they are.
func (g *Game) foldRune(r rune) rune {
	folded := []rune(g.fold.String(string(r)))
	if len(folded) == 1 {
		return folded[0]
	}
	return r
}

// Turn runs one iteration: render, check for a terminal phase and, while
// still playing, read and apply one guess.
func (g *Game) Turn(ctx context.Context, p Presenter, in InputReader) (Phase, error) {
	if g.over {
		return g.phase, nil
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.turn")
	defer span.End()

	g.turns++
	snap := g.Snapshot()
	span.SetAttributes(
		attribute.Int("turn", g.turns),
		attribute.Int("lives", snap.Lives.Int()),
		attribute.Int("letters_tried", len(snap.LettersTried)),
		attribute.String("phase", snap.Phase.String()),
	)

	if err := p.Present(snap); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "present failed")
		return g.phase, fmt.Errorf("present turn %d: %w", g.turns, err)
	}

	if snap.Phase.Terminal() {
		g.phase = snap.Phase
		g.over = true
		g.logger.Info().
			Str("phase", g.phase.String()).
			Int("turns", g.turns).
			Int("lives", g.lives.Int()).
			Msg("game over")
		return g.phase, nil
	}

	text, err := in.ReadGuess(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read guess failed")
		return g.phase, fmt.Errorf("read guess on turn %d: %w", g.turns, err)
	}

	outcome := g.Guess(text)
	span.SetAttributes(attribute.String("outcome", outcome.String()))
	g.logger.Debug().
		Int("turn", g.turns).
		Str("guess", text).
		Str("outcome", outcome.String()).
		Int("lives", g.lives.Int()).
		Msg("guess classified")

	return g.phase, nil
}

// Run plays turns until the game is won or lost.
func (g *Game) Run(ctx context.Context, p Presenter, in InputReader) (Phase, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.run")
	defer span.End()
	span.SetAttributes(attribute.Int("secret.length", utf8.RuneCountInString(g.secret)))

	for !g.over {
		if err := ctx.Err(); err != nil {
			return g.phase, err
		}
		if _, err := g.Turn(ctx, p, in); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "turn failed")
			return g.phase, err
		}
	}

	span.SetAttributes(
		attribute.String("phase", g.phase.String()),
		attribute.Int("turns", g.turns),
		attribute.Int("lives", g.lives.Int()),
	)
	return g.phase, nil
}
