package ui

import (
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/hangman/internal/game"
	"github.com/samdwyer/hangman/internal/gamedata"
)

func newSimRenderer(t *testing.T) (*Renderer, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := newScreen(sim)
	require.NoError(t, err)
	sim.SetSize(80, 30)
	t.Cleanup(screen.Close)
	return NewRenderer(screen, gamedata.MustLoadFigures()), sim
}

// screenRow returns the text on row y with trailing blanks removed.
func screenRow(sim tcell.SimulationScreen, y int) string {
	cells, width, _ := sim.GetContents()
	var b strings.Builder
	for x := 0; x < width; x++ {
		cell := cells[y*width+x]
		if len(cell.Runes) == 0 {
			b.WriteByte(' ')
			continue
		}
		b.WriteRune(cell.Runes[0])
	}
	return strings.TrimRight(b.String(), " ")
}

func TestRendererPresent(t *testing.T) {
	r, sim := newSimRenderer(t)
	g, err := game.New("cat")
	require.NoError(t, err)
	g.Guess("a")

	require.NoError(t, r.Present(g.Snapshot()))

	lines := Layout(g.Snapshot(), r.figures)
	for y, line := range lines {
		assert.Equal(t, strings.TrimRight(line.Text, " "), screenRow(sim, y), "row %d", y)
	}
	assert.Equal(t, "_ a _", screenRow(sim, len(lines)-1))
}

func TestRendererReadGuess(t *testing.T) {
	r, sim := newSimRenderer(t)
	g, err := game.New("cat")
	require.NoError(t, err)
	require.NoError(t, r.Present(g.Snapshot()))

	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	sim.InjectKey(tcell.KeyBackspace2, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'C', tcell.ModNone)
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	got, err := r.ReadGuess(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "C", got)
}

func TestRendererReadGuessQuit(t *testing.T) {
	r, sim := newSimRenderer(t)

	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	_, err := r.ReadGuess(context.Background())
	assert.ErrorIs(t, err, ErrQuit)
}

func TestRendererRunsGame(t *testing.T) {
	r, sim := newSimRenderer(t)
	g, err := game.New("ox")
	require.NoError(t, err)

	for _, c := range "oqx" {
		sim.InjectKey(tcell.KeyRune, c, tcell.ModNone)
		sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	}

	phase, err := g.Run(context.Background(), r, r)
	require.NoError(t, err)
	assert.Equal(t, game.PhaseWon, phase)
	assert.Equal(t, 4, g.Lives().Int())
	assert.Equal(t, "You Won!", screenRow(sim, r.row-1))
}
