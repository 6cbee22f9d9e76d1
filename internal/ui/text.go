package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/samdwyer/hangman/internal/game"
	"github.com/samdwyer/hangman/internal/gamedata"
)

// TextPresenter writes snapshots as plain text.
type TextPresenter struct {
	w       io.Writer
	figures *gamedata.Figures
}

// NewTextPresenter creates a presenter writing to w.
func NewTextPresenter(w io.Writer, figures *gamedata.Figures) *TextPresenter {
	return &TextPresenter{w: w, figures: figures}
}

// Present writes one rendered turn.
func (p *TextPresenter) Present(s game.Snapshot) error {
	var b strings.Builder
	for _, line := range Layout(s, p.figures) {
		b.WriteString(line.Text)
		b.WriteByte('\n')
	}
	if _, err := io.WriteString(p.w, b.String()); err != nil {
		return fmt.Errorf("write turn: %w", err)
	}
	return nil
}

// LineReader reads guesses one line at a time. Lines have no length limit.
type LineReader struct {
	rd  *bufio.Reader
	out io.Writer
}

// NewLineReader creates a reader that prompts on out and reads from in.
func NewLineReader(in io.Reader, out io.Writer) *LineReader {
	return &LineReader{rd: bufio.NewReader(in), out: out}
}

// ReadGuess prompts once and returns the first non-blank line, trimmed.
// Blank lines are skipped without prompting again. A final line without a
// trailing newline still counts.
func (r *LineReader) ReadGuess(ctx context.Context) (string, error) {
	if _, err := fmt.Fprintln(r.out, promptText); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}
	for {
		line, err := r.rd.ReadString('\n')
		if text := strings.TrimSpace(line); text != "" {
			return text, nil
		}
		switch {
		case errors.Is(err, io.EOF):
			return "", io.ErrUnexpectedEOF
		case err != nil:
			return "", fmt.Errorf("read input: %w", err)
		}
		if err := ctx.Err(); err != nil {
			return "", err
		}
	}
}
