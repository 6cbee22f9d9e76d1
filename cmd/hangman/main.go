// Package main is the entry point for hangman.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/samdwyer/hangman/internal/config"
	"github.com/samdwyer/hangman/internal/game"
	"github.com/samdwyer/hangman/internal/gamedata"
	"github.com/samdwyer/hangman/internal/logging"
	"github.com/samdwyer/hangman/internal/telemetry"
	"github.com/samdwyer/hangman/internal/ui"
	"github.com/samdwyer/hangman/internal/wordlist"
)

// Exit codes.
const (
	exitOK       = 0
	exitFailure  = 1 // usage, I/O and configuration errors
	exitInternal = 2 // empty word list and internal-consistency errors
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run plays one game and returns the process exit code. It is the only place
// that decides how the process ends.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(stderr, "Some error occurred: %v\n", r)
			code = exitInternal
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Invalid configuration: %v\n", err)
		return exitFailure
	}

	path, err := config.ParseArgs(args, cfg)
	if err != nil {
		fmt.Fprintln(stderr, "Unknown arguments encountered. Expected at most 1 arg.")
		return exitFailure
	}

	mode, err := ui.ResolveMode(cfg.UI, terminalFds(stdin, stdout)...)
	if err != nil {
		fmt.Fprintf(stderr, "Invalid configuration: %v\n", err)
		return exitFailure
	}

	logger, err := logging.New(stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(stderr, "Invalid configuration: %v\n", err)
		return exitFailure
	}
	if mode == ui.ModeScreen {
		// stderr shares the terminal with the screen
		logger = zerolog.Nop()
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		logger.Warn().Err(err).Msg("telemetry setup failed, running without tracing")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Warn().Err(err).Msg("telemetry shutdown failed")
			}
		}()
	}
	if cfg.Telemetry.Enabled() {
		logger.Debug().Str("endpoint", cfg.Telemetry.Endpoint).Msg("exporting traces")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	word, err := wordlist.Random(path, rand.New(rand.NewSource(seed)))
	switch {
	case errors.Is(err, wordlist.ErrEmpty):
		fmt.Fprintf(stderr, "The Word list is empty: %s\n", path)
		return exitInternal
	case err != nil:
		fmt.Fprintln(stderr, "Cannot read file.")
		fmt.Fprintln(stderr, err)
		return exitFailure
	}
	logger.Debug().Str("word_list", path).Int64("seed", seed).Msg("secret word chosen")

	figures, err := gamedata.LoadFigures()
	if err != nil {
		fmt.Fprintf(stderr, "Some error occurred: %v\n", err)
		return exitInternal
	}

	g, err := game.New(word, game.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(stderr, "Some error occurred: %v\n", err)
		return exitInternal
	}

	switch mode {
	case ui.ModeScreen:
		err = playOnScreen(ctx, g, figures)
	default:
		_, err = g.Run(ctx, ui.NewTextPresenter(stdout, figures), ui.NewLineReader(stdin, stdout))
	}

	switch {
	case errors.Is(err, ui.ErrQuit):
		logger.Info().Int("turns", g.Turns()).Msg("player quit")
		return exitOK
	case err != nil:
		fmt.Fprintf(stderr, "Failed to read input: %v\n", err)
		return exitFailure
	}
	return exitOK
}

// playOnScreen runs the game on a full terminal screen.
func playOnScreen(ctx context.Context, g *game.Game, figures *gamedata.Figures) error {
	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("open screen: %w", err)
	}
	defer screen.Close()

	renderer := ui.NewRenderer(screen, figures)
	if _, err := g.Run(ctx, renderer, renderer); err != nil {
		return err
	}
	renderer.Pause(ctx)
	return nil
}

// terminalFds returns the descriptors of stdin and stdout when both are files.
func terminalFds(stdin io.Reader, stdout io.Writer) []uintptr {
	in, ok := stdin.(*os.File)
	if !ok {
		return nil
	}
	out, ok := stdout.(*os.File)
	if !ok {
		return nil
	}
	return []uintptr{in.Fd(), out.Fd()}
}
