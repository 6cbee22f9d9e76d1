// Package config loads runtime configuration from the environment and the
// command line.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/samdwyer/hangman/internal/telemetry"
)

// DefaultWordList is the word-list path used when none is configured.
const DefaultWordList = "input"

// ErrUsage is returned by ParseArgs when too many arguments are given.
var ErrUsage = errors.New("too many arguments: expected at most 1")

// Config holds game configuration options.
type Config struct {
	// WordList is the path used when no positional argument is given.
	WordList string `env:"HANGMAN_WORD_LIST" envDefault:"input"`

	// Seed for random word selection. 0 means a time-based seed.
	Seed int64 `env:"HANGMAN_SEED" envDefault:"0"`

	// UI selects the frontend: text, screen or auto.
	UI string `env:"HANGMAN_UI" envDefault:"text"`

	LogLevel  string `env:"HANGMAN_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"HANGMAN_LOG_FORMAT" envDefault:"console"`

	// Telemetry reads HANGMAN_OTLP_ENDPOINT and HANGMAN_OTLP_HEADERS.
	Telemetry telemetry.Options `envPrefix:"HANGMAN_OTLP_"`
}

// Load reads an optional .env file from the working directory and then
// parses the environment into a Config.
func Load(dotenvFiles ...string) (Config, error) {
	if err := godotenv.Load(dotenvFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse parses the environment into a Config without reading any .env file.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch strings.ToLower(c.UI) {
	case "text", "screen", "auto":
	default:
		return fmt.Errorf("invalid HANGMAN_UI %q: want text, screen or auto", c.UI)
	}
	switch strings.ToLower(c.LogFormat) {
	case "console", "json":
	default:
		return fmt.Errorf("invalid HANGMAN_LOG_FORMAT %q: want console or json", c.LogFormat)
	}
	return nil
}

// ParseArgs returns the word-list path from the positional arguments
// (program name excluded). At most one argument is accepted.
func ParseArgs(args []string, cfg Config) (string, error) {
	switch len(args) {
	case 0:
		if cfg.WordList == "" {
			return DefaultWordList, nil
		}
		return cfg.WordList, nil
	case 1:
		return args[0], nil
	default:
		return "", ErrUsage
	}
}
