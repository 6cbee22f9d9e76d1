// Package wordlist loads candidate secret words and picks one at random.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// maxLineSize bounds a single word-list line.
const maxLineSize = 1024 * 1024

// ErrEmpty is returned when a word list has no non-blank lines.
var ErrEmpty = errors.New("the word list is empty")

// Load reads the word list at path. The file is closed before Load returns.
// Blank and whitespace-only lines are dropped; the remaining lines are
// returned as they appear in the file.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	words, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}

// Parse reads one candidate per line from r, dropping blank lines.
func Parse(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	return words, nil
}

// Pick returns a uniformly random entry of words, trimmed and lowercased.
func Pick(words []string, rng *rand.Rand) (string, error) {
	if len(words) == 0 {
		return "", ErrEmpty
	}
	word := words[rng.Intn(len(words))]
	return Normalize(word), nil
}

// Normalize trims surrounding whitespace and lowercases s.
func Normalize(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}

// Random loads the word list at path and picks one word from it.
func Random(path string, rng *rand.Rand) (string, error) {
	words, err := Load(path)
	if err != nil {
		return "", err
	}
	return Pick(words, rng)
}
