package ui

import (
	"os"
	"testing"
)

// osPipe returns the descriptors of a fresh pipe, closed at test cleanup.
func osPipe(t *testing.T) (uintptr, uintptr, error) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		return 0, 0, err
	}
	t.Cleanup(func() {
		r.Close()
		w.Close()
	})
	return r.Fd(), w.Fd(), nil
}
