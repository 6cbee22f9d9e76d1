package game

import (
	"errors"
	"fmt"
)

// MaxLives is the number of lives a new game starts with.
const MaxLives = 5

// ErrLivesOutOfRange is returned by NewLives for values outside 0..MaxLives.
var ErrLivesOutOfRange = errors.New("lives out of range")

// Lives is a remaining-lives counter that can only hold values in 0..MaxLives.
// The zero value is an exhausted counter.
type Lives struct {
	n uint8
}

// FullLives returns a counter at MaxLives.
func FullLives() Lives {
	return Lives{n: MaxLives}
}

// NewLives returns a counter holding n.
func NewLives(n int) (Lives, error) {
	if n < 0 || n > MaxLives {
		return Lives{}, fmt.Errorf("%w: %d", ErrLivesOutOfRange, n)
	}
	return Lives{n: uint8(n)}, nil
}

// Int returns the number of lives left.
func (l Lives) Int() int {
	return int(l.n)
}

// Exhausted reports whether no lives are left.
func (l Lives) Exhausted() bool {
	return l.n == 0
}

// Lose returns the counter with one life removed. It saturates at zero.
func (l Lives) Lose() Lives {
	if l.n == 0 {
		return l
	}
	return Lives{n: l.n - 1}
}

// String implements fmt.Stringer.
func (l Lives) String() string {
	return fmt.Sprintf("%d", l.n)
}
