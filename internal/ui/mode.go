package ui

import (
	"fmt"
	"strings"

	"golang.org/x/term"
)

// Mode selects a frontend.
type Mode string

const (
	ModeText   Mode = "text"
	ModeScreen Mode = "screen"
	ModeAuto   Mode = "auto"
)

// ResolveMode turns a configured mode into ModeText or ModeScreen.
// ModeAuto picks the screen frontend only when every fd is a terminal.
func ResolveMode(requested string, fds ...uintptr) (Mode, error) {
	switch Mode(strings.ToLower(requested)) {
	case ModeText, "":
		return ModeText, nil
	case ModeScreen:
		return ModeScreen, nil
	case ModeAuto:
		for _, fd := range fds {
			if !term.IsTerminal(int(fd)) {
				return ModeText, nil
			}
		}
		if len(fds) == 0 {
			return ModeText, nil
		}
		return ModeScreen, nil
	default:
		return "", fmt.Errorf("unknown ui mode %q", requested)
	}
}
