package ui

import "github.com/gdamore/tcell/v2"

// Screen wraps tcell.Screen with a simplified interface.
type Screen struct {
	screen tcell.Screen
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newScreen(s)
}

// newScreen initializes an existing tcell screen, such as a simulation screen.
func newScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent waits for and returns the next terminal event.
// It returns nil once the screen is finalized.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// Sync forces a complete redraw of the screen.
func (s *Screen) Sync() {
	s.screen.Sync()
}

// DrawText writes text starting at (x, y) and clears the rest of the row.
func (s *Screen) DrawText(x, y int, text string, style tcell.Style) {
	width, _ := s.screen.Size()
	for _, r := range text {
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < width; x++ {
		s.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}

// ShowCursor places the cursor at (x, y).
func (s *Screen) ShowCursor(x, y int) {
	s.screen.ShowCursor(x, y)
}
