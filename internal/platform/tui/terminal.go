package tui

import (
	"errors"
	"fmt"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Minimum terminal size: the grid plus the status and help lines.
const (
	MinWidth  = snake.Cols
	MinHeight = snake.Rows + 2
)

// ErrNotTerminal is returned when the interactive frontend has no terminal.
var ErrNotTerminal = errors.New("tui: output is not a terminal")

// CheckTerminal verifies that fd is a terminal large enough for the grid.
func CheckTerminal(fd int) error {
	if !term.IsTerminal(fd) {
		return ErrNotTerminal
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("tui: cannot read terminal size: %w", err)
	}
	return checkSize(w, h)
}

func checkSize(w, h int) error {
	if w < MinWidth || h < MinHeight {
		return fmt.Errorf("tui: terminal is %dx%d, need at least %dx%d", w, h, MinWidth, MinHeight)
	}
	return nil
}
