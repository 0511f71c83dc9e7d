package core

import (
	"strings"
)

// Screen is a 2D character buffer addressed by Cell.
// It decouples game rendering from the terminal: the game draws runes,
// the frontend decides how they reach the user.
type Screen struct {
	rows  int
	cols  int
	cells [][]rune
}

// NewScreen creates a rows x cols buffer filled with spaces.
func NewScreen(rows, cols int) *Screen {
	s := &Screen{
		rows: rows,
		cols: cols,
	}
	s.cells = make([][]rune, rows)
	for r := range s.cells {
		s.cells[r] = make([]rune, cols)
	}
	s.Fill(' ')
	return s
}

// Rows returns the number of rows.
func (s *Screen) Rows() int {
	return s.rows
}

// Cols returns the number of columns.
func (s *Screen) Cols() int {
	return s.cols
}

// Fill sets every cell to r.
func (s *Screen) Fill(r rune) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = r
		}
	}
}

// Set places a rune at the given cell.
// Out-of-bounds cells are silently ignored.
func (s *Screen) Set(c Cell, r rune) {
	if !c.In(s.rows, s.cols) {
		return
	}
	s.cells[c.Row][c.Col] = r
}

// At returns the rune at the given cell, or a space when out of bounds.
func (s *Screen) At(c Cell) rune {
	if !c.In(s.rows, s.cols) {
		return ' '
	}
	return s.cells[c.Row][c.Col]
}

// DrawTextCentered writes text horizontally centered on the given row,
// clipping whatever falls outside the buffer.
func (s *Screen) DrawTextCentered(row int, text string) {
	runes := []rune(text)
	start := (s.cols - len(runes)) / 2
	for i, r := range runes {
		s.Set(Cell{Row: row, Col: start + i}, r)
	}
}

// Row returns a copy of the given row as a string.
func (s *Screen) Row(row int) string {
	if row < 0 || row >= s.rows {
		return strings.Repeat(" ", s.cols)
	}
	return string(s.cells[row])
}

// String joins all rows with newlines, without a trailing newline.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.rows*s.cols + s.rows)

	for y := 0; y < s.rows; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(string(s.cells[y]))
	}
	return sb.String()
}
