// Package core provides fundamental types shared by the game engine and its
// frontends. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

import "fmt"

// Cell is a single grid coordinate. Rows grow downwards, columns to the right,
// both 0-indexed.
type Cell struct {
	Row, Col int
}

// Add returns the cell offset by o.
func (c Cell) Add(o Cell) Cell {
	return Cell{Row: c.Row + o.Row, Col: c.Col + o.Col}
}

// In reports whether the cell lies inside a rows x cols grid.
func (c Cell) In(rows, cols int) bool {
	return c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols
}

// String returns the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
