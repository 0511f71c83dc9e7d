package core

import "sync/atomic"

// Direction is the way the snake is heading.
type Direction int32

const (
	DirNone Direction = iota // Not moving yet
	DirUp
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Horizontal reports whether the direction moves along a row.
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// DirectionSlot holds the current direction shared between an input source
// (the only writer) and the game loop (the only reader).
// Last write wins; the zero value holds DirNone.
type DirectionSlot struct {
	v atomic.Int32
}

// Store publishes a new direction.
func (s *DirectionSlot) Store(d Direction) {
	s.v.Store(int32(d))
}

// Load returns the most recently stored direction.
func (s *DirectionSlot) Load() Direction {
	return Direction(s.v.Load())
}
