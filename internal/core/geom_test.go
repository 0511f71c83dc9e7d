package core

import "testing"

func TestCellAdd(t *testing.T) {
	tests := []struct {
		name     string
		c, o     Cell
		expected Cell
	}{
		{
			name:     "zero offset",
			c:        Cell{Row: 5, Col: 5},
			o:        Cell{},
			expected: Cell{Row: 5, Col: 5},
		},
		{
			name:     "step right",
			c:        Cell{Row: 5, Col: 5},
			o:        Cell{Row: 0, Col: 1},
			expected: Cell{Row: 5, Col: 6},
		},
		{
			name:     "step up past the edge",
			c:        Cell{Row: 0, Col: 3},
			o:        Cell{Row: -1, Col: 0},
			expected: Cell{Row: -1, Col: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Add(tt.o); got != tt.expected {
				t.Errorf("%v.Add(%v) = %v, expected %v", tt.c, tt.o, got, tt.expected)
			}
		})
	}
}

func TestCellIn(t *testing.T) {
	tests := []struct {
		c        Cell
		expected bool
	}{
		{Cell{Row: 0, Col: 0}, true},
		{Cell{Row: 24, Col: 49}, true},
		{Cell{Row: 25, Col: 0}, false},
		{Cell{Row: 0, Col: 50}, false},
		{Cell{Row: -1, Col: 0}, false},
		{Cell{Row: 0, Col: -1}, false},
	}

	for _, tt := range tests {
		if got := tt.c.In(25, 50); got != tt.expected {
			t.Errorf("%v.In(25, 50) = %v, expected %v", tt.c, got, tt.expected)
		}
	}
}

func TestDirectionString(t *testing.T) {
	tests := map[Direction]string{
		DirNone:       "none",
		DirUp:         "up",
		DirDown:       "down",
		DirLeft:       "left",
		DirRight:      "right",
		Direction(42): "unknown",
	}
	for d, expected := range tests {
		if d.String() != expected {
			t.Errorf("Direction(%d).String() = %q, expected %q", d, d.String(), expected)
		}
	}
}

func TestDirectionHorizontal(t *testing.T) {
	if !DirLeft.Horizontal() || !DirRight.Horizontal() {
		t.Error("Left and Right should be horizontal")
	}
	if DirUp.Horizontal() || DirDown.Horizontal() || DirNone.Horizontal() {
		t.Error("Up, Down and None should not be horizontal")
	}
}

func TestDirectionSlot(t *testing.T) {
	var s DirectionSlot
	if s.Load() != DirNone {
		t.Fatalf("zero slot = %v, expected none", s.Load())
	}

	s.Store(DirUp)
	s.Store(DirLeft)
	if s.Load() != DirLeft {
		t.Errorf("Load() = %v, expected last write left", s.Load())
	}
}

func TestDirectionSlotConcurrent(t *testing.T) {
	var s DirectionSlot
	done := make(chan struct{})

	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			s.Store(Direction(1 + i%4))
		}
		s.Store(DirDown)
	}()

	for i := 0; i < 1000; i++ {
		if d := s.Load(); d < DirNone || d > DirRight {
			t.Fatalf("torn read: %d", d)
		}
	}
	<-done

	if s.Load() != DirDown {
		t.Errorf("Load() = %v, expected down", s.Load())
	}
}

func TestResolvedSeed(t *testing.T) {
	if got := (RuntimeConfig{Seed: 7}).ResolvedSeed(); got != 7 {
		t.Errorf("ResolvedSeed() = %d, expected 7", got)
	}
	if got := (RuntimeConfig{}).ResolvedSeed(); got == 0 {
		t.Error("ResolvedSeed() with no seed should derive one from the clock")
	}
}
