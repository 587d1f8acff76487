package core

import (
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Errorf("New screen should be filled with spaces, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetCellBounds(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		{"left", -1, 0},
		{"right", 10, 0},
		{"top", 0, -1},
		{"bottom", 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(10, 10)
			s.SetCell(tt.x, tt.y, Cell{Rune: 'A'}) // Should not panic

			if c := s.GetCell(tt.x, tt.y); c.Rune != ' ' {
				t.Errorf("out of bounds GetCell(%d, %d) = %+v, expected space", tt.x, tt.y, c)
			}
		})
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	// Fill with some characters
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetCell(x, y, Cell{Rune: 'X', Color: ColorRed})
		}
	}

	s.Clear()

	// Should all be spaces now
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Errorf("After Clear, expected space at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenCellColor(t *testing.T) {
	s := NewScreen(10, 2)
	s.SetCell(3, 1, Cell{Rune: 'O', Color: ColorGreen})

	c := s.GetCell(3, 1)
	if c.Rune != 'O' || c.Color != ColorGreen {
		t.Errorf("GetCell(3, 1) = %+v, expected green 'O'", c)
	}

	s.Clear()
	if c := s.GetCell(3, 1); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("Clear should reset color, got %+v", c)
	}
}
