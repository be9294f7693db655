package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(10, 5)

	if s.Width() != 10 || s.Height() != 5 {
		t.Fatalf("NewScreen size = %dx%d, expected 10x5", s.Width(), s.Height())
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("New screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if s.Get(3, 2) != 'X' {
		t.Errorf("Get(3, 2) = %q, expected 'X'", s.Get(3, 2))
	}

	s.SetColor(4, 2, 'o', ColorRed)
	if c := s.GetCell(4, 2); c.Rune != 'o' || c.Color != ColorRed {
		t.Errorf("GetCell(4, 2) = %+v, expected red 'o'", c)
	}

	// Out of bounds writes are ignored and reads return space
	s.Set(-1, 0, 'X')
	s.Set(10, 0, 'X')
	s.Set(0, 5, 'X')
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' {
		t.Error("Out-of-bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColor(1, 1, '#', ColorBlue)
	s.Clear()

	if c := s.GetCell(1, 1); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("Clear left %+v at (1, 1)", c)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColor(2, 1, "hi!", ColorYellow)

	if s.Row(1) != "  hi!     " {
		t.Errorf("Row(1) = %q", s.Row(1))
	}
	if c := s.GetCell(3, 1); c.Color != ColorYellow {
		t.Errorf("DrawTextColor color = %v, expected yellow", c.Color)
	}

	// Clipped at the right edge
	s.DrawText(8, 0, "abcdef")
	if s.Row(0) != "        ab" {
		t.Errorf("Clipped row = %q", s.Row(0))
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 3, 4, 2), '#', ColorRed)

	for y := 3; y < 5; y++ {
		for x := 2; x < 6; x++ {
			if c := s.GetCell(x, y); c.Rune != '#' || c.Color != ColorRed {
				t.Errorf("DrawRect: expected red '#' at (%d, %d), got %+v", x, y, c)
			}
		}
	}
	if s.Get(1, 3) != ' ' || s.Get(6, 3) != ' ' || s.Get(2, 5) != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4))

	expected := []string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}
	for y, row := range expected {
		if s.Row(y) != row {
			t.Errorf("Row(%d) = %q, expected %q", y, s.Row(y), row)
		}
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawHLine(2, 2, 5, '-', ColorGray)

	for x := 2; x < 7; x++ {
		if c := s.GetCell(x, 2); c.Rune != '-' || c.Color != ColorGray {
			t.Errorf("DrawHLine: expected gray '-' at (%d, 2), got %+v", x, c)
		}
	}
	if s.Get(7, 2) != ' ' {
		t.Error("DrawHLine drew past its length")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "de")

	if got := s.String(); got != "abc\nde " {
		t.Errorf("String() = %q", got)
	}
	if strings.Count(s.String(), "\n") != 1 {
		t.Error("String() should join rows with newlines")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(1, 1, 'X')

	s.Resize(15, 8)
	if s.Width() != 15 || s.Height() != 8 {
		t.Fatalf("Resize size = %dx%d, expected 15x8", s.Width(), s.Height())
	}
	if s.Get(1, 1) != ' ' {
		t.Error("Resize should start from a blank buffer")
	}

	// Same size is a no-op
	s.Set(2, 2, 'Y')
	s.Resize(15, 8)
	if s.Get(2, 2) != 'Y' {
		t.Error("Resize to the same size should keep content")
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)
	if s.Row(5) != "    " {
		t.Errorf("Row(5) = %q, expected blanks", s.Row(5))
	}
}
