package core

import (
	"strings"
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

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenWriteTextAdvancesCursor(t *testing.T) {
	s := NewScreen(20, 5)
	s.MoveCursor(2, 1)
	s.WriteText("ab")
	s.WriteText("cd")

	if got := s.Row(1); !strings.HasPrefix(got, "  abcd") {
		t.Errorf("Row(1) = %q, expected prefix %q", got, "  abcd")
	}
	col, row := s.Cursor()
	if col != 6 || row != 1 {
		t.Errorf("Cursor() = (%d, %d), expected (6, 1)", col, row)
	}
}

func TestScreenWriteTextClipsRight(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(18, 0, "Hello") // Only "He" should fit
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenColor(t *testing.T) {
	s := NewScreen(10, 2)
	s.SetColor(ColorGreen)
	s.DrawText(0, 0, "ab")
	s.SetColor(ColorDefault)
	s.DrawText(2, 0, "c")

	if c := s.GetCell(1, 0); c.Rune != 'b' || c.Color != ColorGreen {
		t.Errorf("GetCell(1, 0) = %+v, expected green 'b'", c)
	}
	if c := s.GetCell(2, 0); c.Color != ColorDefault {
		t.Errorf("GetCell(2, 0) color = %d, expected default", c.Color)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 3, "XXXXXXXXXX")
	s.Clear()

	if s.Row(3) != strings.Repeat(" ", 10) {
		t.Errorf("After Clear, row 3 = %q", s.Row(3))
	}
	col, row := s.Cursor()
	if col != 0 || row != 0 {
		t.Errorf("Clear should home the cursor, got (%d, %d)", col, row)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	if outOfBounds := s.Row(-1); outOfBounds != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", outOfBounds)
	}
}
