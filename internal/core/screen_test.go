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

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
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
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(3, 4, 'O', ColorGreen)

	cell := s.GetCell(3, 4)
	if cell.Rune != 'O' {
		t.Errorf("GetCell(3, 4).Rune = %q, expected 'O'", cell.Rune)
	}
	if cell.Color != ColorGreen {
		t.Errorf("GetCell(3, 4).Color = %d, expected ColorGreen", cell.Color)
	}

	// Out of bounds GetCell returns a blank default-colored cell
	oob := s.GetCell(-1, -1)
	if oob.Rune != ' ' || oob.Color != ColorDefault {
		t.Errorf("Out of bounds GetCell = %+v, expected blank default cell", oob)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	// Fill with some colored characters
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetColored(x, y, 'X', ColorRed)
		}
	}

	s.Clear()

	// Should all be blank default cells now
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Errorf("After Clear, expected blank cell at (%d, %d), got %+v", x, y, cell)
			}
		}
	}
}

func TestScreenFill(t *testing.T) {
	s := NewScreen(5, 5)
	s.Fill('#')

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("After Fill, expected '#' at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	expected := "Hello"
	for i, ch := range expected {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello") // Only "He" should fit
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(0, 0, "Go", ColorCyan)

	if s.GetCell(0, 0).Color != ColorCyan || s.GetCell(1, 0).Color != ColorCyan {
		t.Error("DrawTextColored should apply the color to every cell")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	text := "Hi"
	s.DrawTextCentered(2, text)

	// "Hi" is 2 chars, centered in 20 chars should start at position 9
	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	r := NewRect(2, 2, 3, 3)
	s.DrawRect(r, '#')

	// Inside should be filled
	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("DrawRect: expected '#' at (%d, %d)", x, y)
			}
		}
	}

	// Outside should be untouched
	if s.Get(1, 1) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("DrawRect should not draw outside the rect")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	r := NewRect(0, 0, 5, 5)
	s.DrawBox(r)

	if s.Get(0, 0) != '┌' {
		t.Errorf("Expected top-left corner, got %q", s.Get(0, 0))
	}
	if s.Get(4, 0) != '┐' {
		t.Errorf("Expected top-right corner, got %q", s.Get(4, 0))
	}
	if s.Get(0, 4) != '└' {
		t.Errorf("Expected bottom-left corner, got %q", s.Get(0, 4))
	}
	if s.Get(4, 4) != '┘' {
		t.Errorf("Expected bottom-right corner, got %q", s.Get(4, 4))
	}
	if s.Get(2, 0) != '─' || s.Get(2, 4) != '─' {
		t.Error("Expected horizontal edges")
	}
	if s.Get(0, 2) != '│' || s.Get(4, 2) != '│' {
		t.Error("Expected vertical edges")
	}
	// Interior untouched
	if s.Get(2, 2) != ' ' {
		t.Error("Box interior should stay empty")
	}
}

func TestScreenDrawLines(t *testing.T) {
	s := NewScreen(10, 10)

	s.DrawHLine(1, 1, 5, '-')
	for x := 1; x < 6; x++ {
		if s.Get(x, 1) != '-' {
			t.Errorf("DrawHLine: expected '-' at (%d, 1)", x)
		}
	}

	s.DrawVLine(8, 2, 4, '|')
	for y := 2; y < 6; y++ {
		if s.Get(8, y) != '|' {
			t.Errorf("DrawVLine: expected '|' at (8, %d)", y)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(1, 0, 'b')
	s.Set(2, 0, 'c')
	s.Set(0, 1, 'd')

	got := s.String()
	want := "abc\nd  "
	if got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}

	if strings.Count(got, "\n") != 1 {
		t.Errorf("String() should contain exactly one newline for 2 rows")
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "test")

	if s.Row(0) != "test" {
		t.Errorf("Row(0) = %q, expected \"test\"", s.Row(0))
	}
	if s.Row(1) != "    " {
		t.Errorf("Row(1) = %q, expected four spaces", s.Row(1))
	}
	if s.Row(-1) != "    " {
		t.Error("Out of bounds Row should return blank row")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, 'X')

	s.Resize(8, 8)

	if s.Width() != 8 || s.Height() != 8 {
		t.Errorf("Resize: got %dx%d, expected 8x8", s.Width(), s.Height())
	}
	if s.Get(1, 1) != 'X' {
		t.Error("Resize should preserve existing content")
	}

	// Shrinking drops out-of-range content without panicking
	s.Resize(2, 2)
	if s.Get(1, 1) != 'X' {
		t.Error("Resize: content inside the new bounds should survive")
	}
}
