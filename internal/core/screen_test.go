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
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
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

	s.SetCell(2, 3, 'M', ColorRed)
	if c := s.GetCell(2, 3); c.Rune != 'M' || c.Color != ColorRed {
		t.Errorf("GetCell(2, 3) = %+v, expected red M", c)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.SetCell(0, -1, 'A', ColorBlue)
	s.SetCell(0, 100, 'A', ColorBlue)

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if c := s.GetCell(100, 0); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("Out of bounds GetCell = %+v, expected blank", c)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawHLine(0, 4, 10, '=', ColorBlue)
	s.Clear()

	for x := 0; x < 10; x++ {
		if c := s.GetCell(x, 4); c.Rune != ' ' || c.Color != ColorDefault {
			t.Fatalf("After Clear, cell (%d, 4) = %+v", x, c)
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawText(2, 1, "Hello")
	if s.Row(1) != "  Hello             " {
		t.Errorf("Row(1) = %q", s.Row(1))
	}

	s.DrawTextColor(17, 2, "Clipped", ColorGreen)
	if got := s.Row(2); got != strings.Repeat(" ", 17)+"Cli" {
		t.Errorf("Row(2) = %q, expected clipping", got)
	}
	if s.GetCell(18, 2).Color != ColorGreen {
		t.Error("DrawTextColor should colour the text")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "•ab", ColorWhite)

	if s.Row(0) != "    •ab    " {
		t.Errorf("Row(0) = %q, expected centered text", s.Row(0))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(2, 1, 'X')
	s.DrawBox(NewRect(0, 0, 6, 4), ColorYellow)

	expected := []string{
		"+----+",
		"|    |",
		"|    |",
		"+----+",
	}
	for y, want := range expected {
		if s.Row(y) != want {
			t.Errorf("Row(%d) = %q, expected %q", y, s.Row(y), want)
		}
	}
	if s.GetCell(0, 0).Color != ColorYellow {
		t.Error("box border should be coloured")
	}
}

func TestScreenLines(t *testing.T) {
	s := NewScreen(5, 5)
	s.DrawHLine(1, 0, 3, '-', ColorBlue)
	s.DrawVLine(0, 1, 3, '|', ColorBlue)

	if s.Row(0) != " --- " {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
	for y := 1; y <= 3; y++ {
		if c := s.GetCell(0, y); c.Rune != '|' || c.Color != ColorBlue {
			t.Errorf("GetCell(0, %d) = %+v", y, c)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "ABC")
	s.DrawText(0, 1, "DEF")

	if s.String() != "ABC\nDEF" {
		t.Errorf("String() = %q, expected %q", s.String(), "ABC\nDEF")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetCell(5, 5, 'X', ColorRed)
	s.Set(9, 9, 'Y')

	s.Resize(20, 20)
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorRed {
		t.Errorf("content should be preserved after resize, got %+v", c)
	}

	s.Resize(6, 6)
	if s.Width() != 6 || s.Height() != 6 {
		t.Errorf("size = %dx%d, expected 6x6", s.Width(), s.Height())
	}
	if s.Get(5, 5) != 'X' {
		t.Error("content inside the new bounds should survive shrinking")
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 1, "Test")

	if s.Row(1) != "Test " {
		t.Errorf("Row(1) = %q, expected %q", s.Row(1), "Test ")
	}
	if s.Row(-1) != "     " {
		t.Errorf("Row(-1) = %q, expected spaces", s.Row(-1))
	}
}

func TestColorString(t *testing.T) {
	tests := []struct {
		c        Color
		expected string
	}{
		{ColorDefault, "default"},
		{ColorYellow, "yellow"},
		{ColorBrightMagenta, "bright-magenta"},
		{ColorGray, "gray"},
		{Color(200), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.c.String(); got != tc.expected {
			t.Errorf("Color(%d).String() = %q, expected %q", tc.c, got, tc.expected)
		}
	}
}
