package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '*')
	if got := s.Get(3, 2); got != '*' {
		t.Errorf("Get(3,2) = %q, want '*'", got)
	}

	// Out of bounds writes are ignored, reads return space
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got)
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(4, 4)

	s.SetColored(1, 1, '@', ColorRed)
	cell := s.GetCell(1, 1)
	if cell.Rune != '@' || cell.Color != ColorRed {
		t.Errorf("GetCell(1,1) = %+v, want '@' red", cell)
	}

	// Plain Set leaves the default color
	s.Set(2, 2, '#')
	if got := s.GetCell(2, 2).Color; got != ColorDefault {
		t.Errorf("Set should use default color, got %v", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(6, 3)
	s.SetColored(0, 0, 'x', ColorGreen)
	s.Clear()

	if got := s.Get(0, 0); got != ' ' {
		t.Errorf("after Clear, Get(0,0) = %q", got)
	}
	if got := s.GetCell(0, 0).Color; got != ColorDefault {
		t.Errorf("after Clear, color = %v", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(0, 0, 'a')

	s.Resize(8, 2)
	if s.Width() != 8 || s.Height() != 2 {
		t.Errorf("Resize: got %dx%d, want 8x2", s.Width(), s.Height())
	}

	// Writes beyond new bounds are ignored
	s.Set(0, 3, 'x')
	if got := s.Get(0, 3); got != ' ' {
		t.Errorf("write past resized bounds stored %q", got)
	}
}

func TestDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi")

	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Error("DrawText did not place runes")
	}

	// Text running off the edge is truncated, not wrapped
	s.DrawText(8, 0, "abcd")
	if s.Get(0, 1) == 'c' {
		t.Error("DrawText should not wrap to the next row")
	}
}

func TestDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "abc")

	if s.Get(4, 1) != 'a' || s.Get(5, 1) != 'b' || s.Get(6, 1) != 'c' {
		t.Errorf("centered text misplaced: row %q", rowString(s, 1))
	}
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawBox(NewRect(1, 1, 5, 4))

	// Corners present
	if s.Get(1, 1) == ' ' || s.Get(5, 1) == ' ' || s.Get(1, 4) == ' ' || s.Get(5, 4) == ' ' {
		t.Error("DrawBox missing corners")
	}
	// Interior untouched
	if s.Get(3, 2) != ' ' {
		t.Error("DrawBox should not fill the interior")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	out := s.String()
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("String() produced %d lines, want 2", len(lines))
	}
	if lines[0] != "a  " || lines[1] != "  b" {
		t.Errorf("String() = %q", out)
	}
}

func rowString(s *Screen, y int) string {
	var sb strings.Builder
	for x := 0; x < s.Width(); x++ {
		sb.WriteRune(s.Get(x, y))
	}
	return sb.String()
}
