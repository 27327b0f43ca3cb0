package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(3, 2, '@', ColorRed)
	cell := s.GetCell(3, 2)
	if cell.Rune != '@' || cell.Color != ColorRed {
		t.Errorf("GetCell: got %+v, want {@ red}", cell)
	}

	// Out-of-bounds writes must be ignored, reads return a blank cell.
	s.Set(-1, 0, 'x')
	s.Set(10, 4, 'x')
	s.Set(0, 5, 'x')
	if got := s.GetCell(-1, 0); got.Rune != ' ' {
		t.Errorf("out-of-bounds read: got %q, want space", got.Rune)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColored(1, 1, '#', ColorGreen)
	s.Clear()
	cell := s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("after Clear: got %+v", cell)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(9, 4, 'x')
	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("Resize: got %dx%d, want 20x10", s.Width(), s.Height())
	}
	if s.Get(9, 4) != ' ' {
		t.Error("Resize should clear the buffer")
	}

	// Degenerate sizes clamp to 1x1 instead of panicking.
	s.Resize(0, -3)
	if s.Width() != 1 || s.Height() != 1 {
		t.Errorf("degenerate Resize: got %dx%d, want 1x1", s.Width(), s.Height())
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hello")
	line := strings.Split(s.String(), "\n")[1]
	if line != "  hello   " {
		t.Errorf("DrawText: got %q", line)
	}

	// Text running past the right edge is clipped.
	s.DrawText(8, 0, "abc")
	top := strings.Split(s.String(), "\n")[0]
	if top != "        ab" {
		t.Errorf("clipped DrawText: got %q", top)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc")
	if s.Get(4, 0) != 'a' || s.Get(5, 0) != 'b' || s.Get(6, 0) != 'c' {
		t.Errorf("DrawTextCentered: got %q", s.String())
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4), ColorDefault)
	if s.Get(0, 0) != '┌' || s.Get(5, 0) != '┐' {
		t.Errorf("box top corners: got %q %q", s.Get(0, 0), s.Get(5, 0))
	}
	if s.Get(0, 3) != '└' || s.Get(5, 3) != '┘' {
		t.Errorf("box bottom corners: got %q %q", s.Get(0, 3), s.Get(5, 3))
	}
	if s.Get(2, 0) != '─' || s.Get(0, 2) != '│' {
		t.Error("box edges not drawn")
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(5, 5)
	s.DrawRect(NewRect(1, 1, 3, 2), '#', ColorBlue)
	for y := 1; y <= 2; y++ {
		for x := 1; x <= 3; x++ {
			if c := s.GetCell(x, y); c.Rune != '#' || c.Color != ColorBlue {
				t.Fatalf("DrawRect cell (%d,%d): got %+v", x, y, c)
			}
		}
	}
	if s.Get(4, 1) != ' ' {
		t.Error("DrawRect wrote outside the rect")
	}
}
