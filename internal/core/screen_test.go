package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	tests := []struct {
		w, h         int
		wantW, wantH int
	}{
		{80, 24, 80, 24},
		{0, 0, 0, 0},
		{-3, 5, 0, 5},
	}

	for _, tc := range tests {
		s := NewScreen(tc.w, tc.h)
		if s.Width() != tc.wantW || s.Height() != tc.wantH {
			t.Errorf("NewScreen(%d, %d) size = %dx%d, expected %dx%d",
				tc.w, tc.h, s.Width(), s.Height(), tc.wantW, tc.wantH)
		}
	}

	s := NewScreen(4, 2)
	if got := s.String(); got != "    \n    " {
		t.Errorf("new screen = %q, expected blank", got)
	}
}

func TestScreenSetOutOfBounds(t *testing.T) {
	s := NewScreen(5, 3)

	for _, p := range [][2]int{{-1, 0}, {5, 0}, {0, -1}, {0, 3}} {
		s.SetColored(p[0], p[1], 'X', ColorRed)
		if got := s.GetCell(p[0], p[1]); got != blankCell {
			t.Errorf("GetCell(%d, %d) = %+v, expected blank", p[0], p[1], got)
		}
	}
	if strings.ContainsRune(s.String(), 'X') {
		t.Error("out of bounds writes should be dropped")
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 3)
	s.SetColored(2, 1, '●', ColorBrown)

	if got := s.GetCell(2, 1); got.Rune != '●' || got.Color != ColorBrown {
		t.Errorf("GetCell = %+v, expected brown egg", got)
	}
	if s.Get(2, 1) != '●' {
		t.Errorf("Get = %q", s.Get(2, 1))
	}

	s.Clear()
	if got := s.GetCell(2, 1); got != blankCell {
		t.Errorf("after Clear cell = %+v, expected blank", got)
	}
}

func TestScreenText(t *testing.T) {
	s := NewScreen(12, 2)
	s.DrawTextColored(8, 0, "Best: 42", ColorGray)
	s.DrawTextCentered(1, "GO")

	if got := strings.Split(s.String(), "\n"); got[0] != "        Best" || got[1] != "     GO     " {
		t.Errorf("rows = %q", got)
	}
	if s.GetCell(8, 0).Color != ColorGray {
		t.Error("text color not applied")
	}
}

func TestScreenDrawBoxAndRect(t *testing.T) {
	s := NewScreen(6, 4)
	box := NewRect(0, 0, 6, 4)
	s.DrawRect(box, '#')
	s.DrawRect(box.Inset(1), ' ')
	s.DrawBox(box)

	want := "┌────┐\n│    │\n│    │\n└────┘"
	if got := s.String(); got != want {
		t.Errorf("box =\n%s\nexpected\n%s", got, want)
	}

	// Degenerate boxes draw nothing.
	s.Clear()
	s.DrawBox(NewRect(1, 1, 1, 3))
	if strings.TrimSpace(strings.ReplaceAll(s.String(), "\n", "")) != "" {
		t.Error("one column box should not be drawn")
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawHLine(7, 0, 5, '▀', ColorBlue)

	if got := s.String(); got != "       ▀▀▀" {
		t.Errorf("line = %q, expected clipped at the right edge", got)
	}
	s.DrawHLine(0, 0, -2, 'x', ColorBlue)
	if s.Get(0, 0) != ' ' {
		t.Error("negative length should draw nothing")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(1, 1, 'A')

	s.Resize(4, 2)
	if s.Width() != 4 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 4x2", s.Width(), s.Height())
	}
	if got := s.String(); got != "    \n    " {
		t.Errorf("resized screen = %q, expected blank", got)
	}

	s.Resize(20, 10)
	s.Set(19, 9, 'Z')
	if s.Get(19, 9) != 'Z' {
		t.Error("growing the screen should make new cells writable")
	}
}
