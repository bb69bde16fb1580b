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

	s.SetColored(5, 5, '●', ColorRed)
	if c := s.GetCell(5, 5); c.Rune != '●' || c.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red ●", c)
	}

	s.Set(5, 5, 'X')
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorDefault {
		t.Errorf("Set should reset the color, got %+v", c)
	}

	// Out of bounds is silent
	s.Set(-1, 0, 'A')
	s.SetColored(100, 0, 'A', ColorBlue)

	if s.Get(-1, 0) != ' ' || s.GetCell(100, 0) != (Cell{Rune: ' '}) {
		t.Error("Out of bounds Get should return a blank cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillCell(Cell{Rune: 'X', Color: ColorGreen})
	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(2, 1, "Héllo", ColorBlue)

	expected := "Héllo"
	i := 0
	for _, ch := range expected {
		c := s.GetCell(2+i, 1)
		if c.Rune != ch || c.Color != ColorBlue {
			t.Errorf("DrawTextColored: expected cyan %q at (%d, 1), got %+v", ch, 2+i, c)
		}
		i++
	}

	// Clipped at the right edge
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#')

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("DrawRect: expected '#' at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
	if s.Get(1, 1) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBoxColored(NewRect(1, 1, 5, 4), ColorMagenta)

	corners := []struct {
		x, y int
		r    rune
	}{
		{1, 1, '┌'},
		{5, 1, '┐'},
		{1, 4, '└'},
		{5, 4, '┘'},
	}
	for _, c := range corners {
		if got := s.GetCell(c.x, c.y); got.Rune != c.r || got.Color != ColorMagenta {
			t.Errorf("corner (%d, %d) = %+v, expected magenta %q", c.x, c.y, got, c.r)
		}
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawTextColored(0, 1, "BBBBB", ColorRed)
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "Hello", ColorBlue)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", s.Row(0))
	}
	if s.GetCell(0, 0).Color != ColorBlue {
		t.Error("Colors should be preserved across resize")
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}
	if got := s.Row(-1); got != strings.Repeat(" ", 15) {
		t.Errorf("Out of bounds row should be spaces, got %q", got)
	}
}

func TestColorBright(t *testing.T) {
	tests := []struct {
		in, expected Color
	}{
		{ColorRed, ColorBrightRed},
		{ColorMagenta, ColorBrightMagenta},
		{ColorBrightBlue, ColorBrightBlue},
		{ColorGray, ColorGray},
	}
	for _, tt := range tests {
		if got := tt.in.Bright(); got != tt.expected {
			t.Errorf("(%d).Bright() = %d, expected %d", tt.in, got, tt.expected)
		}
	}
}
