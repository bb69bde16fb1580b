package core

import (
	"fmt"
	"strings"
)

// Color identifies a piece color. The zero value means no piece.
type Color uint8

const (
	NoColor Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
)

// ColorCount is the size of the full palette.
const ColorCount = 5

var colorNames = [...]string{
	NoColor: "none",
	Red:     "red",
	Green:   "green",
	Yellow:  "yellow",
	Blue:    "blue",
	Magenta: "magenta",
}

// Palette returns the first n colors of the palette. n is clamped to [1, ColorCount].
func Palette(n int) []Color {
	if n < 1 {
		n = 1
	}
	if n > ColorCount {
		n = ColorCount
	}
	out := make([]Color, n)
	for i := range out {
		out[i] = Color(i + 1)
	}
	return out
}

// Valid reports whether c is one of the palette colors.
func (c Color) Valid() bool {
	return c >= Red && c <= Magenta
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("color(%d)", c)
}

// Letter returns a single uppercase letter for ASCII dumps.
func (c Color) Letter() byte {
	switch c {
	case Red:
		return 'R'
	case Green:
		return 'G'
	case Yellow:
		return 'Y'
	case Blue:
		return 'B'
	case Magenta:
		return 'M'
	default:
		return '.'
	}
}

// ParseColor parses a color name (case-insensitive) or its letter.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i := Red; i <= Magenta; i++ {
		if s == colorNames[i] || (len(s) == 1 && s[0] == i.Letter()+('a'-'A')) {
			return i, nil
		}
	}
	return NoColor, fmt.Errorf("unknown color %q", s)
}

// Piece is a snapshot of one occupied cell.
type Piece struct {
	Pos   Pos
	Color Color
	Hint  bool
}
