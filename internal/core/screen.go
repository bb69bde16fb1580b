package core

import (
	"strings"
	"unicode/utf8"
)

// Cell is one character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a 2D buffer of colored cells. Games draw into it and the
// platform turns it into terminal output.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	old := s.cells
	copyW := min(s.width, width)
	copyH := min(s.height, height)

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], old[y][:copyW])
	}
}

// Clear fills the entire screen with uncolored spaces.
func (s *Screen) Clear() {
	s.FillCell(blankCell)
}

// Fill fills the entire screen with the given rune.
func (s *Screen) Fill(r rune) {
	s.FillCell(Cell{Rune: r})
}

// FillCell fills the entire screen with c.
func (s *Screen) FillCell(c Cell) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = c
		}
	}
}

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Set places an uncolored rune. Out-of-bounds coordinates are ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, Cell{Rune: r})
}

// SetColored places a rune with a color.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	s.SetCell(x, y, Cell{Rune: r, Color: c})
}

// SetCell places a cell. Out-of-bounds coordinates are ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y][x] = c
}

// Get returns the rune at the given position, or a space when out of bounds.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position, or a blank cell when out of bounds.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return blankCell
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

// DrawTextColored writes a string in one color. Characters beyond the
// screen edges are clipped.
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.SetCell(x+i, y, Cell{Rune: r, Color: c})
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawTextCenteredColored(y, text, ColorDefault)
}

// DrawTextCenteredColored is DrawTextCentered with a color.
func (s *Screen) DrawTextCenteredColored(y int, text string, c Color) {
	x := (s.width - utf8.RuneCountInString(text)) / 2
	s.DrawTextColored(x, y, text, c)
}

// DrawRect fills a rectangular area with the given rune.
func (s *Screen) DrawRect(r Rect, fill rune) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.Set(x, y, fill)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect) {
	s.DrawBoxColored(r, ColorDefault)
}

// DrawBoxColored draws a box outline in one color.
func (s *Screen) DrawBoxColored(r Rect, c Color) {
	s.SetColored(r.X, r.Y, '┌', c)
	s.SetColored(r.Right()-1, r.Y, '┐', c)
	s.SetColored(r.X, r.Bottom()-1, '└', c)
	s.SetColored(r.Right()-1, r.Bottom()-1, '┘', c)

	for x := r.X + 1; x < r.Right()-1; x++ {
		s.SetColored(x, r.Y, '─', c)
		s.SetColored(x, r.Bottom()-1, '─', c)
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.SetColored(r.X, y, '│', c)
		s.SetColored(r.Right()-1, y, '│', c)
	}
}

// String converts the screen buffer to plain text, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the runes of row y as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
