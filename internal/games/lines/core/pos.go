// Package core contains the board rules of Lines: the grid, path search,
// run detection, piece supply and the per-move controller.
// It has no dependency on the platform or on any UI package.
package core

import "fmt"

// Pos is a grid coordinate. Row grows downward, Col grows to the right.
type Pos struct {
	Row int
	Col int
}

// P is shorthand for Pos{Row: row, Col: col}.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// Add returns p shifted by d.
func (p Pos) Add(d Pos) Pos {
	return Pos{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Up returns the position one row above.
func (p Pos) Up() Pos { return Pos{p.Row - 1, p.Col} }

// Down returns the position one row below.
func (p Pos) Down() Pos { return Pos{p.Row + 1, p.Col} }

// Left returns the position one column to the left.
func (p Pos) Left() Pos { return Pos{p.Row, p.Col - 1} }

// Right returns the position one column to the right.
func (p Pos) Right() Pos { return Pos{p.Row, p.Col + 1} }

// Less orders positions row-major.
func (p Pos) Less(o Pos) bool {
	if p.Row != o.Row {
		return p.Row < o.Row
	}
	return p.Col < o.Col
}

// Index returns the row-major linear index on an n×n board.
func (p Pos) Index(n int) int {
	return p.Row*n + p.Col
}

// PosFromIndex is the inverse of Pos.Index.
func PosFromIndex(i, n int) Pos {
	return Pos{Row: i / n, Col: i % n}
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Manhattan returns |Δrow| + |Δcol|.
func Manhattan(a, b Pos) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// directions4 are the movement neighbors, in a fixed order.
var directions4 = [4]Pos{
	{-1, 0}, // up
	{1, 0},  // down
	{0, -1}, // left
	{0, 1},  // right
}
