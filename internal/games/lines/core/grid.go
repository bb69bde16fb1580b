package core

import (
	"fmt"
	"strings"
)

// CellState is the single source of truth for what a cell holds.
type CellState uint8

const (
	CellEmpty    CellState = iota
	CellOccupied           // a real, matchable piece
	CellHint               // a preview of the next spawn; passable
)

func (s CellState) String() string {
	switch s {
	case CellEmpty:
		return "empty"
	case CellOccupied:
		return "occupied"
	case CellHint:
		return "hint"
	default:
		return "unknown"
	}
}

type cell struct {
	state CellState
	color Color
}

// Grid is the N×N board. It also keeps the available pool: the set of
// cells that are not occupied by a real piece. Empty and hint cells are
// available, occupied cells are used. The pool is only touched from
// setCell, so it can never drift from the cell states.
type Grid struct {
	n        int
	cells    []cell
	avail    indexPool
	revision uint64
}

// NewGrid creates an empty n×n grid.
func NewGrid(n int) *Grid {
	if n <= 0 {
		panic(fmt.Sprintf("lines: invalid grid size %d", n))
	}
	g := &Grid{
		n:     n,
		cells: make([]cell, n*n),
		avail: newIndexPool(n * n),
	}
	for i := range g.cells {
		g.avail.add(i)
	}
	return g
}

// Size returns N.
func (g *Grid) Size() int { return g.n }

// Revision changes every time the board is mutated.
func (g *Grid) Revision() uint64 { return g.revision }

// Valid reports whether p lies on the board.
func (g *Grid) Valid(p Pos) bool {
	return p.Row >= 0 && p.Row < g.n && p.Col >= 0 && p.Col < g.n
}

func (g *Grid) mustIndex(p Pos) int {
	if !g.Valid(p) {
		panic(fmt.Sprintf("lines: position %v outside %dx%d grid", p, g.n, g.n))
	}
	return p.Index(g.n)
}

// State returns the cell state at p.
func (g *Grid) State(p Pos) CellState {
	return g.cells[g.mustIndex(p)].state
}

// ColorAt returns the color at p, or NoColor for an empty cell.
func (g *Grid) ColorAt(p Pos) Color {
	return g.cells[g.mustIndex(p)].color
}

// At returns the piece at p, if any.
func (g *Grid) At(p Pos) (Piece, bool) {
	c := g.cells[g.mustIndex(p)]
	if c.state == CellEmpty {
		return Piece{}, false
	}
	return Piece{Pos: p, Color: c.color, Hint: c.state == CellHint}, true
}

// IsEmpty reports whether no piece is at p.
func (g *Grid) IsEmpty(p Pos) bool { return g.State(p) == CellEmpty }

// IsHint reports whether a hint piece is at p.
func (g *Grid) IsHint(p Pos) bool { return g.State(p) == CellHint }

// IsOccupied reports whether a real piece is at p.
func (g *Grid) IsOccupied(p Pos) bool { return g.State(p) == CellOccupied }

// IsFree reports whether a moving piece may pass through or stop at p.
// Hints never block movement.
func (g *Grid) IsFree(p Pos) bool { return g.State(p) != CellOccupied }

func (g *Grid) setCell(i int, c cell) {
	old := g.cells[i].state
	g.cells[i] = c
	switch {
	case old != CellOccupied && c.state == CellOccupied:
		g.avail.remove(i)
	case old == CellOccupied && c.state != CellOccupied:
		g.avail.add(i)
	}
	g.revision++
}

// Place puts a real piece on an empty cell.
func (g *Grid) Place(p Pos, color Color) {
	g.put(p, color, CellOccupied)
}

// PlaceHint puts a hint piece on an empty cell.
func (g *Grid) PlaceHint(p Pos, color Color) {
	g.put(p, color, CellHint)
}

func (g *Grid) put(p Pos, color Color, state CellState) {
	i := g.mustIndex(p)
	if !color.Valid() {
		panic(fmt.Sprintf("lines: invalid color %v at %v", color, p))
	}
	if g.cells[i].state != CellEmpty {
		panic(fmt.Sprintf("lines: cell %v is %v", p, g.cells[i].state))
	}
	g.setCell(i, cell{state: state, color: color})
}

// Promote turns the hint at p into a real piece of the same color.
func (g *Grid) Promote(p Pos) {
	i := g.mustIndex(p)
	c := g.cells[i]
	if c.state != CellHint {
		panic(fmt.Sprintf("lines: promote %v: cell is %v", p, c.state))
	}
	g.setCell(i, cell{state: CellOccupied, color: c.color})
}

// Remove clears p and returns what was there.
func (g *Grid) Remove(p Pos) Piece {
	i := g.mustIndex(p)
	c := g.cells[i]
	if c.state == CellEmpty {
		panic(fmt.Sprintf("lines: remove %v: cell is empty", p))
	}
	g.setCell(i, cell{})
	return Piece{Pos: p, Color: c.color, Hint: c.state == CellHint}
}

// Move relocates the real piece at from to the empty cell to.
func (g *Grid) Move(from, to Pos) {
	src := g.cells[g.mustIndex(from)]
	if src.state != CellOccupied {
		panic(fmt.Sprintf("lines: move from %v: cell is %v", from, src.state))
	}
	g.Remove(from)
	g.Place(to, src.color)
}

// Neighbors4 returns the on-board orthogonal neighbors of p.
func (g *Grid) Neighbors4(p Pos) []Pos {
	out := make([]Pos, 0, 4)
	for _, d := range directions4 {
		if q := p.Add(d); g.Valid(q) {
			out = append(out, q)
		}
	}
	return out
}

// Pieces returns every piece on the board in row-major order.
func (g *Grid) Pieces() []Piece {
	var out []Piece
	for i, c := range g.cells {
		if c.state == CellEmpty {
			continue
		}
		out = append(out, Piece{Pos: PosFromIndex(i, g.n), Color: c.color, Hint: c.state == CellHint})
	}
	return out
}

// AvailableCount returns the number of cells not holding a real piece.
func (g *Grid) AvailableCount() int { return g.avail.len() }

// Available returns the available pool in row-major order.
func (g *Grid) Available() []Pos {
	return g.collect(true)
}

// Used returns the used pool in row-major order.
func (g *Grid) Used() []Pos {
	return g.collect(false)
}

func (g *Grid) collect(available bool) []Pos {
	var out []Pos
	for i := range g.cells {
		if g.avail.contains(i) == available {
			out = append(out, PosFromIndex(i, g.n))
		}
	}
	return out
}

// Reset empties the board.
func (g *Grid) Reset() {
	for i := range g.cells {
		if g.cells[i].state != CellEmpty {
			g.setCell(i, cell{})
		}
	}
	g.revision++
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		n:        g.n,
		cells:    make([]cell, len(g.cells)),
		avail:    g.avail.clone(),
		revision: g.revision,
	}
	copy(c.cells, g.cells)
	return c
}

// String renders the board one row per line: '.' empty, an uppercase
// color letter for a piece, lowercase for a hint.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.n; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.n; c++ {
			cl := g.cells[r*g.n+c]
			switch cl.state {
			case CellEmpty:
				sb.WriteByte('.')
			case CellOccupied:
				sb.WriteByte(cl.color.Letter())
			case CellHint:
				sb.WriteByte(cl.color.Letter() + ('a' - 'A'))
			}
		}
	}
	return sb.String()
}

// ParseGrid builds a grid from rows in the String format.
func ParseGrid(rows ...string) (*Grid, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("parse grid: no rows")
	}
	g := NewGrid(n)
	for r, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("parse grid: row %d has %d cells, expected %d", r, len(row), n)
		}
		for c := 0; c < n; c++ {
			ch := row[c]
			if ch == '.' {
				continue
			}
			hint := ch >= 'a' && ch <= 'z'
			color, err := ParseColor(string(ch))
			if err != nil {
				return nil, fmt.Errorf("parse grid: row %d col %d: %w", r, c, err)
			}
			if hint {
				g.PlaceHint(P(r, c), color)
			} else {
				g.Place(P(r, c), color)
			}
		}
	}
	return g, nil
}
