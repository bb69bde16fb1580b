package lines

import (
	platformcore "github.com/vovakirdan/tui-lines/internal/core"
	"github.com/vovakirdan/tui-lines/internal/games/lines/core"
)

const (
	cellWidth  = 3 // columns per board cell
	hudHeight  = 2 // rows above the board
	footHeight = 2 // rows below the board
)

// layout places the board on the screen.
type layout struct {
	n     int
	board platformcore.Rect // outer box, border included
	fits  bool
}

func computeLayout(n, screenW, screenH int) layout {
	w := n*cellWidth + 2
	h := n + 2
	total := hudHeight + h + footHeight
	l := layout{
		n:    n,
		fits: screenW >= w+2 && screenH >= total,
	}
	x := (screenW - w) / 2
	y := hudHeight + max(0, (screenH-total)/2)
	l.board = platformcore.NewRect(x, y, w, h)
	return l
}

// minSize is the smallest screen the board fits on.
func minSize(n int) (int, int) {
	return n*cellWidth + 4, hudHeight + n + 2 + footHeight
}

// cellOrigin returns the screen position of the left column of p.
func (l layout) cellOrigin(p core.Pos) (int, int) {
	return l.board.X + 1 + p.Col*cellWidth, l.board.Y + 1 + p.Row
}

// cellAt maps a screen position to a board cell.
func (l layout) cellAt(x, y int) (core.Pos, bool) {
	inner := platformcore.NewRect(l.board.X+1, l.board.Y+1, l.n*cellWidth, l.n)
	if !inner.Contains(x, y) {
		return core.Pos{}, false
	}
	return core.P(y-inner.Y, (x-inner.X)/cellWidth), true
}

// Resize recomputes the layout without touching the board.
func (g *Game) Resize(screenW, screenH int) {
	g.screenW = screenW
	g.screenH = screenH
	g.rt.ScreenW = screenW
	g.rt.ScreenH = screenH
	if g.ctrl == nil {
		return
	}
	g.layout = computeLayout(g.ctrl.Grid().Size(), screenW, screenH)
	g.tooSmall = !g.layout.fits
}
