package lines

import (
	platformcore "github.com/vovakirdan/tui-lines/internal/core"
	"github.com/vovakirdan/tui-lines/internal/games/lines/core"
)

func (g *Game) handleInput(in platformcore.InputFrame) {
	n := g.ctrl.Grid().Size()
	moved := false
	switch {
	case in.Has(platformcore.ActionUp):
		g.cursor.Row = platformcore.Clamp(g.cursor.Row-1, 0, n-1)
		moved = true
	case in.Has(platformcore.ActionDown):
		g.cursor.Row = platformcore.Clamp(g.cursor.Row+1, 0, n-1)
		moved = true
	case in.Has(platformcore.ActionLeft):
		g.cursor.Col = platformcore.Clamp(g.cursor.Col-1, 0, n-1)
		moved = true
	case in.Has(platformcore.ActionRight):
		g.cursor.Col = platformcore.Clamp(g.cursor.Col+1, 0, n-1)
		moved = true
	}
	if moved {
		g.refreshPreview()
	}

	if in.Has(platformcore.ActionCancel) {
		g.ctrl.Deselect()
		g.dragging = false
	}
	if in.Has(platformcore.ActionConfirm) {
		g.activate(g.cursor)
	}

	for _, ev := range in.Pointer {
		if g.anim.active() {
			break
		}
		g.handlePointer(ev)
	}
}

// handlePointer mirrors the keyboard: motion moves the cursor, a press
// picks up or drops, and releasing a dragged piece over another cell
// drops it there.
func (g *Game) handlePointer(ev platformcore.PointerEvent) {
	p, ok := g.layout.cellAt(ev.X, ev.Y)
	if !ok {
		if ev.Kind == platformcore.PointerRelease {
			g.dragging = false
		}
		return
	}
	g.cursor = p

	switch ev.Kind {
	case platformcore.PointerMove:
		g.refreshPreview()
	case platformcore.PointerPress:
		g.activate(p)
		if sel, ok := g.ctrl.Selected(); ok && sel == p {
			g.dragFrom = p
			g.dragging = true
		}
	case platformcore.PointerRelease:
		if g.dragging && p != g.dragFrom {
			g.activate(p)
		}
		g.dragging = false
	}
}

func (g *Game) refreshPreview() {
	if _, ok := g.ctrl.Selected(); ok {
		g.ctrl.PreviewTo(g.cursor)
	}
}

// activate is the pick-up/drop action on p.
func (g *Game) activate(p core.Pos) {
	grid := g.ctrl.Grid()
	if grid.IsOccupied(p) {
		g.ctrl.Select(p)
		return
	}
	if _, ok := g.ctrl.Selected(); !ok {
		return
	}
	g.commit(p)
}

func (g *Game) commit(p core.Pos) {
	from, _ := g.ctrl.Selected()
	before := g.ctrl.Grid().Clone()
	res, ok := g.ctrl.Commit(p)
	if !ok {
		logger.Debug("move rejected", "from", from, "to", p)
		return
	}
	g.lastResult = res
	logger.Debug("move", "from", res.From, "to", res.To, "steps", res.Path.Steps(),
		"cleared", len(res.Cleared), "gained", res.Gained, "spawned", len(res.Spawned),
		"hint", res.LandedOnHint)
	if res.GameOver {
		logger.Info("game over", "game", g.ID(), "score", g.ctrl.Score(), "moves", g.ctrl.Moves())
	}
	g.startMoveAnimation(before, res)
}
