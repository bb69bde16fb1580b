package lines

import (
	"fmt"
	"strings"

	platformcore "github.com/vovakirdan/tui-lines/internal/core"
	"github.com/vovakirdan/tui-lines/internal/games/lines/core"
)

const (
	pieceRune = '●'
	hintRune  = '∘'
	emptyRune = '·'
	pathRune  = '•'
)

var pieceColors = map[core.Color]platformcore.Color{
	core.Red:     platformcore.ColorRed,
	core.Green:   platformcore.ColorGreen,
	core.Yellow:  platformcore.ColorYellow,
	core.Blue:    platformcore.ColorBlue,
	core.Magenta: platformcore.ColorMagenta,
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderFooter(dst)
	g.renderOverlays(dst)
}

func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	w, h := minSize(g.ctrl.Grid().Size())
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", w, h, g.screenW, g.screenH))
}

func (g *Game) renderHUD(dst *platformcore.Screen) {
	b := g.layout.board
	dst.DrawTextCentered(b.Y-2, g.Title())

	score := fmt.Sprintf("Score: %d", g.ctrl.Score())
	dst.DrawText(b.X, b.Y-1, score)
	if g.gainTicks > 0 && g.gain > 0 {
		dst.DrawTextColored(b.X+len(score)+1, b.Y-1, fmt.Sprintf("+%d", g.gain), platformcore.ColorBrightGreen)
	}

	best := fmt.Sprintf("Best: %d", max(g.best, g.ctrl.Score()))
	dst.DrawText(b.Right()-len(best), b.Y-1, best)
}

func (g *Game) renderBoard(dst *platformcore.Screen) {
	frame := platformcore.ColorGray
	if g.ctrl.GameOver() {
		frame = platformcore.ColorRed
	}
	dst.DrawBoxColored(g.layout.board, frame)

	grid := g.ctrl.Grid()
	moving, mover, travelling := g.anim.travelling()
	if travelling {
		grid = moving
	}

	n := grid.Size()
	for r := range n {
		for c := range n {
			g.drawCell(dst, grid, core.P(r, c))
		}
	}

	if !g.anim.active() {
		for _, p := range g.ctrl.Preview() {
			if grid.IsFree(p) {
				x, y := g.layout.cellOrigin(p)
				dst.SetColored(x+1, y, pathRune, platformcore.ColorWhite)
			}
		}
	}

	if g.anim.kind == animBlink {
		for _, pc := range g.anim.blink {
			x, y := g.layout.cellOrigin(pc.Pos)
			if g.anim.blinkVisible() {
				dst.SetColored(x+1, y, pieceRune, pieceColors[pc.Color].Bright())
			} else {
				dst.SetColored(x+1, y, ' ', platformcore.ColorDefault)
			}
		}
	}

	if travelling {
		x, y := g.layout.cellOrigin(mover.Pos)
		dst.SetColored(x+1, y, pieceRune, pieceColors[mover.Color].Bright())
	}

	if !g.anim.active() && !g.ctrl.GameOver() {
		x, y := g.layout.cellOrigin(g.cursor)
		dst.SetColored(x, y, '[', platformcore.ColorBrightWhite)
		dst.SetColored(x+2, y, ']', platformcore.ColorBrightWhite)
	}
}

func (g *Game) drawCell(dst *platformcore.Screen, grid *core.Grid, p core.Pos) {
	x, y := g.layout.cellOrigin(p)
	pc, ok := grid.At(p)
	switch {
	case !ok:
		dst.SetColored(x+1, y, emptyRune, platformcore.ColorGray)
	case pc.Hint:
		dst.SetColored(x+1, y, hintRune, pieceColors[pc.Color])
	default:
		color := pieceColors[pc.Color]
		if sel, isSel := g.ctrl.Selected(); isSel && sel == p && !g.anim.active() {
			color = pieceColors[pc.Color].Bright()
			// selected piece pulses at 2 Hz
			if (g.tick/uint64(max(1, g.rt.TickDuration(250))))%2 == 1 {
				dst.SetColored(x+1, y, '○', color)
				return
			}
		}
		dst.SetColored(x+1, y, pieceRune, color)
	}
}

func (g *Game) renderFooter(dst *platformcore.Screen) {
	b := g.layout.board
	y := b.Bottom()

	x := b.X
	label := "Next:"
	dst.DrawText(x, y, label)
	x += len(label) + 1
	if hints := g.ctrl.Hints(); len(hints) > 0 {
		for _, h := range hints {
			dst.SetColored(x, y, pieceRune, pieceColors[h.Color])
			x += 2
		}
	} else {
		dst.DrawText(x, y, "?")
	}

	free := fmt.Sprintf("Free: %d", g.ctrl.Grid().AvailableCount())
	dst.DrawText(b.Right()-len(free), y, free)

	help := "arrows move  enter pick/drop  esc cancel  n new  p pause  q quit"
	if len(help) > g.screenW {
		help = "enter pick/drop  n new  q quit"
	}
	dst.DrawTextCenteredColored(y+1, help, platformcore.ColorGray)
}

func (g *Game) renderOverlays(dst *platformcore.Screen) {
	switch {
	case g.State().GameOver:
		g.drawOverlay(dst, platformcore.ColorRed,
			"GAME OVER",
			fmt.Sprintf("Score: %d  Moves: %d", g.ctrl.Score(), g.ctrl.Moves()),
			"",
			"R restart  Q quit",
		)
	case g.paused:
		g.drawOverlay(dst, platformcore.ColorYellow,
			"PAUSED",
			"",
			"P resume",
		)
	}
}

func (g *Game) drawOverlay(dst *platformcore.Screen, color platformcore.Color, lines ...string) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	w += 4
	h := len(lines) + 2
	box := platformcore.CenteredRect(g.screenW, g.screenH, w, h)

	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, color)
	for i, l := range lines {
		if l == "" {
			continue
		}
		pad := (w - 2 - len([]rune(l))) / 2
		c := platformcore.ColorDefault
		if i == 0 {
			c = color
		}
		dst.DrawTextColored(box.X+1+pad, box.Y+1+i, strings.TrimSpace(l), c)
	}
}
