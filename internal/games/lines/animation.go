package lines

import (
	"github.com/vovakirdan/tui-lines/internal/games/lines/core"
)

type animKind int

const (
	animNone   animKind = iota
	animTravel          // selected piece walks its path
	animBlink           // cleared or freshly dealt pieces blink
)

// animation replays a committed move. The engine has already applied
// the move; the animation only decides what the renderer shows.
type animation struct {
	kind   animKind
	frame  int // current frame within the phase
	frames int // frames in the phase
	wait   int // ticks left before the next frame

	board   *core.Grid // board under the travelling piece
	path    core.Path
	color   core.Color
	blink   []core.Piece
	pending []core.Piece // blink phase queued after travel
}

func (a *animation) active() bool { return a.kind != animNone }

// travelling returns the board to draw and the position of the moving
// piece while a move is replayed.
func (a *animation) travelling() (*core.Grid, core.Piece, bool) {
	if a.kind != animTravel {
		return nil, core.Piece{}, false
	}
	return a.board, core.Piece{Pos: a.path[a.frame], Color: a.color}, true
}

// blinkVisible reports whether blinking pieces are drawn this frame.
// Even frames show them.
func (a *animation) blinkVisible() bool { return a.frame%2 == 0 }

func (g *Game) stepTicks() int {
	return max(1, g.rt.TickDuration(g.cfg.Animation.StepMS))
}

func (g *Game) blinkTicks() int {
	return max(1, g.rt.TickDuration(g.cfg.Animation.BlinkMS))
}

// startMoveAnimation replays res over before, the board as it was just
// prior to the commit.
func (g *Game) startMoveAnimation(before *core.Grid, res core.MoveResult) {
	g.anim = animation{}
	if !g.cfg.Animation.Enabled {
		return
	}

	cleared := make([]core.Piece, len(res.Cleared))
	for i, p := range res.Cleared {
		cleared[i] = core.Piece{Pos: p, Color: res.ClearedColor[i]}
	}

	if len(res.Path) > 1 && g.cfg.Animation.StepMS > 0 {
		moving := before.Remove(res.From)
		g.anim = animation{
			kind:    animTravel,
			frames:  len(res.Path),
			wait:    g.stepTicks(),
			board:   before,
			path:    res.Path,
			color:   moving.Color,
			pending: cleared,
		}
		return
	}
	g.startBlink(cleared)
}

// startRestartBlink blinks every piece of a freshly dealt board.
func (g *Game) startRestartBlink() {
	g.anim = animation{}
	if !g.cfg.Animation.Enabled {
		return
	}
	g.startBlink(g.ctrl.Grid().Pieces())
}

func (g *Game) startBlink(pieces []core.Piece) {
	if len(pieces) == 0 || g.cfg.Animation.BlinkCount <= 0 || g.cfg.Animation.BlinkMS <= 0 {
		g.anim = animation{}
		return
	}
	g.anim = animation{
		kind:   animBlink,
		frames: g.cfg.Animation.BlinkCount,
		wait:   g.blinkTicks(),
		blink:  pieces,
	}
}

// stepAnimation advances the animation by one tick.
func (g *Game) stepAnimation() {
	a := &g.anim
	if !a.active() {
		return
	}
	a.wait--
	if a.wait > 0 {
		return
	}
	a.frame++
	if a.frame < a.frames {
		if a.kind == animTravel {
			a.wait = g.stepTicks()
		} else {
			a.wait = g.blinkTicks()
		}
		return
	}

	if a.kind == animTravel {
		g.startBlink(a.pending)
		return
	}
	g.anim = animation{}
}
