package lines

import (
	"github.com/vovakirdan/tui-lines/internal/games/lines/core"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateAnimating   GameStateType = "animating"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Variant  string
	Score    int
	Moves    int
	Board    string // Grid.String(): color letters, hints in lower case
	Cursor   core.Pos
	Selected core.Pos
	Holding  bool // a piece is picked up
	Phase    string
	Free     int
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.anim.active():
		state = StateAnimating
	case g.ctrl.GameOver():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	s := Snapshot{
		Tick:    g.tick,
		Variant: string(g.variant),
		Score:   g.ctrl.Score(),
		Moves:   g.ctrl.Moves(),
		Board:   g.ctrl.Grid().String(),
		Cursor:  g.cursor,
		Phase:   g.ctrl.Phase().String(),
		Free:    g.ctrl.Grid().AvailableCount(),
		State:   state,
	}
	s.Selected, s.Holding = g.ctrl.Selected()
	return s
}
