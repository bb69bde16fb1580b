package lines

import (
	"context"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lines/internal/games/lines/core"
)

// SimOptions configures a headless run of robot games.
type SimOptions struct {
	Rules    core.Rules
	Seed     int64
	Games    int    // boards to play, at least 1
	MaxMoves int    // per board; 0 means no limit
	Robot    string // "greedy" or "random"
	Logger   *log.Logger
}

// SimResult is the outcome of one simulated board.
type SimResult struct {
	Game     int
	Score    int
	Moves    int
	Cleared  int
	GameOver bool // false when the move limit stopped the board
}

// NewRobot returns the named autoplayer.
func NewRobot(name string, rnd core.RandomSource) (core.Robot, error) {
	switch name {
	case "", "greedy":
		return core.GreedyRobot{}, nil
	case "random":
		return core.RandomRobot{Rand: rnd}, nil
	default:
		return nil, fmt.Errorf("unknown robot %q (want greedy or random)", name)
	}
}

// restartBudget answers the game-over prompt until it runs out.
type restartBudget struct {
	left int
}

func (b *restartBudget) RestartRequested(int) bool {
	if b.left <= 0 {
		return false
	}
	b.left--
	return true
}

// Simulate plays opts.Games boards with a robot on one controller,
// restarting through the game-over prompt. The same options always
// produce the same results.
func Simulate(ctx context.Context, opts SimOptions) ([]SimResult, error) {
	if opts.Games < 1 {
		opts.Games = 1
	}
	l := opts.Logger
	if l == nil {
		l = log.New(io.Discard)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	robot, err := NewRobot(opts.Robot, rng)
	if err != nil {
		return nil, err
	}
	ctrl, err := core.NewController(opts.Rules, rng)
	if err != nil {
		return nil, err
	}
	ctrl.Start()

	prompt := &restartBudget{left: opts.Games - 1}
	results := make([]SimResult, 0, opts.Games)
	for game := 1; ; game++ {
		res := SimResult{Game: game}
		for !ctrl.GameOver() && (opts.MaxMoves <= 0 || ctrl.Moves() < opts.MaxMoves) {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			cand, ok := robot.PickMove(ctrl)
			if !ok {
				break
			}
			mv, ok := ctrl.Move(cand.From, cand.To)
			if !ok {
				return results, fmt.Errorf("robot move %v->%v rejected", cand.From, cand.To)
			}
			res.Cleared += len(mv.Cleared)
			if mv.Gained > 0 {
				l.Debug("clear", "game", game, "move", ctrl.Moves(), "cells", len(mv.Cleared), "gained", mv.Gained)
			}
		}
		res.Score = ctrl.Score()
		res.Moves = ctrl.Moves()
		res.GameOver = ctrl.GameOver()
		results = append(results, res)
		l.Info("board finished", "game", game, "score", res.Score, "moves", res.Moves,
			"cleared", res.Cleared, "game_over", res.GameOver)

		if res.GameOver {
			if !ctrl.ResolveGameOver(prompt) {
				return results, nil
			}
			continue
		}
		// Move limit reached; spend a restart the same way.
		if !prompt.RestartRequested(res.Score) {
			return results, nil
		}
		ctrl.Restart()
	}
}
