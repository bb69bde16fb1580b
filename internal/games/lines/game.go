// Package lines provides the Lines board game for the terminal:
// move pieces along free paths to build lines of one color.
package lines

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lines/internal/config"
	platformcore "github.com/vovakirdan/tui-lines/internal/core"
	"github.com/vovakirdan/tui-lines/internal/games/lines/core"
	"github.com/vovakirdan/tui-lines/internal/registry"
)

// Variant selects the board preset of a registered game.
type Variant string

const (
	VariantClassic Variant = "lines"
	VariantMini    Variant = "lines_mini"
)

// Game implements registry.Game for Lines.
type Game struct {
	variant Variant
	cfg     config.LinesConfig
	rt      platformcore.RuntimeConfig
	rng     *rand.Rand
	ctrl    *core.Controller
	cache   *pathCache
	tick    uint64

	cursor   core.Pos
	dragFrom core.Pos
	dragging bool
	anim     animation

	best       int
	gain       int // last score delta, shown next to the score
	gainTicks  int
	screenW    int
	screenH    int
	layout     layout
	paused     bool
	tooSmall   bool
	lastResult core.MoveResult
}

// Package-level settings, applied on the next Reset.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets a custom config path for the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for the next Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetLogger routes game logging to l. A nil logger discards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates a classic 9×9 game.
func New() *Game {
	return &Game{variant: VariantClassic, cache: newPathCache(pathCacheSize)}
}

// NewMini creates a 7×7 game with lines of four.
func NewMini() *Game {
	return &Game{variant: VariantMini, cache: newPathCache(pathCacheSize)}
}

func init() {
	registry.Register(string(VariantClassic), func() registry.Game {
		return New()
	})
	registry.Register(string(VariantMini), func() registry.Game {
		return NewMini()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return string(g.variant) }

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantMini {
		return "Lines Mini"
	}
	return "Lines"
}

// Description implements registry.Describer.
func (g *Game) Description() string {
	if g.variant == VariantMini {
		return "7x7 board, clear lines of four"
	}
	return "9x9 board, clear lines of five"
}

// SetBestScore shows best as the record to beat.
func (g *Game) SetBestScore(best int) {
	g.best = best
}

// Reset loads the config and starts a fresh board.
func (g *Game) Reset(rt platformcore.RuntimeConfig) {
	g.rt = rt
	g.screenW = rt.ScreenW
	g.screenH = rt.ScreenH
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.tick = 0
	g.paused = false
	g.gain = 0
	g.gainTicks = 0
	g.dragging = false
	g.anim = animation{}
	g.lastResult = core.MoveResult{}

	g.cfg = g.loadConfig()
	rules, err := g.cfg.EngineRules()
	if err != nil {
		logger.Error("invalid rules, using defaults", "err", err)
		g.cfg = config.DefaultLinesConfig()
		if g.variant == VariantMini {
			config.ApplyMiniVariant(&g.cfg)
		}
		rules, _ = g.cfg.EngineRules()
	}

	if g.cache == nil {
		g.cache = newPathCache(pathCacheSize)
	}
	g.cache.Purge()
	ctrl, err := core.NewController(rules, g.rng,
		core.WithScoreListener(g),
		core.WithPathCache(g.cache),
	)
	if err != nil {
		// rules were validated above
		panic(err)
	}
	g.ctrl = ctrl
	g.ctrl.Start()
	g.cursor = core.P(rules.Size/2, rules.Size/2)
	g.layout = computeLayout(rules.Size, g.screenW, g.screenH)
	g.tooSmall = !g.layout.fits
	logger.Debug("new board", "game", g.ID(), "seed", rt.Seed, "size", rules.Size,
		"colors", rules.Colors, "wave", rules.WaveSize, "hints", rules.Hints)
}

func (g *Game) loadConfig() config.LinesConfig {
	cfg, err := config.LoadLines(configPath)
	if err != nil {
		logger.Warn("config not loaded, using defaults", "path", configPath, "err", err)
		cfg = config.DefaultLinesConfig()
	}
	if difficultyPreset != "" {
		config.ApplyLinesPreset(&cfg, difficultyPreset)
	}
	if g.variant == VariantMini {
		config.ApplyMiniVariant(&cfg)
	}
	return cfg
}

// newBoard abandons the current board and starts another with the same
// config. The whole board blinks before play resumes.
func (g *Game) newBoard() {
	g.ctrl.Restart()
	g.cache.Purge()
	g.dragging = false
	g.lastResult = core.MoveResult{}
	g.paused = false
	g.startRestartBlink()
	logger.Debug("board restarted", "game", g.ID())
}

// OnScoreDelta implements core.ScoreListener.
func (g *Game) OnScoreDelta(delta int) {
	g.gain = delta
	g.gainTicks = g.rt.TickDuration(1500)
	if s := g.ctrl.Score(); s > g.best {
		g.best = s
	}
}

// OnReset implements core.ScoreListener.
func (g *Game) OnReset() {
	g.gain = 0
	g.gainTicks = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++
	if g.gainTicks > 0 {
		g.gainTicks--
	}

	if g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionNewGame) {
		g.newBoard()
		return platformcore.StepResult{State: g.State(), Restarted: true}
	}

	if g.ctrl.GameOver() && !g.anim.active() {
		if in.Has(platformcore.ActionRestart) {
			g.newBoard()
			return platformcore.StepResult{State: g.State(), Restarted: true}
		}
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	if g.anim.active() {
		g.stepAnimation()
		return platformcore.StepResult{State: g.State()}
	}

	g.handleInput(in)
	return platformcore.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.ctrl.Score(),
		GameOver: g.ctrl.GameOver() && !g.anim.active(),
		Paused:   g.paused || g.tooSmall,
		Busy:     g.anim.active(),
	}
}

// Moves returns the number of moves made on the current board.
func (g *Game) Moves() int { return g.ctrl.Moves() }

// Controller exposes the engine, for tests and the simulator.
func (g *Game) Controller() *core.Controller { return g.ctrl }
