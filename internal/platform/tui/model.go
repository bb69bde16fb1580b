package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-lines/internal/core"
	"github.com/vovakirdan/tui-lines/internal/registry"
	"github.com/vovakirdan/tui-lines/internal/storage"
)

// ScoreStore is the part of storage the game loop needs.
type ScoreStore interface {
	SaveRun(gameID, runID string, score, moves int) (int64, error)
	HighScore(gameID string) (int, error)
}

var _ ScoreStore = (*storage.Store)(nil)

// Optional game capabilities.
type (
	bestScoreSetter interface{ SetBestScore(best int) }
	moveCounter     interface{ Moves() int }
	resizer         interface{ Resize(w, h int) }
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      ScoreStore
	logger     *log.Logger
	keys       *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	runID      string
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store ScoreStore, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		runID:      uuid.NewString(),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.loadBestScore()
	m.logger.Info("run started", "game", m.game.ID(), "run", m.runID, "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

func (m Model) loadBestScore() {
	setter, ok := m.game.(bestScoreSetter)
	if !ok || m.store == nil {
		return
	}
	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("cannot load best score", "game", m.game.ID(), "err", err)
		return
	}
	setter.SetBestScore(best)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := MapMouse(msg); ok {
			m.inputFrame.AddPointer(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("run quit", "game", m.game.ID(), "run", m.runID, "score", m.gameState.Score)
		return m, tea.Quit
	}
	return m, nil
}

// handleResize keeps the board when the game can relayout, and restarts
// it otherwise.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.gameState = result.State

	if result.Restarted {
		m.runID = uuid.NewString()
		m.scoreSaved = false
		m.logger.Info("run started", "game", m.game.ID(), "run", m.runID)
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run once. Empty runs are not kept.
func (m *Model) saveRun() {
	moves := 0
	if mc, ok := m.game.(moveCounter); ok {
		moves = mc.Moves()
	}
	m.logger.Info("run finished", "game", m.game.ID(), "run", m.runID,
		"score", m.gameState.Score, "moves", moves)

	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.store.SaveRun(m.game.ID(), m.runID, m.gameState.Score, moves); err != nil {
		m.logger.Warn("cannot save run", "run", m.runID, "err", err)
		return
	}
	m.loadBestScore()
}

// saveScreenshot saves the current screen to ~/.lines/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".lines", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store ScoreStore, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // hover previews the path
	)

	_, err := p.Run()
	return err
}
