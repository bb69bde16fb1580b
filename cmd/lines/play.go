package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lines/internal/platform/tui"
	"github.com/vovakirdan/tui-lines/internal/registry"
	"github.com/vovakirdan/tui-lines/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a board",
	Long: `Start playing the given board variant (default: lines).

Controls:
  Arrows/WASD/hjkl  - Move the cursor
  Enter/Space       - Pick up a piece, drop it on a free cell
  Esc/X             - Put the piece back
  Mouse             - Click to pick up, hover to preview, click or drag to drop
  N                 - New game
  R                 - Restart after game over
  P                 - Pause
  Q/Ctrl+C          - Quit
  Ctrl+S            - Save a screenshot

Difficulty options:
  easy   - Four colors
  normal - Five colors, waves of three with a preview
  hard   - Five colors, waves of four, no preview
  fixed  - Keep the config file's values

Examples:
  lines play
  lines play lines_mini
  lines play --difficulty hard
  lines play --config ./my-lines.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
		c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "lines"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fail("unknown game %q\nRun 'lines list' to see available boards.", gameID)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()
	if err := applyGameSettings(logger); err != nil {
		fail("%v", err)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	store := openStore(logger)
	runErr := tui.Run(game, scoreStore(store), runtimeConfig(), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	if runErr != nil {
		closeLog()
		fail("running game: %v", runErr)
	}
}

// scoreStore keeps a nil *storage.Store from becoming a non-nil interface.
func scoreStore(s *storage.Store) tui.ScoreStore {
	if s == nil {
		return nil
	}
	return s
}

func scoreHistory(s *storage.Store) tui.ScoreHistory {
	if s == nil {
		return nil
	}
	return s
}
