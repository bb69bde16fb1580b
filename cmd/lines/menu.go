package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lines/internal/platform/tui"
	"github.com/vovakirdan/tui-lines/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a board from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play, Tab for high scores.
After a game ends, you return to the menu to play again.

Examples:
  lines menu
  lines menu --difficulty easy
  lines menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()
	if err := applyGameSettings(logger); err != nil {
		fail("%v", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(scoreStore(store), cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(scoreHistory(store), cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh board each time unless a seed was pinned
		runCfg := cfg
		if flagSeed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(game, scoreStore(store), runCfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
