package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lines/internal/config"
	"github.com/vovakirdan/tui-lines/internal/games/lines"
)

var (
	flagGames    int
	flagRobot    string
	flagMaxMoves int
	flagMini     bool
	flagSave     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Let a robot play headless games",
	Long: `Play boards without a terminal UI using an autoplayer and report
the results. The same --seed always gives the same games.

Robots:
  greedy - Builds the longest run it can each move
  random - Plays any legal move

Examples:
  lines simulate --games 50 --seed 7
  lines simulate --robot random --mini
  lines simulate --games 5 --save --debug`,
	Run: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagGames, "games", 10, "Number of boards to play")
	simulateCmd.Flags().StringVar(&flagRobot, "robot", "greedy", "Autoplayer: greedy or random")
	simulateCmd.Flags().IntVar(&flagMaxMoves, "max-moves", 2000, "Move limit per board (0 = none)")
	simulateCmd.Flags().BoolVar(&flagMini, "mini", false, "Use the 7x7 board with lines of four")
	simulateCmd.Flags().BoolVar(&flagSave, "save", false, "Record results in the scores database")
	simulateCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	simulateCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runSimulate(cmd *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	cfg, err := config.LoadLines(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		fail("%v", err)
	}
	config.ApplyLinesPreset(&cfg, preset)
	gameID := string(lines.VariantClassic)
	if flagMini {
		config.ApplyMiniVariant(&cfg)
		gameID = string(lines.VariantMini)
	}
	rules, err := cfg.EngineRules()
	if err != nil {
		fail("%v", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := lines.Simulate(ctx, lines.SimOptions{
		Rules:    rules,
		Seed:     seed,
		Games:    flagGames,
		MaxMoves: flagMaxMoves,
		Robot:    flagRobot,
		Logger:   logger,
	})
	if err != nil && len(results) == 0 {
		closeLog()
		fail("%v", err)
	}
	if err != nil {
		logger.Warn("simulation stopped early", "err", err)
	}

	fmt.Printf("Simulated %d %s boards with the %s robot (seed %d) in %s\n\n",
		len(results), gameID, flagRobot, seed, time.Since(start).Round(time.Millisecond))
	fmt.Printf("  %-4s  %-8s  %-6s  %-7s  %s\n", "Game", "Score", "Moves", "Cleared", "End")
	total, best := 0, 0
	for _, r := range results {
		end := "full board"
		if !r.GameOver {
			end = "move limit"
		}
		fmt.Printf("  %-4d  %-8d  %-6d  %-7d  %s\n", r.Game, r.Score, r.Moves, r.Cleared, end)
		total += r.Score
		best = max(best, r.Score)
	}
	if len(results) > 0 {
		fmt.Printf("\nBest: %d  Average: %.1f\n", best, float64(total)/float64(len(results)))
	}

	if flagSave {
		saveSimulation(gameID, results)
	}
}

func saveSimulation(gameID string, results []lines.SimResult) {
	store, err := openStoreStrict()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return
	}
	defer store.Close()
	saved := 0
	for _, r := range results {
		if r.Score <= 0 {
			continue
		}
		if _, err := store.SaveRun(gameID, "", r.Score, r.Moves); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			continue
		}
		saved++
	}
	fmt.Printf("Saved %d runs to %s\n", saved, flagDBPath)
}
