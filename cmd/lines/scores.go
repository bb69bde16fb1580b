package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lines/internal/registry"
	"github.com/vovakirdan/tui-lines/internal/storage"
)

var (
	flagClear bool
	flagLimit int
	flagAll   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top scores and run statistics for a board variant
(default: lines), or for every variant with --all.

Examples:
  lines scores
  lines scores lines_mini --limit 20
  lines scores --all
  lines scores lines --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores of the game")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "Show statistics for every game")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := "lines"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fail("unknown game %q\nRun 'lines list' to see available boards.", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagAll {
		if err := printAllStats(store); err != nil {
			store.Close()
			fail("%v", err)
		}
		return
	}

	game, err := registry.Create(gameID)
	if err != nil {
		store.Close()
		fail("creating game: %v", err)
	}
	title := game.Title()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			store.Close()
			fail("%v", err)
		}
		fmt.Printf("Cleared scores for %s.\n", title)
		return
	}

	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		store.Close()
		fail("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'lines play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %s\n", "Rank", "Score", "Moves", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %s\n", "----", "-----", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-5d  %s\n", i+1, entry.Score, entry.Moves, dateStr)
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Runs: %d  Average: %.0f  Total moves: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalMoves)
	} else {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
}

func printAllStats(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	fmt.Printf("  %-12s  %-5s  %-8s  %-8s  %s\n", "Game", "Runs", "Best", "Average", "Last played")
	for _, g := range registry.List() {
		s, ok := all[g.ID]
		if !ok {
			fmt.Printf("  %-12s  %-5d  %-8s  %-8s  %s\n", g.ID, 0, "-", "-", "never")
			continue
		}
		fmt.Printf("  %-12s  %-5d  %-8d  %-8.0f  %s\n", g.ID, s.GamesCount, s.HighScore, s.AvgScore,
			s.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
