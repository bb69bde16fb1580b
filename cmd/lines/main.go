// lines is the Lines board game for the terminal: move pieces along free
// paths and line up five of a color to clear them.
//
// Usage:
//
//	lines list               - List board variants
//	lines play [game]        - Play a board (default: lines)
//	lines menu               - Pick a board interactively
//	lines scores [game]      - Show high scores
//	lines simulate           - Let a robot play headless games
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 30)
//	--seed <value>     - Set RNG seed for reproducible boards
//	--db <path>        - Set database path (default: ~/.lines/scores.db)
//	--log-file <path>  - Write logs to a file
//	--debug            - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-lines/internal/games/lines"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lines",
	Short: "Lines - line up colored pieces in your terminal",
	Long: `Lines is the classic color lines puzzle for the terminal.

Pick up a piece and drop it anywhere it can walk to through free cells.
Five or more of one color in a row, column or diagonal disappear and
score points. Every move that clears nothing brings three new pieces;
the game ends when the board is full.

Available commands:
  list      - Show board variants
  play      - Play a board directly
  menu      - Interactive picker
  scores    - View high scores
  simulate  - Robot games without a terminal UI

Environment (also read from .env):
  LINES_DB, LINES_CONFIG, LINES_SEED, LINES_LOG_FILE

Examples:
  lines play
  lines play lines_mini --difficulty easy
  lines menu
  lines scores lines
  lines simulate --games 20 --robot random`,
	SilenceUsage:      true,
	PersistentPreRunE: loadEnvironment,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lines/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}
