package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-lines/internal/config"
	"github.com/vovakirdan/tui-lines/internal/core"
	"github.com/vovakirdan/tui-lines/internal/games/lines"
	"github.com/vovakirdan/tui-lines/internal/storage"
)

// Flags shared by play and menu
var (
	flagConfig     string
	flagDifficulty string
)

// envOverrides maps environment variables to the flags they set when
// the flag is not given on the command line.
var envOverrides = []struct {
	env  string
	flag string
}{
	{"LINES_DB", "db"},
	{"LINES_SEED", "seed"},
	{"LINES_LOG_FILE", "log-file"},
	{"LINES_CONFIG", "config"},
}

// loadEnvironment reads .env and applies LINES_* variables.
func loadEnvironment(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read .env: %w", err)
	}
	return applyEnv(cmd.Flags(), os.LookupEnv)
}

func applyEnv(flags *pflag.FlagSet, lookup func(string) (string, bool)) error {
	for _, o := range envOverrides {
		f := flags.Lookup(o.flag)
		if f == nil || f.Changed {
			continue
		}
		v, ok := lookup(o.env)
		if !ok || v == "" {
			continue
		}
		if err := flags.Set(o.flag, v); err != nil {
			return fmt.Errorf("invalid %s=%q: %w", o.env, v, err)
		}
	}
	return nil
}

// newLogger builds the process logger. The returned closer releases the
// log file, if one was opened.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w, closer := fallback, func() {}
	if flagLogFile != "" {
		path, err := config.ExpandHome(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "lines",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// applyGameSettings hands config and difficulty to the game package.
func applyGameSettings(logger *log.Logger) error {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	lines.SetConfigPath(flagConfig)
	lines.SetDifficultyPreset(preset)
	lines.SetLogger(logger)
	return nil
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database, or returns nil with a warning.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "db", flagDBPath, "err", err)
		return nil
	}
	return store
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func openStoreStrict() (*storage.Store, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, fmt.Errorf("could not open scores database: %w", err)
	}
	return store, nil
}
