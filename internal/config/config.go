// Package config loads the YAML configuration of the Lines game and
// applies difficulty presets.
package config

import (
	"errors"
	"fmt"
	"strings"

	linescore "github.com/vovakirdan/tui-lines/internal/games/lines/core"
)

// LinesConfig contains all configuration for a Lines board.
type LinesConfig struct {
	Board     BoardConfig     `yaml:"board"`
	Rules     RulesConfig     `yaml:"rules"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Animation AnimationConfig `yaml:"animation"`
}

// BoardConfig defines the board dimensions.
type BoardConfig struct {
	Size int `yaml:"size"` // Board is Size×Size cells
}

// RulesConfig defines clearing and scoring.
type RulesConfig struct {
	LineLength    int `yaml:"line_length"`     // Minimum run that clears
	ScorePerPiece int `yaml:"score_per_piece"` // Points per cleared piece beyond the first
	Colors        int `yaml:"colors"`          // Palette size, 1..5
}

// SpawnConfig defines how new pieces arrive.
type SpawnConfig struct {
	WaveSize int  `yaml:"wave_size"` // Pieces per turn
	Hints    bool `yaml:"hints"`     // Show the next wave on the board
}

// AnimationConfig defines presentation timing in milliseconds.
type AnimationConfig struct {
	Enabled    bool `yaml:"enabled"`
	StepMS     int  `yaml:"step_ms"`     // Per-cell delay while a piece travels
	BlinkMS    int  `yaml:"blink_ms"`    // Half-period of the clear blink
	BlinkCount int  `yaml:"blink_count"` // Number of blink phases
}

// Validate checks ranges that the engine does not check itself.
func (c LinesConfig) Validate() error {
	var errs []error
	if c.Animation.StepMS < 0 || c.Animation.BlinkMS < 0 || c.Animation.BlinkCount < 0 {
		errs = append(errs, fmt.Errorf("animation timings must not be negative"))
	}
	if c.Board.Size > 26 {
		errs = append(errs, fmt.Errorf("board size %d does not fit a terminal", c.Board.Size))
	}
	return errors.Join(errs...)
}

// EngineRules converts the config into engine rules and validates them.
func (c LinesConfig) EngineRules() (linescore.Rules, error) {
	r := linescore.Rules{
		Size:          c.Board.Size,
		Colors:        c.Rules.Colors,
		LineLength:    c.Rules.LineLength,
		ScorePerPiece: c.Rules.ScorePerPiece,
		WaveSize:      c.Spawn.WaveSize,
		Hints:         c.Spawn.Hints,
	}
	if err := r.Validate(); err != nil {
		return r, fmt.Errorf("config: %w", err)
	}
	return r, nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty accepts a preset name; the empty string means no preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyLinesPreset adjusts the config for a difficulty preset.
// "fixed" keeps the loaded config untouched.
func ApplyLinesPreset(cfg *LinesConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.Colors = 4
		cfg.Spawn.WaveSize = 3
		cfg.Spawn.Hints = true
	case DifficultyNormal:
		cfg.Rules.Colors = 5
		cfg.Spawn.WaveSize = 3
		cfg.Spawn.Hints = true
	case DifficultyHard:
		cfg.Rules.Colors = 5
		cfg.Spawn.WaveSize = 4
		cfg.Spawn.Hints = false
	}
}

// ApplyMiniVariant shrinks the board to 7×7 with lines of four.
func ApplyMiniVariant(cfg *LinesConfig) {
	cfg.Board.Size = 7
	cfg.Rules.LineLength = 4
}
