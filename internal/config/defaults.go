package config

import (
	_ "embed"
)

//go:embed defaults/lines.yaml
var defaultLinesYAML []byte

// DefaultLinesConfig returns the classic 9×9 configuration.
func DefaultLinesConfig() LinesConfig {
	return LinesConfig{
		Board: BoardConfig{
			Size: 9,
		},
		Rules: RulesConfig{
			LineLength:    5,
			ScorePerPiece: 150,
			Colors:        5,
		},
		Spawn: SpawnConfig{
			WaveSize: 3,
			Hints:    true,
		},
		Animation: AnimationConfig{
			Enabled:    true,
			StepMS:     100,
			BlinkMS:    150,
			BlinkCount: 5,
		},
	}
}
