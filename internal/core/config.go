package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickDuration converts a duration in milliseconds to a tick count,
// rounding up so short delays still take at least one tick.
func (c RuntimeConfig) TickDuration(ms int) int {
	if ms <= 0 {
		return 0
	}
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultConfig().TickRate
	}
	return (ms*rate + 999) / 1000
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
	Busy     bool // An animation is playing and input is ignored
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Restarted is set when the game started a new board on its own
	// during this tick, so the platform can reset per-run bookkeeping.
	Restarted bool
}
