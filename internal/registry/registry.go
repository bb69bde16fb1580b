// Package registry keeps the table of playable games. Game packages
// register a factory from init(), so the CLI and menus can list and
// create games by ID without importing them directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-lines/internal/core"
)

// Game is the contract between a game and the platform.
// Games hold pure logic; the platform owns input mapping, timing and the terminal.
type Game interface {
	// ID returns a unique identifier, used on the command line and as
	// the score table key.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh board. Called once at start and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns the current score and flags.
	State() core.GameState
}

// Describer is implemented by games that provide a one-line summary.
type Describer interface {
	Description() string
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
	}
	infos[id] = info
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
