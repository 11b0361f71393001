// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/fruit-slicer/internal/core"
)

// Game is the interface the platform drives. Games contain pure logic with
// no Bubble Tea dependency; the platform owns the frame loop, input mapping
// and terminal output.
type Game interface {
	// ID returns a unique identifier (e.g., "normal"). Used for CLI
	// commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a new round. The RuntimeConfig provides screen
	// dimensions and the RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Timestep returns the fixed physics step and the longest frame the
	// platform should feed into the step accumulator.
	Timestep() (dt, maxFrame time.Duration)

	// PhysicsTick advances the simulation by one fixed step. t is the
	// simulated time at the start of the step, both in seconds.
	PhysicsTick(t, dt float64)

	// RenderTick draws one frame into dst. It runs exactly once per frame,
	// after that frame's physics ticks.
	RenderTick(frame core.Frame, dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func() (Game, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	order     = make(map[string]int)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered, or if the
// factory fails: a game that cannot be built must stop the program at
// startup rather than at the first frame.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	// Get title by creating a temporary instance
	g, err := f()
	if err != nil {
		panic(fmt.Sprintf("registry: game %q failed to build: %v", id, err))
	}

	factories[id] = f
	titles[id] = g.Title()
	order[id] = len(order)
}

// List returns information about all registered games in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return order[result[i].ID] < order[result[j].ID]
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered or the factory fails.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	g, err := f()
	if err != nil {
		return nil, fmt.Errorf("registry: cannot create game %q: %w", id, err)
	}
	return g, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
