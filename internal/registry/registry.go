// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the console
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/handheld-arcade/internal/core"
)

// Game is the interface every console game implements.
// Implementations wrap a pure engine; the platform handles input mapping,
// timing and terminal output.
type Game interface {
	// ID returns a unique identifier (e.g., "snake"), used for CLI
	// commands and score storage.
	ID() string

	// Title returns a human-readable name for the console selector.
	Title() string

	// Reset starts a fresh round and shows the start screen.
	// The best score survives Reset.
	Reset(cfg core.RuntimeConfig)

	// Step advances by one platform tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the panel and HUD into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// Display returns the panel bitmap of the last Render.
	Display() *core.Bitmap

	// State returns the current game state.
	State() core.GameState

	// SetHighScore seeds the best score, typically from the score store.
	SetHighScore(score int)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
	Slot  int // Position on the console selector
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry at the given selector slot.
// Panics if a game with the same ID is already registered.
func Register(id string, slot int, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	infos[id] = GameInfo{ID: id, Title: f().Title(), Slot: slot}
}

// List returns all registered games in selector order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Slot != result[j].Slot {
			return result[i].Slot < result[j].Slot
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Cycle returns the id delta positions away from id on the selector, wrapping
// at both ends. An unknown id yields the first game.
func Cycle(id string, delta int) string {
	games := List()
	if len(games) == 0 {
		return ""
	}
	for i, g := range games {
		if g.ID == id {
			return games[core.Wrap(i+delta, len(games))].ID
		}
	}
	return games[0].ID
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

// Info returns the metadata of a registered game.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := infos[id]
	return info, ok
}
