// Package registry keeps the game factories the platform can launch.
// Games register themselves in init() functions, so the CLI and the SSH
// server discover them without importing game internals.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/sky-jumper/internal/core"
)

// Game is what the terminal platform drives. Implementations hold pure
// logic; the platform owns timing, input capture and drawing to the
// terminal.
type Game interface {
	// ID is the stable identifier used by the CLI and score storage.
	ID() string

	// Title is the display name.
	Title() string

	// Reset prepares a fresh session for the given screen and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into a pre-cleared screen.
	Render(dst *core.Screen)

	// State reports score and mode flags.
	State() core.GameState
}

// BestKeeper is implemented by games that track a best score across runs
// and can have it restored from persistence.
type BestKeeper interface {
	RestoreBest(best int)
}

// RunInfo describes the run that just ended.
type RunInfo struct {
	Seed    uint32
	Ruleset string
	Ticks   int
	Cause   string
}

// RunReporter is implemented by games that can describe their last run
// for the score history.
type RunReporter interface {
	LastRun() RunInfo
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory. It panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a game by ID.
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
