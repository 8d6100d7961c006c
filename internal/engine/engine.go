// Package engine defines the contract shared by the practice games and a
// registry of engine factories. Games register themselves in init()
// functions, allowing the dispatcher and CLI to discover and instantiate
// engines without hardcoded dependencies.
package engine

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vslusny/pitchcoach/internal/core"
)

// Engine is the contract every practice game implements.
// Engines contain pure game logic with no rendering dependencies;
// the platform handles event delivery and display.
type Engine interface {
	// Name returns the fixed identifier used as the ledger key
	// (e.g., "tic_tac_toe").
	Name() string

	// HandlePitch consumes one pitch event and mutates game state.
	// Milestones (a win, a completed run, a hit target) are persisted
	// through the injected ScoreSaver. Unclassified pitches are ignored
	// by zone-dependent rules, never rejected with an error.
	HandlePitch(ev core.PitchEvent)

	// Reset returns the engine to its initial state. Persisted history
	// is unaffected.
	Reset()
}

// ScoreSaver persists a milestone score for a game. Implemented by the
// ledger store; fakes stand in for it in engine tests.
type ScoreSaver interface {
	SaveScore(gameID string, score int, at time.Time)
}

// Deps carries the collaborators injected into every engine.
type Deps struct {
	Saver ScoreSaver
	Rand  core.Rand
	Now   core.Clock
}

// Info contains metadata about a registered engine.
type Info struct {
	ID    string
	Title string
}

// Factory creates a new engine instance with the given dependencies.
type Factory func(deps Deps) Engine

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds an engine factory to the registry.
// Typically called from a game package's init() function.
// Panics if an engine with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("engine: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered engines, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates an engine by its ID.
// Returns an error if the ID is not registered.
func Create(id string, deps Deps) (Engine, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("engine: unknown game %q", id)
	}

	return f(deps), nil
}

// Exists checks if an engine with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
