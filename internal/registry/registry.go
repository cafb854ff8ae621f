// Package registry maps game IDs to constructors. Game packages register
// from init, so the terminal host and CLI only need a blank import.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/glptrst/platform-game/internal/core"
)

// Game is what the terminal host drives. Implementations keep to pure
// logic: the host maps keys, paces ticks and renders the screen.
type Game interface {
	ID() string
	Title() string

	// Reset starts a fresh game. It is called before the first Step and
	// on every restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick with the keys pressed since the last.
	Step(in core.InputFrame) core.StepResult

	Render(dst *core.Screen)
	State() core.GameState
}

// LevelReporter is implemented by games that play a sequence of levels.
// Outcomes drains the level attempts finished since the previous call.
type LevelReporter interface {
	Outcomes() []core.LevelOutcome
}

type GameInfo struct {
	ID    string
	Title string
}

type Factory func() Game

type registration struct {
	GameInfo
	create Factory
}

var registry = struct {
	sync.RWMutex
	games map[string]registration
}{games: map[string]registration{}}

// Register makes a game available under id. Registering an id twice panics.
func Register(id string, f Factory) {
	title := f().Title()

	registry.Lock()
	defer registry.Unlock()
	if _, dup := registry.games[id]; dup {
		panic(fmt.Sprintf("registry: game %q registered twice", id))
	}
	registry.games[id] = registration{GameInfo{ID: id, Title: title}, f}
}

// List returns the registered games ordered by ID.
func List() []GameInfo {
	registry.RLock()
	defer registry.RUnlock()

	out := make([]GameInfo, 0, len(registry.games))
	for _, r := range registry.games {
		out = append(out, r.GameInfo)
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// Create returns a new instance of the game registered as id.
func Create(id string) (Game, error) {
	registry.RLock()
	r, ok := registry.games[id]
	registry.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return r.create(), nil
}

func Exists(id string) bool {
	registry.RLock()
	defer registry.RUnlock()
	_, ok := registry.games[id]
	return ok
}
