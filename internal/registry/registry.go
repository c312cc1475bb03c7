// Package registry maps mode IDs ("panelpon", "panelpon_demo",
// "panelpon_vs") to factories. The panelpon package fills it from init, and
// the CLI and menu look modes up here by ID.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-panelpon/internal/core"
)

// Game is one playable mode. Implementations never touch the terminal;
// the tui package feeds them key actions once per tick and prints whatever
// they draw.
type Game interface {
	// ID is the registry key, also used as the match ID prefix in logs.
	ID() string

	// Title is the menu label, e.g. "Panel Pon vs CPU".
	Title() string

	// Reset starts a new match. The seed in cfg fixes the opening stack
	// and every CPU decision.
	Reset(cfg core.RuntimeConfig)

	// Step runs one tick with the actions pressed since the last tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the boards and sidebar into dst, clearing it first.
	Render(dst *core.Screen)

	// State reports score, pause and game over for the shell.
	State() core.GameState
}

// GameInfo is what the menu and `panelpon list` show for a mode.
type GameInfo struct {
	ID    string
	Title string
}

// ErrUnknownGame is returned by Create for IDs nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Factory builds a fresh, not yet Reset, game for one mode.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a mode under id. It builds one throwaway instance to read
// the title the menu displays. Registering an id twice panics, since it
// means two packages claim the same mode.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	g := f()
	titles[id] = g.Title()
}

// List returns every mode ordered by ID, so "panelpon" comes before its
// demo and versus variants.
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

	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})

	return result
}

// Create builds a new game for the mode id. Unknown ids wrap ErrUnknownGame.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}

	return f(), nil
}

// Exists reports whether id names a registered mode.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
