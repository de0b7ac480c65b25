// Package registry maps game IDs to factories. Games register themselves
// from init(), so the CLI and the SSH server only need a blank import to
// serve them.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/randompac/internal/core"
)

// Game is what the terminal platform drives: a fixed-tick simulation that
// renders into a character buffer. Implementations never import Bubble Tea.
type Game interface {
	// ID is the stable identifier stored with every recorded session.
	ID() string

	// Title is shown in the HUD and in server logs.
	Title() string

	// Reset starts a fresh round. The platform calls it once before the
	// first tick and whenever the player restarts.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick with the actions gathered since the
	// previous tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	State() core.GameState
}

// OutcomeReporter is implemented by games whose finished sessions are
// recorded. Outcome reports false while the session is still running.
type OutcomeReporter interface {
	Outcome() (core.Outcome, bool)
}

// Warner is implemented by games that can start in a degraded mode, such as
// a fallback level. The platform logs the warnings after Reset.
type Warner interface {
	Warnings() []error
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new, not yet Reset, game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory. It panics on a duplicate ID.
// The factory is called once to read the title, so it must be cheap.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{
		info:    GameInfo{ID: id, Title: f().Title()},
		factory: f,
	}
}

// List returns every registered game sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Lookup returns the metadata of a registered game.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create instantiates a game by ID. The error names the available IDs.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		ids := make([]string, 0)
		for _, info := range List() {
			ids = append(ids, info.ID)
		}
		return nil, fmt.Errorf("registry: unknown game %q (available: %s)", id, strings.Join(ids, ", "))
	}
	return e.factory(), nil
}
