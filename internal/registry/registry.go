// Package registry maps game IDs to constructors so the CLI can start a
// game by name. Games add themselves from init.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// Game is what a front end drives: one Step per tick, Render when a tick
// asks for a redraw. Implementations hold no front-end state.
type Game interface {
	ID() string
	Title() string

	// Reset starts a fresh round sized and seeded from cfg.
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// ErrUnknownGame is returned by Create for an ID nobody registered.
var ErrUnknownGame = errors.New("unknown game")

// Info describes a registered game for listings.
type Info struct {
	ID      string
	Title   string
	Summary string
}

type entry struct {
	info    Info
	newGame func() Game
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game. It panics on an empty or duplicate ID.
func Register(info Info, newGame func() Game) {
	mu.Lock()
	defer mu.Unlock()

	if info.ID == "" {
		panic("registry: empty game id")
	}
	if _, ok := entries[info.ID]; ok {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	entries[info.ID] = entry{info: info, newGame: newGame}
}

// List returns every registered game sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Info, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b Info) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Create builds a new instance of the game registered as id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.newGame(), nil
}
