// Package randompac provides the RandomPac maze game for the arcade
// platform: a Pac-Man variant whose ghosts are driven by a selectable
// pseudo-random generator.
package randompac

import (
	"fmt"
	"slices"
	"strings"
	"time"

	platformcore "github.com/vovakirdan/randompac/internal/core"
	pac "github.com/vovakirdan/randompac/internal/games/randompac/core"
	"github.com/vovakirdan/randompac/internal/prng"
	"github.com/vovakirdan/randompac/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "randompac"

// Package-level variables for configuration
var (
	selectedConfigPath string
	selectedDifficulty string
	selectedAlgorithm  string
	selectedLevel      string
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	selectedConfigPath = path
}

// SetDifficulty sets the difficulty tier (classic, hard, extreme).
func SetDifficulty(tier string) {
	selectedDifficulty = tier
}

// SetAlgorithm sets the ghost random generator (lcg, middle-square, pam, xorshift).
func SetAlgorithm(alg string) {
	selectedAlgorithm = alg
}

// SetLevel sets the level: "classic", a level ID or a level file path.
func SetLevel(level string) {
	selectedLevel = level
}

// SeedFromText resolves user seed text. Empty text and "0" select the
// default derivation silently. Text that is not a non-negative integer also
// selects it, and the returned error describes what was ignored.
func SeedFromText(text string) (uint64, error) {
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}
	seed, ok := prng.ParseSeed(text)
	if !ok {
		return 0, fmt.Errorf("randompac: invalid seed %q, using the default", text)
	}
	return seed, nil
}

// CurrentOptions returns the session options selected through the setters.
func CurrentOptions(seed uint64) Options {
	return Options{
		ConfigPath: selectedConfigPath,
		Difficulty: selectedDifficulty,
		Algorithm:  selectedAlgorithm,
		Level:      selectedLevel,
		Seed:       seed,
	}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// Game adapts a Session to the registry.Game interface.
type Game struct {
	session  *Session
	runtime  platformcore.RuntimeConfig
	tickMs   float64
	tick     uint64
	paused   bool
	warnings []error
	failure  error
}

// New creates a new RandomPac game. Reset must be called before use.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "RandomPac"
}

// Reset builds a fresh session from the selected options.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.runtime = cfg
	g.tickMs = float64(cfg.TickDuration()) / float64(time.Millisecond)
	g.tick = 0
	g.paused = false

	session, warnings, err := NewSession(CurrentOptions(cfg.Seed))
	g.session = session
	g.warnings = warnings
	g.failure = err
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if g.session == nil {
		return platformcore.StepResult{State: g.State()}
	}
	sim := g.session.Sim

	if sim.Over() {
		if in.Has(platformcore.ActionRestart) || in.Has(platformcore.ActionConfirm) {
			g.Reset(g.runtime)
		}
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	sim.Step(pac.Input{
		Up:    in.Has(platformcore.ActionUp),
		Down:  in.Has(platformcore.ActionDown),
		Left:  in.Has(platformcore.ActionLeft),
		Right: in.Has(platformcore.ActionRight),
	}, g.tickMs)
	g.tick++

	return platformcore.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.session == nil {
		return platformcore.GameState{GameOver: true}
	}
	sim := g.session.Sim
	return platformcore.GameState{
		Score:    sim.Score(),
		Lives:    sim.Lives(),
		GameOver: sim.Over(),
		Won:      sim.Won(),
		Paused:   g.paused,
	}
}

// Outcome returns the session record once the game has ended.
func (g *Game) Outcome() (platformcore.Outcome, bool) {
	if g.session == nil || !g.session.Sim.Over() {
		return platformcore.Outcome{}, false
	}
	return ToPlatformOutcome(g.session.Sim.Outcome()), true
}

// Warnings returns the problems met by the last Reset.
func (g *Game) Warnings() []error {
	if g.failure != nil {
		return slices.Concat(g.warnings, []error{g.failure})
	}
	return g.warnings
}

// Session returns the running session, or nil if Reset failed.
func (g *Game) Session() *Session {
	return g.session
}

// ToPlatformOutcome converts an engine outcome into the stored record.
func ToPlatformOutcome(o pac.Outcome) platformcore.Outcome {
	return platformcore.Outcome{
		Game:       ID,
		Score:      o.Score,
		Duration:   o.Duration,
		Won:        o.Won,
		Algorithm:  string(o.Algorithm),
		Seed:       o.Seed,
		Difficulty: o.Difficulty,
		Level:      o.Level,
	}
}
