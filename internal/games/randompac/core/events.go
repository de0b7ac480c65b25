package core

import (
	"fmt"
	"time"

	"github.com/vovakirdan/randompac/internal/prng"
)

// EventKind identifies something that happened during a tick.
type EventKind uint8

const (
	EventDot EventKind = iota
	EventPower
	EventGhostEaten
	EventExtraLife
	EventLifeLost
	EventPowerEnded
	EventLevelCleared
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventDot:
		return "dot"
	case EventPower:
		return "power"
	case EventGhostEaten:
		return "ghost-eaten"
	case EventExtraLife:
		return "extra-life"
	case EventLifeLost:
		return "life-lost"
	case EventPowerEnded:
		return "power-ended"
	case EventLevelCleared:
		return "level-cleared"
	case EventGameOver:
		return "game-over"
	default:
		return fmt.Sprintf("event(%d)", uint8(k))
	}
}

// Event records one occurrence during a tick.
type Event struct {
	Kind   EventKind
	Tile   Coord  // Where it happened, when relevant
	Points int    // Points awarded, if any
	Ghost  string // Ghost involved, if any
}

// StepResult contains information about what happened during a simulation step.
type StepResult struct {
	Now    float64 // Simulation clock after the step, in ms
	Events []Event
	Over   bool
	Won    bool
}

// Has reports whether the step produced an event of kind k.
func (r StepResult) Has(k EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == k {
			return true
		}
	}
	return false
}

// Outcome is the summary of a finished (or abandoned) session.
type Outcome struct {
	Score      int
	Duration   time.Duration // Simulated time
	Won        bool
	Algorithm  prng.Algorithm
	Seed       uint64
	Difficulty string
	Level      string
}
