package core

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/randompac/internal/prng"
)

// Behavior selects how a ghost picks its direction at a tile.
type Behavior uint8

const (
	BehaviorChaser Behavior = iota // Greedy pursuit of the target's tile
	BehaviorRandom                 // One PRNG draw per decision
)

func (b Behavior) String() string {
	switch b {
	case BehaviorChaser:
		return "chaser"
	case BehaviorRandom:
		return "random"
	default:
		return fmt.Sprintf("behavior(%d)", uint8(b))
	}
}

// ParseBehavior maps configuration text to a Behavior.
func ParseBehavior(s string) (Behavior, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "chaser", "chase":
		return BehaviorChaser, nil
	case "random", "":
		return BehaviorRandom, nil
	}
	return 0, fmt.Errorf("core: unknown ghost behavior %q", s)
}

// GhostState is the state of the ghost state machine.
type GhostState uint8

const (
	StateNormal GhostState = iota
	StateFrightened
	StateEaten
	StateInHouse
	StateLeaving
	StateRoaming
)

func (s GhostState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateFrightened:
		return "frightened"
	case StateEaten:
		return "eaten"
	case StateInHouse:
		return "in-house"
	case StateLeaving:
		return "leaving"
	case StateRoaming:
		return "roaming"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Target is what a chaser pursues.
type Target interface {
	TileCoord() Coord
}

// GhostSpec describes one ghost of a level roster.
type GhostSpec struct {
	Name      string
	Behavior  Behavior
	Spawn     Coord
	Dir       Dir
	ReleaseMs float64 // Time spent in the house after each reset; 0 starts Roaming
}

// Ghost is an autonomous actor driven by its state machine.
type Ghost struct {
	Mover

	Name     string
	Behavior Behavior
	Home     Coord

	spec   GhostSpec
	state  GhostState
	target Target
	rng    prng.Generator

	frightenedUntil float64 // Valid while Frightened
	releaseAt       float64 // Valid while InHouse
	respawnAt       float64 // Valid while Eaten and resting
	resting         bool    // Eaten and waiting on the home tile

	decided bool // Direction already chosen for the current tile
}

// NewGhost creates a ghost from its spec. Ghosts always carry CapPassDoors.
func NewGhost(geo Geometry, spec GhostSpec, home Coord, target Target, rng prng.Generator) *Ghost {
	g := &Ghost{
		Mover:    NewMover(geo, spec.Spawn, spec.Dir, CapPassDoors),
		Name:     spec.Name,
		Behavior: spec.Behavior,
		Home:     home,
		spec:     spec,
		target:   target,
		rng:      rng,
	}
	g.Reset(0)
	return g
}

// State returns the current state.
func (g *Ghost) State() GhostState { return g.state }

// FrightenedUntil returns the end of the frightened window. Only meaningful
// while the ghost is Frightened.
func (g *Ghost) FrightenedUntil() float64 { return g.frightenedUntil }

// Reset puts the ghost back on its spawn tile in its initial state.
func (g *Ghost) Reset(now float64) {
	g.Teleport(g.spec.Spawn)
	g.Dir = g.spec.Dir
	g.Next = g.spec.Dir
	g.resting = false
	g.decided = false
	if g.spec.ReleaseMs > 0 {
		g.state = StateInHouse
		g.releaseAt = now + g.spec.ReleaseMs
		return
	}
	g.state = StateRoaming
}

// Frighten applies a power pellet broadcast. Normal and Roaming ghosts turn
// Frightened and reverse when they can; Frightened ghosts get the new
// deadline. Other states ignore it.
func (g *Ghost) Frighten(grid *Grid, until float64) {
	switch g.state {
	case StateNormal, StateRoaming:
		g.state = StateFrightened
		if g.TryReverse(grid) {
			g.decided = false
		}
	case StateFrightened:
	default:
		return
	}
	g.frightenedUntil = until
}

// MarkEaten sends the ghost home.
func (g *Ghost) MarkEaten() {
	g.state = StateEaten
	g.resting = false
	g.decided = false
}

// Update runs one tick of the state machine and moves the ghost.
func (g *Ghost) Update(grid *Grid, p *Params, now, dt float64) {
	switch g.state {
	case StateInHouse:
		if now < g.releaseAt {
			return
		}
		g.state = StateLeaving
		g.Dir = DirUp
		g.Next = DirUp
	case StateFrightened:
		if now > g.frightenedUntil {
			g.state = StateNormal
		}
	case StateEaten:
		if g.Tile == g.Home && g.Centered() {
			if !g.resting {
				g.resting = true
				g.respawnAt = now + p.RespawnMs
				g.Teleport(g.Home)
			}
			if now < g.respawnAt {
				return
			}
			g.state = StateNormal
			g.resting = false
			g.decided = false
		}
	}

	if g.state == StateLeaving {
		if !g.Centered() || (!grid.IsDoor(g.Tile.Step(DirDown)) && g.CanMove(grid, DirUp)) {
			g.Next = DirUp
			g.Step(grid, dt, g.speed(p))
			return
		}
		g.state = StateRoaming
		g.decided = false
	}

	if g.Centered() && (!g.decided || !g.CanMove(grid, g.Dir)) {
		g.Next = g.decide(grid)
		g.decided = true
	}
	if g.Step(grid, dt, g.speed(p)) {
		g.decided = false
	}
}

func (g *Ghost) speed(p *Params) float64 {
	switch g.state {
	case StateFrightened:
		return p.GhostSpeed * p.FrightenedFactor
	case StateEaten:
		return p.GhostSpeed * p.EatenFactor
	case StateInHouse:
		return 0
	}
	return p.GhostSpeed
}

// decide picks the direction to take from the current tile. Blocked ways are
// dropped, then the reverse of the current direction unless it is the only
// way left.
func (g *Ghost) decide(grid *Grid) Dir {
	var open [4]Dir
	n := 0
	for _, d := range Dirs {
		if g.CanMove(grid, d) {
			open[n] = d
			n++
		}
	}
	if n == 0 {
		return g.Dir
	}
	options := open[:n]
	if n > 1 {
		rev := g.Dir.Reverse()
		kept := make([]Dir, 0, n)
		for _, d := range options {
			if d != rev {
				kept = append(kept, d)
			}
		}
		options = kept
	}

	switch {
	case g.state == StateEaten:
		return closest(g.Tile, options, g.Home)
	case g.Behavior == BehaviorChaser && g.target != nil:
		return closest(g.Tile, options, g.target.TileCoord())
	case g.rng != nil:
		count := len(options)
		idx := int(math.Floor(g.rng.NextUnit()*float64(count))) % count
		return options[idx]
	}
	return options[0]
}

// closest returns the option whose next tile is nearest to goal by
// Manhattan distance. Ties keep the earlier option.
func closest(from Coord, options []Dir, goal Coord) Dir {
	best := options[0]
	bestDist := from.Step(best).Manhattan(goal)
	for _, d := range options[1:] {
		if dist := from.Step(d).Manhattan(goal); dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best
}
