package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/randompac/internal/prng"
)

// Level is a playable board: the grid plus where everyone starts.
type Level struct {
	Name        string
	Grid        *Grid
	PlayerSpawn Coord
	Home        Coord // Where eaten ghosts return
	Ghosts      []GhostSpec
}

// Setup is everything needed to start a session.
type Setup struct {
	Level      Level
	Params     Params
	Algorithm  prng.Algorithm
	Seed       uint64 // 0 derives a seed from the clock
	PerGhost   bool   // One generator per ghost (seed+i) instead of one shared
	Difficulty string
}

// ErrInvalidSetup is returned when a session cannot start from a Setup.
var ErrInvalidSetup = errors.New("core: invalid setup")

// Sim is the tick orchestrator. It owns the grid, the actors, the power
// window and the chain counter. Sim is not safe for concurrent use.
type Sim struct {
	setup  Setup
	params Params
	seed   uint64

	grid   *Grid
	player *Player
	ghosts []*Ghost

	now         float64
	powerActive bool
	powerUntil  float64
	chain       int

	message      string
	messageUntil float64

	over bool
	won  bool
}

// NewSim validates the setup and builds a session. The level grid is cloned,
// so one Level can seed many sessions.
func NewSim(s Setup) (*Sim, error) {
	lv := s.Level
	if lv.Grid == nil {
		return nil, fmt.Errorf("%w: level %q has no grid", ErrInvalidSetup, lv.Name)
	}
	if Blocked(lv.Grid, lv.PlayerSpawn, 0) {
		return nil, fmt.Errorf("%w: player spawn %s is not walkable", ErrInvalidSetup, lv.PlayerSpawn)
	}
	if Blocked(lv.Grid, lv.Home, CapPassDoors) {
		return nil, fmt.Errorf("%w: ghost home %s is blocked", ErrInvalidSetup, lv.Home)
	}
	for _, gs := range lv.Ghosts {
		if Blocked(lv.Grid, gs.Spawn, CapPassDoors) {
			return nil, fmt.Errorf("%w: ghost %q spawn %s is blocked", ErrInvalidSetup, gs.Name, gs.Spawn)
		}
	}
	if s.Params.Geometry.TileSize <= 0 || s.Params.Geometry.ReferenceTickMs <= 0 {
		return nil, fmt.Errorf("%w: geometry must be positive", ErrInvalidSetup)
	}

	seed := s.Seed
	if seed == 0 {
		seed = prng.DefaultSeed(s.Algorithm, time.Now())
	}
	shared, err := prng.New(s.Algorithm, seed)
	if err != nil {
		return nil, err
	}

	sim := &Sim{
		setup:  s,
		params: s.Params,
		seed:   seed,
		grid:   lv.Grid.Clone(),
	}
	geo := s.Params.Geometry
	sim.player = NewPlayer(geo, lv.PlayerSpawn, s.Params.Lives)
	for i, gs := range lv.Ghosts {
		rng := shared
		if s.PerGhost && i > 0 {
			if rng, err = prng.New(s.Algorithm, seed+uint64(i)); err != nil {
				return nil, err
			}
		}
		sim.ghosts = append(sim.ghosts, NewGhost(geo, gs, lv.Home, sim.player, rng))
	}
	return sim, nil
}

// Step advances the session by dt milliseconds. The order is fixed: clock,
// player, ghosts, pellet, collisions, power expiry, level clear.
func (s *Sim) Step(in Input, dt float64) StepResult {
	if s.over {
		return StepResult{Now: s.now, Over: true, Won: s.won}
	}

	res := StepResult{}
	s.now += dt
	if s.message != "" && s.now >= s.messageUntil {
		s.message = ""
	}

	speed := s.params.PlayerSpeed
	if s.powerActive {
		speed *= s.params.PowerSpeedFactor
	}
	s.player.Steer(in, s.grid)
	s.player.Step(s.grid, dt, speed)

	for _, g := range s.ghosts {
		g.Update(s.grid, &s.params, s.now, dt)
	}

	s.eatPellet(&res)
	s.resolveCollisions(&res)

	if !s.over && s.powerActive && s.now > s.powerUntil {
		s.powerActive = false
		res.Events = append(res.Events, Event{Kind: EventPowerEnded})
	}

	if !s.over && s.grid.Remaining() == 0 {
		s.over = true
		s.won = true
		s.say("Level clear!")
		res.Events = append(res.Events, Event{Kind: EventLevelCleared})
	}

	res.Now = s.now
	res.Over = s.over
	res.Won = s.won
	return res
}

func (s *Sim) eatPellet(res *StepResult) {
	at := s.player.Tile
	tile := s.grid.TileAt(at)
	if !s.grid.Consume(at) {
		return
	}

	switch tile {
	case TileDot:
		s.award(s.params.DotScore, res)
		res.Events = append(res.Events, Event{Kind: EventDot, Tile: at, Points: s.params.DotScore})
	case TilePower:
		s.award(s.params.PowerScore, res)
		s.chain = 0
		s.powerActive = true
		s.powerUntil = s.now + s.params.FrenzyMs
		for _, g := range s.ghosts {
			g.Frighten(s.grid, s.powerUntil)
		}
		res.Events = append(res.Events, Event{Kind: EventPower, Tile: at, Points: s.params.PowerScore})
	}
}

func (s *Sim) resolveCollisions(res *StepResult) {
	radius := s.params.CaptureRadius * s.params.Geometry.TileSize
	for _, g := range s.ghosts {
		if g.Pos.Dist(s.player.Pos) >= radius {
			continue
		}
		switch g.State() {
		case StateFrightened:
			s.chain++
			points := s.params.GhostScoreBase << (s.chain - 1)
			s.award(points, res)
			g.MarkEaten()
			s.say(fmt.Sprintf("+%d", points))
			res.Events = append(res.Events, Event{Kind: EventGhostEaten, Tile: g.Tile, Points: points, Ghost: g.Name})
		case StateEaten:
		default:
			s.loseLife(g, res)
			return
		}
	}
}

func (s *Sim) loseLife(by *Ghost, res *StepResult) {
	left := s.player.LoseLife()
	s.chain = 0
	s.powerActive = false
	res.Events = append(res.Events, Event{Kind: EventLifeLost, Tile: s.player.Tile, Ghost: by.Name})

	if left <= 0 {
		s.over = true
		s.say("Game over")
		res.Events = append(res.Events, Event{Kind: EventGameOver})
		return
	}
	s.say("Ouch!")
	s.resetPositions()
}

func (s *Sim) resetPositions() {
	s.player.Respawn()
	for _, g := range s.ghosts {
		g.Reset(s.now)
	}
}

func (s *Sim) award(points int, res *StepResult) {
	if s.player.AddScore(points, s.params.ExtraLifeAt, s.params.MaxLives) {
		s.say("Extra life!")
		res.Events = append(res.Events, Event{Kind: EventExtraLife})
	}
}

func (s *Sim) say(msg string) {
	s.message = msg
	s.messageUntil = s.now + s.params.MessageMs
}

// Score returns the player's score.
func (s *Sim) Score() int { return s.player.Score() }

// Lives returns the player's remaining lives.
func (s *Sim) Lives() int { return s.player.Lives() }

// Message returns the latest HUD message, or "" once it has expired.
func (s *Sim) Message() string { return s.message }

// PowerActive reports whether a power window is open.
func (s *Sim) PowerActive() bool { return s.powerActive }

// PowerRemaining returns the milliseconds left in the power window.
func (s *Sim) PowerRemaining() float64 {
	if !s.powerActive {
		return 0
	}
	return max(s.powerUntil-s.now, 0)
}

// Chain returns the number of ghosts eaten in the current power window.
func (s *Sim) Chain() int { return s.chain }

// Over reports whether the session has ended.
func (s *Sim) Over() bool { return s.over }

// Won reports whether the level was cleared.
func (s *Sim) Won() bool { return s.won }

// Now returns the simulation clock in milliseconds.
func (s *Sim) Now() float64 { return s.now }

// Seed returns the effective seed, after default derivation.
func (s *Sim) Seed() uint64 { return s.seed }

// Params returns the session tuning.
func (s *Sim) Params() Params { return s.params }

// Level returns the level the session was built from.
func (s *Sim) Level() Level { return s.setup.Level }

// Grid returns the live grid. Callers must not mutate it.
func (s *Sim) Grid() *Grid { return s.grid }

// Player returns the player.
func (s *Sim) Player() *Player { return s.player }

// Ghosts returns the ghosts in roster order.
func (s *Sim) Ghosts() []*Ghost { return s.ghosts }

// Outcome summarizes the session so far.
func (s *Sim) Outcome() Outcome {
	return Outcome{
		Score:      s.player.Score(),
		Duration:   time.Duration(s.now * float64(time.Millisecond)),
		Won:        s.won,
		Algorithm:  s.setup.Algorithm,
		Seed:       s.seed,
		Difficulty: s.setup.Difficulty,
		Level:      s.setup.Level.Name,
	}
}
