package randompac

import (
	pac "github.com/vovakirdan/randompac/internal/games/randompac/core"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
	StateWin      GameStateType = "win"
	StateFailed   GameStateType = "failed"
)

// GhostSnapshot is the visible state of one ghost.
type GhostSnapshot struct {
	Name  string
	Tile  pac.Coord
	Pos   pac.Vec
	State pac.GhostState
}

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Now       float64
	Score     int
	Lives     int
	Remaining int
	Player    pac.Coord
	PlayerPos pac.Vec
	Dir       pac.Dir
	Ghosts    []GhostSnapshot
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{State: StateFailed}
	}
	sim := g.session.Sim

	state := StatePlaying
	switch {
	case sim.Won():
		state = StateWin
	case sim.Over():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	ghosts := make([]GhostSnapshot, 0, len(sim.Ghosts()))
	for _, gh := range sim.Ghosts() {
		ghosts = append(ghosts, GhostSnapshot{Name: gh.Name, Tile: gh.Tile, Pos: gh.Pos, State: gh.State()})
	}

	p := sim.Player()
	return Snapshot{
		Tick:      g.tick,
		Now:       sim.Now(),
		Score:     sim.Score(),
		Lives:     sim.Lives(),
		Remaining: sim.Grid().Remaining(),
		Player:    p.Tile,
		PlayerPos: p.Pos,
		Dir:       p.Dir,
		Ghosts:    ghosts,
		State:     state,
	}
}
