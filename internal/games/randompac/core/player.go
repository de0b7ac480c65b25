package core

// Input is the directional state sampled once per tick.
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}

// Dir returns the requested direction. When several keys are held the first
// of Up, Down, Left, Right wins.
func (in Input) Dir() (Dir, bool) {
	switch {
	case in.Up:
		return DirUp, true
	case in.Down:
		return DirDown, true
	case in.Left:
		return DirLeft, true
	case in.Right:
		return DirRight, true
	}
	return 0, false
}

// Player is the user-controlled actor.
type Player struct {
	Mover

	Spawn Coord

	score            int
	lives            int
	extraLifeClaimed bool
}

// NewPlayer creates a player at spawn facing left. The player never has
// CapPassDoors.
func NewPlayer(geo Geometry, spawn Coord, lives int) *Player {
	return &Player{
		Mover: NewMover(geo, spawn, DirLeft, 0),
		Spawn: spawn,
		lives: lives,
	}
}

// Score returns the current score.
func (p *Player) Score() int { return p.score }

// Lives returns the remaining lives.
func (p *Player) Lives() int { return p.lives }

// TileCoord returns the tile the player last centered on.
func (p *Player) TileCoord() Coord { return p.Tile }

// AddScore adds v points. The first time the score reaches extraLifeAt while
// lives are below maxLives one life is granted, and AddScore returns true.
// The grant happens at most once per player.
func (p *Player) AddScore(v, extraLifeAt, maxLives int) bool {
	if v > 0 {
		p.score += v
	}
	if !p.extraLifeClaimed && extraLifeAt > 0 && p.score >= extraLifeAt && p.lives < maxLives {
		p.extraLifeClaimed = true
		p.lives++
		return true
	}
	return false
}

// LoseLife removes one life and returns the lives left.
func (p *Player) LoseLife() int {
	if p.lives > 0 {
		p.lives--
	}
	return p.lives
}

// Steer applies the tick's input. A request for the opposite direction
// reverses at once; any other request is stored and taken at the next
// center where that way is open. With no input the last request persists.
func (p *Player) Steer(in Input, g *Grid) {
	d, ok := in.Dir()
	if !ok {
		return
	}
	if d == p.Dir.Reverse() && p.TryReverse(g) {
		return
	}
	p.Next = d
}

// Respawn returns the player to its spawn tile facing left.
func (p *Player) Respawn() {
	p.Teleport(p.Spawn)
	p.Dir = DirLeft
	p.Next = DirLeft
}
