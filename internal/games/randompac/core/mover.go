package core

import "fmt"

// Caps is the set of movement permissions of an actor.
type Caps uint8

const (
	// CapPassDoors lets an actor cross ghost-house doors.
	CapPassDoors Caps = 1 << iota
)

// Has reports whether all capabilities in o are present.
func (c Caps) Has(o Caps) bool {
	return c&o == o
}

// Blocked is the one blocking rule shared by every actor: walls and
// out-of-bounds tiles block everyone, doors block actors without
// CapPassDoors.
func Blocked(g *Grid, c Coord, caps Caps) bool {
	switch g.TileAt(c) {
	case TileWall:
		return true
	case TileDoor:
		return !caps.Has(CapPassDoors)
	}
	return false
}

// Mover is the grid-constrained continuous movement controller.
//
// Tile is the last tile whose center the actor reached. Pos always lies on
// the segment between the center of Tile and the center of one neighbor, and
// Tile only changes when Pos lands exactly on a neighbor's center.
type Mover struct {
	Tile Coord
	Pos  Vec
	Dir  Dir // Current direction of travel
	Next Dir // Requested direction, applied when centered
	Caps Caps

	geo Geometry
}

// NewMover places a mover at the center of start.
func NewMover(geo Geometry, start Coord, dir Dir, caps Caps) Mover {
	return Mover{
		Tile: start,
		Pos:  geo.Center(start),
		Dir:  dir,
		Next: dir,
		Caps: caps,
		geo:  geo,
	}
}

// Teleport moves the actor to the center of c without changing direction.
func (m *Mover) Teleport(c Coord) {
	m.Tile = c
	m.Pos = m.geo.Center(c)
}

// Centered reports whether Pos is within tolerance of the center of Tile.
func (m *Mover) Centered() bool {
	return m.Pos.Dist(m.geo.Center(m.Tile)) < m.geo.CenterTolerance
}

// CanMove reports whether the neighbor of Tile in direction d is open.
func (m *Mover) CanMove(g *Grid, d Dir) bool {
	return !Blocked(g, m.Tile.Step(d), m.Caps)
}

// TryReverse turns the actor around. Away from a center this is always legal
// because the actor heads back to the tile it came from. At a center the tile
// behind must be open.
func (m *Mover) TryReverse(g *Grid) bool {
	rev := m.Dir.Reverse()
	if m.Centered() && !m.CanMove(g, rev) {
		return false
	}
	m.Dir = rev
	m.Next = rev
	return true
}

// target returns the tile whose center the actor is heading to. When Pos is
// behind the center of Tile relative to Dir (after a reversal) the actor is
// returning to Tile itself.
func (m *Mover) target() Coord {
	c := m.geo.Center(m.Tile)
	dx, dy := m.Dir.Delta()
	along := (m.Pos.X-c.X)*float64(dx) + (m.Pos.Y-c.Y)*float64(dy)
	if along < 0 {
		return m.Tile
	}
	return m.Tile.Step(m.Dir)
}

// Step advances the actor for dt milliseconds at speed world units per
// reference tick. It returns true when the actor entered a new tile.
func (m *Mover) Step(g *Grid, dt, speed float64) bool {
	if !g.InBounds(m.Tile) {
		panic(fmt.Sprintf("core: actor tile %s outside %dx%d grid", m.Tile, g.Width(), g.Height()))
	}

	center := m.geo.Center(m.Tile)
	if m.Pos.Dist(center) < m.geo.CenterTolerance {
		if m.Next != m.Dir && m.CanMove(g, m.Next) {
			if m.Next.Perpendicular(m.Dir) {
				m.Pos = center
			}
			m.Dir = m.Next
		}
		if !m.CanMove(g, m.Dir) {
			// Hold on the center instead of creeping into the wall.
			m.Pos = center
			return false
		}
	}

	dist := speed * dt / m.geo.ReferenceTickMs
	if dist <= 0 {
		return false
	}

	target := m.target()
	tc := m.geo.Center(target)
	dx, dy := m.Dir.Delta()
	m.Pos.X += float64(dx) * dist
	m.Pos.Y += float64(dy) * dist

	switch {
	case dx > 0 && m.Pos.X >= tc.X, dx < 0 && m.Pos.X <= tc.X:
		m.Pos.X = tc.X
	}
	switch {
	case dy > 0 && m.Pos.Y >= tc.Y, dy < 0 && m.Pos.Y <= tc.Y:
		m.Pos.Y = tc.Y
	}

	if m.Pos == tc && target != m.Tile {
		m.Tile = target
		return true
	}
	return false
}
