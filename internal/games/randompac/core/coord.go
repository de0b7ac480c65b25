// Package core contains the RandomPac simulation engine: the tile grid, the
// grid-constrained movement controller, the player and ghost controllers and
// the tick orchestrator. It performs no I/O and has no dependencies outside
// the standard library and the prng package.
package core

import (
	"fmt"
	"math"
	"strings"
)

// Coord is a tile coordinate. X is the column, Y is the row, Y grows downward.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the neighbor in direction d.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Manhattan returns the Manhattan distance to another coordinate.
func (c Coord) Manhattan(other Coord) int {
	dx := c.X - other.X
	dy := c.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Dir is one of the four cardinal directions.
type Dir uint8

const (
	DirRight Dir = iota
	DirLeft
	DirDown
	DirUp
)

// Dirs is the fixed iteration order used for decisions and tie-breaks.
var Dirs = [4]Dir{DirRight, DirLeft, DirDown, DirUp}

// Delta returns the unit vector of the direction.
func (d Dir) Delta() (int, int) {
	switch d {
	case DirRight:
		return 1, 0
	case DirLeft:
		return -1, 0
	case DirDown:
		return 0, 1
	case DirUp:
		return 0, -1
	}
	return 0, 0
}

// Reverse returns the opposite direction.
func (d Dir) Reverse() Dir {
	switch d {
	case DirRight:
		return DirLeft
	case DirLeft:
		return DirRight
	case DirDown:
		return DirUp
	default:
		return DirDown
	}
}

// Horizontal reports whether d lies on the x axis.
func (d Dir) Horizontal() bool {
	return d == DirRight || d == DirLeft
}

// Perpendicular reports whether d and other lie on different axes.
func (d Dir) Perpendicular(other Dir) bool {
	return d.Horizontal() != other.Horizontal()
}

func (d Dir) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirLeft:
		return "left"
	case DirDown:
		return "down"
	case DirUp:
		return "up"
	default:
		return "unknown"
	}
}

// ParseDir maps text such as "left" or "U" to a direction.
func ParseDir(s string) (Dir, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "right", "r":
		return DirRight, true
	case "left", "l":
		return DirLeft, true
	case "down", "d":
		return DirDown, true
	case "up", "u":
		return DirUp, true
	}
	return 0, false
}

// Vec is a continuous position in world units.
type Vec struct {
	X, Y float64
}

// Dist returns the Euclidean distance between two points.
func (v Vec) Dist(o Vec) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}
