package core

import (
	"errors"
	"fmt"
)

// Tile is the code stored in one grid cell. The numeric values are the level
// file encoding.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileWall
	TileDot
	TilePower
	TileDoor
)

// Valid reports whether t is a known tile code.
func (t Tile) Valid() bool {
	return t <= TileDoor
}

// Consumable reports whether the player eats this tile.
func (t Tile) Consumable() bool {
	return t == TileDot || t == TilePower
}

func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileWall:
		return "wall"
	case TileDot:
		return "dot"
	case TilePower:
		return "power"
	case TileDoor:
		return "door"
	default:
		return fmt.Sprintf("tile(%d)", uint8(t))
	}
}

// ErrInvalidGrid is returned when rows are empty, ragged or contain unknown codes.
var ErrInvalidGrid = errors.New("grid: invalid layout")

// Grid is the board of tile codes, stored in row-major order: index = y*W + x.
// Its dimensions never change and walls are never rewritten; the only
// mutation is Consume. A Grid has a single writer and is not safe for
// concurrent use.
type Grid struct {
	w, h      int
	cells     []Tile
	remaining int
}

// NewGrid builds a grid from rows of tile codes. Rows are copied.
func NewGrid(rows [][]Tile) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidGrid)
	}
	w := len(rows[0])
	g := &Grid{
		w:     w,
		h:     len(rows),
		cells: make([]Tile, 0, w*len(rows)),
	}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidGrid, y, len(row), w)
		}
		for x, t := range row {
			if !t.Valid() {
				return nil, fmt.Errorf("%w: unknown tile code %d at %s", ErrInvalidGrid, t, C(x, y))
			}
			if t.Consumable() {
				g.remaining++
			}
		}
		g.cells = append(g.cells, row...)
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.w && c.Y >= 0 && c.Y < g.h
}

// TileAt returns the tile at c. Out-of-bounds coordinates read as walls so
// that blocking is defined for every coordinate.
func (g *Grid) TileAt(c Coord) Tile {
	if !g.InBounds(c) {
		return TileWall
	}
	return g.cells[c.Y*g.w+c.X]
}

// IsWall reports whether c is a wall or outside the grid.
func (g *Grid) IsWall(c Coord) bool {
	return g.TileAt(c) == TileWall
}

// IsDoor reports whether c is a ghost-house door.
func (g *Grid) IsDoor(c Coord) bool {
	return g.TileAt(c) == TileDoor
}

// Consume turns a dot or power pellet at c into an empty tile and reports
// whether it did. Any other tile is left untouched.
func (g *Grid) Consume(c Coord) bool {
	if !g.TileAt(c).Consumable() {
		return false
	}
	g.cells[c.Y*g.w+c.X] = TileEmpty
	g.remaining--
	return true
}

// Remaining returns the number of dots and power pellets left.
func (g *Grid) Remaining() int {
	return g.remaining
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Tile, len(g.cells))
	copy(cells, g.cells)
	return &Grid{w: g.w, h: g.h, cells: cells, remaining: g.remaining}
}

// Rows returns a copy of the grid as rows of tile codes.
func (g *Grid) Rows() [][]Tile {
	rows := make([][]Tile, g.h)
	for y := range rows {
		rows[y] = make([]Tile, g.w)
		copy(rows[y], g.cells[y*g.w:(y+1)*g.w])
	}
	return rows
}
