package core

import (
	"errors"
	"testing"
)

// parseRows builds a grid from a picture:
// '#' wall, '.' dot, 'o' power pellet, '-' door, ' ' empty.
func parseRows(t *testing.T, pic ...string) *Grid {
	t.Helper()
	rows := make([][]Tile, len(pic))
	for y, line := range pic {
		rows[y] = make([]Tile, len(line))
		for x, r := range line {
			switch r {
			case '#':
				rows[y][x] = TileWall
			case '.':
				rows[y][x] = TileDot
			case 'o':
				rows[y][x] = TilePower
			case '-':
				rows[y][x] = TileDoor
			case ' ':
				rows[y][x] = TileEmpty
			default:
				t.Fatalf("unknown tile %q at (%d,%d)", r, x, y)
			}
		}
	}
	g, err := NewGrid(rows)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	return g
}

func TestNewGridCountsConsumables(t *testing.T) {
	g := parseRows(t,
		"#####",
		"#.o.#",
		"# - #",
		"#####",
	)
	if g.Width() != 5 || g.Height() != 4 {
		t.Fatalf("expected 5x4 grid, got %dx%d", g.Width(), g.Height())
	}
	if g.Remaining() != 3 {
		t.Errorf("expected 3 consumables, got %d", g.Remaining())
	}
	if !g.IsDoor(C(2, 2)) {
		t.Error("expected door at (2,2)")
	}
	if !g.IsWall(C(0, 0)) {
		t.Error("expected wall at (0,0)")
	}
}

func TestNewGridRejectsBadLayouts(t *testing.T) {
	cases := map[string][][]Tile{
		"empty":   nil,
		"ragged":  {{TileWall, TileWall}, {TileWall}},
		"unknown": {{TileWall, Tile(9)}},
	}
	for name, rows := range cases {
		if _, err := NewGrid(rows); !errors.Is(err, ErrInvalidGrid) {
			t.Errorf("%s: expected ErrInvalidGrid, got %v", name, err)
		}
	}
}

func TestOutOfBoundsReadsAsWall(t *testing.T) {
	g := parseRows(t, "   ")
	for _, c := range []Coord{C(-1, 0), C(3, 0), C(0, -1), C(0, 1)} {
		if g.TileAt(c) != TileWall {
			t.Errorf("TileAt(%s) = %s, want wall", c, g.TileAt(c))
		}
		if !Blocked(g, c, CapPassDoors) {
			t.Errorf("%s should block even door-capable actors", c)
		}
	}
}

func TestConsumeIsIdempotent(t *testing.T) {
	g := parseRows(t, "#.o #")

	if !g.Consume(C(1, 0)) {
		t.Fatal("first Consume of a dot should succeed")
	}
	if g.Consume(C(1, 0)) {
		t.Error("second Consume of the same tile should report false")
	}
	if g.TileAt(C(1, 0)) != TileEmpty {
		t.Errorf("consumed tile should be empty, got %s", g.TileAt(C(1, 0)))
	}
	if !g.Consume(C(2, 0)) {
		t.Error("Consume of a power pellet should succeed")
	}
	if g.Remaining() != 0 {
		t.Errorf("expected 0 remaining, got %d", g.Remaining())
	}

	for _, c := range []Coord{C(0, 0), C(3, 0), C(9, 9)} {
		before := g.TileAt(c)
		if g.Consume(c) {
			t.Errorf("Consume(%s) on %s should report false", c, before)
		}
		if g.TileAt(c) != before {
			t.Errorf("Consume(%s) mutated %s", c, before)
		}
	}
	if g.Remaining() != 0 {
		t.Errorf("remaining changed by failed Consume: %d", g.Remaining())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := parseRows(t, "#..#")
	c := g.Clone()
	c.Consume(C(1, 0))

	if g.TileAt(C(1, 0)) != TileDot {
		t.Error("consuming on the clone changed the original")
	}
	if g.Remaining() != 2 || c.Remaining() != 1 {
		t.Errorf("remaining: original %d, clone %d", g.Remaining(), c.Remaining())
	}
}
