package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/randompac/internal/games/randompac/core"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

const crossYAML = `id: cross
name: Cross
rows:
  - "1111111"
  - "1222221"
  - "1210121"
  - "1232221"
  - "1111111"
player: {x: 1, y: 3}
home: {x: 3, y: 2}
ghosts:
  - {name: red, behavior: chaser, x: 3, y: 1, dir: left}
  - {x: 5, y: 3, release_ms: 1500}
`

func TestClassicLevel(t *testing.T) {
	lv := Classic()
	if lv.Grid.Width() != 28 || lv.Grid.Height() != 31 {
		t.Fatalf("expected 28x31, got %dx%d", lv.Grid.Width(), lv.Grid.Height())
	}
	if lv.Grid.Remaining() != 300 {
		t.Errorf("expected 300 pellets, got %d", lv.Grid.Remaining())
	}
	if !lv.Grid.IsDoor(core.C(13, 12)) || !lv.Grid.IsDoor(core.C(14, 12)) {
		t.Error("expected the house doors at (13,12) and (14,12)")
	}
	if len(lv.Ghosts) != 4 || lv.Ghosts[0].Behavior != core.BehaviorChaser {
		t.Errorf("expected one chaser and three random ghosts, got %+v", lv.Ghosts)
	}
	if err := validateSpawns(lv); err != nil {
		t.Errorf("classic spawns invalid: %v", err)
	}

	// Each call returns an independent board.
	other := Classic()
	lv.Grid.Consume(core.C(1, 5))
	if other.Grid.Remaining() != 300 {
		t.Error("Classic boards share state")
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "cross.yaml", crossYAML)

	lv, err := NewLoader(dir).LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if lv.ID != "cross" || lv.Name != "Cross" || lv.FilePath != path {
		t.Errorf("unexpected metadata %q %q %q", lv.ID, lv.Name, lv.FilePath)
	}
	b := lv.Board
	if b.PlayerSpawn != core.C(1, 3) || b.Home != core.C(3, 2) {
		t.Errorf("unexpected spawns: player %s home %s", b.PlayerSpawn, b.Home)
	}
	if b.Grid.TileAt(core.C(2, 3)) != core.TilePower {
		t.Errorf("expected power pellet at (2,3), got %s", b.Grid.TileAt(core.C(2, 3)))
	}
	if len(b.Ghosts) != 2 {
		t.Fatalf("expected 2 ghosts, got %d", len(b.Ghosts))
	}
	red := b.Ghosts[0]
	if red.Name != "red" || red.Behavior != core.BehaviorChaser || red.Dir != core.DirLeft {
		t.Errorf("unexpected first ghost %+v", red)
	}
	second := b.Ghosts[1]
	if second.Name != "pinky" || second.Behavior != core.BehaviorRandom || second.ReleaseMs != 1500 {
		t.Errorf("second ghost should take roster defaults, got %+v", second)
	}
}

func TestLoadJSONUsesFileNameAsID(t *testing.T) {
	dir := t.TempDir()
	// Map editor output has no spawns, so the classic ones must fit.
	rows := Classic().Grid.Rows()
	var content []byte
	content = append(content, '[')
	for y, row := range rows {
		if y > 0 {
			content = append(content, ',')
		}
		content = append(content, '[')
		for x, tile := range row {
			if x > 0 {
				content = append(content, ',')
			}
			content = append(content, byte('0'+tile))
		}
		content = append(content, ']')
	}
	content = append(content, ']')
	path := writeFile(t, dir, "edited.json", string(content))

	lv, err := NewLoader(dir).LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if lv.ID != "edited" {
		t.Errorf("expected ID from file name, got %q", lv.ID)
	}
	if lv.Board.Grid.Remaining() != 300 {
		t.Errorf("expected 300 pellets, got %d", lv.Board.Grid.Remaining())
	}
}

func TestInvalidLevels(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"ragged.yaml":  "rows: [\"111\", \"12\"]\nplayer: {x: 1, y: 1}\n",
		"letters.yaml": "rows: [\"1x1\"]\n",
		"walled.yaml":  "rows: [\"111\", \"121\", \"111\"]\nplayer: {x: 0, y: 0}\nhome: {x: 1, y: 1}\nghosts: [{x: 1, y: 1}]\n",
		"empty.yaml":   "rows: [\"111\", \"101\", \"111\"]\nplayer: {x: 1, y: 1}\nhome: {x: 1, y: 1}\nghosts: [{x: 1, y: 1}]\n",
		"broken.json":  "[[1,1],",
		"badcode.json": "[[1,9,1]]",
	}
	loader := NewLoader(dir)
	for name, content := range cases {
		path := writeFile(t, dir, name, content)
		if _, err := loader.LoadFile(path); !errors.Is(err, ErrInvalidLevel) {
			t.Errorf("%s: expected ErrInvalidLevel, got %v", name, err)
		}
	}
}

func TestLoadAllSkipsInvalidFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "cross.yaml", crossYAML)
	writeFile(t, dir, "broken.json", "not json")
	writeFile(t, dir, "notes.txt", "ignored")

	ids, err := NewLoader(dir).ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}
	if len(ids) != 1 || ids[0] != "cross" {
		t.Errorf("expected [cross], got %v", ids)
	}
}

func TestResolveFallsBackToClassic(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "cross.yaml", crossYAML)
	bad := writeFile(t, dir, "bad.json", "{}")
	loader := NewLoader(dir)

	lv, err := loader.Resolve("cross")
	if err != nil || lv.ID != "cross" {
		t.Errorf("Resolve(cross) = %q, %v", lv.ID, err)
	}

	lv, err = loader.Resolve("")
	if err != nil || lv.ID != ClassicID {
		t.Errorf("Resolve(\"\") = %q, %v", lv.ID, err)
	}

	lv, err = loader.Resolve("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound warning, got %v", err)
	}
	if lv.ID != ClassicID || lv.Board.Grid == nil {
		t.Errorf("expected classic fallback, got %q", lv.ID)
	}

	lv, err = loader.Resolve(bad)
	if !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("expected ErrInvalidLevel warning, got %v", err)
	}
	if lv.ID != ClassicID {
		t.Errorf("expected classic fallback, got %q", lv.ID)
	}
}
