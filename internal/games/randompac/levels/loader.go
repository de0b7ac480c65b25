// Package levels provides level loading for RandomPac: the built-in classic
// board plus YAML and JSON level files.
// This package depends on core but core does not depend on levels.
package levels

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/randompac/internal/games/randompac/core"
	"github.com/vovakirdan/randompac/internal/games/randompac/levels/formats"
)

var (
	// ErrInvalidLevel is returned for level data that cannot be played.
	ErrInvalidLevel = errors.New("levels: invalid level")
	// ErrNotFound is returned when no level file has the requested ID.
	ErrNotFound = errors.New("levels: level not found")
)

// Level is a validated level together with where it came from.
type Level struct {
	ID       string
	Name     string
	FilePath string
	Board    core.Level
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped. Levels are sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		level, err := l.LoadFile(path)
		if err != nil {
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadFile loads and validates a single level file. The file name without
// its extension is the ID unless the file names one.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("%w: parsing file %s: %v", ErrInvalidLevel, path, err)
	}
	if parsed.ID == "" {
		parsed.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	level, err := Build(parsed)
	if err != nil {
		return Level{}, fmt.Errorf("%s: %w", path, err)
	}
	level.FilePath = path
	return level, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// Resolve returns the level named by name: "" or "classic" for the built-in
// board, a path to a level file, or an ID under Root. When the level cannot
// be loaded the classic board is returned together with the reason, which
// callers should report as a warning.
func (l *Loader) Resolve(name string) (Level, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, ClassicID) {
		return ClassicLevel(), nil
	}

	var (
		level Level
		err   error
	)
	if isSupportedExtension(strings.ToLower(filepath.Ext(name))) {
		level, err = l.LoadFile(name)
	} else {
		level, err = l.LoadByID(name)
	}
	if err != nil {
		return ClassicLevel(), fmt.Errorf("levels: using %s instead of %q: %w", ClassicID, name, err)
	}
	return level, nil
}

// ClassicLevel wraps Classic for callers that work with Level values.
func ClassicLevel() Level {
	return Level{ID: ClassicID, Name: "Classic", Board: Classic()}
}

// Build validates a parsed level and fills in default spawns and ghosts.
func Build(p formats.Level) (Level, error) {
	grid, err := core.NewGrid(p.Rows)
	if err != nil {
		return Level{}, fmt.Errorf("%w: %v", ErrInvalidLevel, err)
	}
	if grid.Remaining() == 0 {
		return Level{}, fmt.Errorf("%w: no dots or power pellets", ErrInvalidLevel)
	}

	board := core.Level{
		Name:        p.ID,
		Grid:        grid,
		PlayerSpawn: DefaultPlayerSpawn,
		Home:        DefaultHome,
	}
	if p.Player != nil {
		board.PlayerSpawn = *p.Player
	}
	if p.Home != nil {
		board.Home = *p.Home
	}

	if len(p.Ghosts) == 0 {
		board.Ghosts = DefaultGhosts()
	}
	roster := DefaultGhosts()
	for i, g := range p.Ghosts {
		spec := roster[i%len(roster)]
		spec.Spawn = g.At
		spec.ReleaseMs = g.ReleaseMs
		if g.Name != "" {
			spec.Name = g.Name
		} else if i >= len(roster) {
			spec.Name = fmt.Sprintf("ghost%d", i+1)
		}
		if g.Behavior != "" {
			b, err := core.ParseBehavior(g.Behavior)
			if err != nil {
				return Level{}, fmt.Errorf("%w: ghost %d: %v", ErrInvalidLevel, i, err)
			}
			spec.Behavior = b
		}
		if g.Dir != "" {
			d, ok := core.ParseDir(g.Dir)
			if !ok {
				return Level{}, fmt.Errorf("%w: ghost %d: unknown direction %q", ErrInvalidLevel, i, g.Dir)
			}
			spec.Dir = d
		}
		board.Ghosts = append(board.Ghosts, spec)
	}

	if err := validateSpawns(board); err != nil {
		return Level{}, err
	}

	name := p.Name
	if name == "" {
		name = p.ID
	}
	return Level{ID: p.ID, Name: name, Board: board}, nil
}

func validateSpawns(b core.Level) error {
	if core.Blocked(b.Grid, b.PlayerSpawn, 0) {
		return fmt.Errorf("%w: player spawn %s is not walkable", ErrInvalidLevel, b.PlayerSpawn)
	}
	if core.Blocked(b.Grid, b.Home, core.CapPassDoors) {
		return fmt.Errorf("%w: ghost home %s is blocked", ErrInvalidLevel, b.Home)
	}
	for _, g := range b.Ghosts {
		if core.Blocked(b.Grid, g.Spawn, core.CapPassDoors) {
			return fmt.Errorf("%w: ghost %s spawn %s is blocked", ErrInvalidLevel, g.Name, g.Spawn)
		}
	}
	return nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	case ".json":
		return formats.ParseJSON(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
