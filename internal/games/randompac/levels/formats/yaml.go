// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	"github.com/vovakirdan/randompac/internal/games/randompac/core"
	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
//
//	id: cross
//	name: Cross
//	rows:
//	  - "11111"
//	  - "12221"
//	player: {x: 2, y: 1}
//	ghosts:
//	  - {name: blinky, behavior: chaser, x: 1, y: 1}
type YAMLLevel struct {
	ID     string      `yaml:"id"`
	Name   string      `yaml:"name"`
	Rows   []string    `yaml:"rows"`
	Player *YAMLPoint  `yaml:"player,omitempty"`
	Home   *YAMLPoint  `yaml:"home,omitempty"`
	Ghosts []YAMLGhost `yaml:"ghosts,omitempty"`
}

// YAMLPoint is a tile coordinate.
type YAMLPoint struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// YAMLGhost places one ghost.
type YAMLGhost struct {
	Name      string  `yaml:"name"`
	Behavior  string  `yaml:"behavior,omitempty"`
	X         int     `yaml:"x"`
	Y         int     `yaml:"y"`
	Dir       string  `yaml:"dir,omitempty"`
	ReleaseMs float64 `yaml:"release_ms,omitempty"`
}

// Ghost is a parsed ghost placement. Empty fields take roster defaults.
type Ghost struct {
	Name      string
	Behavior  string
	At        core.Coord
	Dir       string
	ReleaseMs float64
}

// Level represents a parsed level ready for validation.
type Level struct {
	ID     string
	Name   string
	Rows   [][]core.Tile
	Player *core.Coord
	Home   *core.Coord
	Ghosts []Ghost
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	rows, err := DigitRows(yl.Rows)
	if err != nil {
		return Level{}, err
	}

	level := Level{
		ID:   yl.ID,
		Name: yl.Name,
		Rows: rows,
	}
	if yl.Player != nil {
		c := core.C(yl.Player.X, yl.Player.Y)
		level.Player = &c
	}
	if yl.Home != nil {
		c := core.C(yl.Home.X, yl.Home.Y)
		level.Home = &c
	}
	for _, g := range yl.Ghosts {
		level.Ghosts = append(level.Ghosts, Ghost{
			Name:      g.Name,
			Behavior:  g.Behavior,
			At:        core.C(g.X, g.Y),
			Dir:       g.Dir,
			ReleaseMs: g.ReleaseMs,
		})
	}

	return level, nil
}

// DigitRows decodes rows written as strings of tile code digits.
func DigitRows(lines []string) ([][]core.Tile, error) {
	rows := make([][]core.Tile, len(lines))
	for y, line := range lines {
		rows[y] = make([]core.Tile, 0, len(line))
		for x, r := range line {
			if r < '0' || r > '9' {
				return nil, fmt.Errorf("row %d col %d: %q is not a tile code", y, x, r)
			}
			rows[y] = append(rows[y], core.Tile(r-'0'))
		}
	}
	return rows, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".json"}
}
