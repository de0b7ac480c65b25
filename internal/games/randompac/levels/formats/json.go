package formats

import (
	"encoding/json"
	"fmt"

	"github.com/vovakirdan/randompac/internal/games/randompac/core"
)

// ParseJSON parses the map editor format: a bare list of rows, each a list
// of tile codes. Spawns are not stored in this format.
func ParseJSON(data []byte) (Level, error) {
	var raw [][]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return Level{}, fmt.Errorf("json unmarshal: %w", err)
	}

	rows := make([][]core.Tile, len(raw))
	for y, line := range raw {
		rows[y] = make([]core.Tile, len(line))
		for x, v := range line {
			if v < 0 || v > 255 {
				return Level{}, fmt.Errorf("row %d col %d: %d is not a tile code", y, x, v)
			}
			rows[y][x] = core.Tile(v)
		}
	}
	return Level{Rows: rows}, nil
}
