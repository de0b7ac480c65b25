package levels

import (
	"github.com/vovakirdan/randompac/internal/games/randompac/core"
	"github.com/vovakirdan/randompac/internal/games/randompac/levels/formats"
)

// ClassicID is the ID of the built-in level.
const ClassicID = "classic"

// classicRows is the built-in 28x31 board. Digits are tile codes.
var classicRows = []string{
	"1111111111111111111111111111",
	"1322222222222112222222222221",
	"1211112111112112111112111121",
	"1211112111112112111112111121",
	"1211112111112112111112111121",
	"1222222222222222222222222221",
	"1211112112111111112112111121",
	"1211112112111111112112111131",
	"1222222112222112222112222221",
	"1111112111112112111112111111",
	"1111112111112112111112111111",
	"1111112112222222222112111111",
	"1111112112111441112112111111",
	"1111112112100000012112111111",
	"2222222222100000012222222222",
	"1111112112100000012112111111",
	"1111112112111111112112111111",
	"1111112112222222222112111111",
	"1111112112111111112112111111",
	"1111112112111111112112111111",
	"1222222222222112222222222221",
	"1211112111112112111112111121",
	"1211112111112112111112111121",
	"1322112222222222222222112221",
	"1112112112111111112112112111",
	"1112112112111111112112112111",
	"1222222112222112222112222221",
	"1211111111112112111111111121",
	"1211111111112112111111111121",
	"1222222222222222222222222231",
	"1111111111111111111111111111",
}

// Spawns used by the classic level and by level files that omit them.
var (
	DefaultPlayerSpawn = core.C(13, 23)
	DefaultHome        = core.C(13, 13)
)

// DefaultGhosts returns the classic roster: one chaser and three random
// ghosts in the house.
func DefaultGhosts() []core.GhostSpec {
	return []core.GhostSpec{
		{Name: "blinky", Behavior: core.BehaviorChaser, Spawn: core.C(13, 13), Dir: core.DirLeft},
		{Name: "pinky", Behavior: core.BehaviorRandom, Spawn: core.C(14, 13), Dir: core.DirRight},
		{Name: "inky", Behavior: core.BehaviorRandom, Spawn: core.C(12, 13), Dir: core.DirLeft},
		{Name: "clyde", Behavior: core.BehaviorRandom, Spawn: core.C(15, 13), Dir: core.DirRight},
	}
}

// Classic returns a fresh copy of the built-in level.
func Classic() core.Level {
	rows, err := formats.DigitRows(classicRows)
	if err != nil {
		panic("levels: classic layout is broken: " + err.Error())
	}
	grid, err := core.NewGrid(rows)
	if err != nil {
		panic("levels: classic layout is broken: " + err.Error())
	}
	return core.Level{
		Name:        ClassicID,
		Grid:        grid,
		PlayerSpawn: DefaultPlayerSpawn,
		Home:        DefaultHome,
		Ghosts:      DefaultGhosts(),
	}
}
