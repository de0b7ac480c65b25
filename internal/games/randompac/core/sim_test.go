package core

import (
	"errors"
	"testing"

	"github.com/vovakirdan/randompac/internal/prng"
)

func newTestSim(t *testing.T, lv Level, p Params) *Sim {
	t.Helper()
	s, err := NewSim(Setup{
		Level:      lv,
		Params:     p,
		Algorithm:  prng.AlgLCG,
		Seed:       12345,
		Difficulty: "classic",
	})
	if err != nil {
		t.Fatalf("NewSim failed: %v", err)
	}
	return s
}

// maze is a small level with a ghost house and all tile kinds.
func maze(t *testing.T) Level {
	return Level{
		Name: "test-maze",
		Grid: parseRows(t,
			"###########",
			"#o...#...o#",
			"#.##.#.##.#",
			"#.........#",
			"#.##-#-##.#",
			"#.#     #.#",
			"#.#######.#",
			"#o.......o#",
			"###########",
		),
		PlayerSpawn: C(5, 7),
		Home:        C(5, 5),
		Ghosts: []GhostSpec{
			{Name: "blinky", Behavior: BehaviorChaser, Spawn: C(5, 5), Dir: DirLeft},
			{Name: "pinky", Behavior: BehaviorRandom, Spawn: C(4, 5), Dir: DirLeft},
			{Name: "inky", Behavior: BehaviorRandom, Spawn: C(6, 5), Dir: DirRight},
		},
	}
}

func scriptedInput(tick int) Input {
	switch (tick / 37) % 4 {
	case 0:
		return Input{Up: true}
	case 1:
		return Input{Left: true}
	case 2:
		return Input{Down: true}
	default:
		return Input{Right: true}
	}
}

func TestInputPriority(t *testing.T) {
	cases := []struct {
		in   Input
		want Dir
	}{
		{Input{Up: true, Down: true, Left: true, Right: true}, DirUp},
		{Input{Down: true, Left: true}, DirDown},
		{Input{Left: true, Right: true}, DirLeft},
		{Input{Right: true}, DirRight},
	}
	for _, c := range cases {
		if d, ok := c.in.Dir(); !ok || d != c.want {
			t.Errorf("%+v: got %s, want %s", c.in, d, c.want)
		}
	}
	if _, ok := (Input{}).Dir(); ok {
		t.Error("empty input should not request a direction")
	}
}

func TestExtraLifeIsOneShot(t *testing.T) {
	p := NewPlayer(DefaultGeometry(), C(1, 1), 3)

	if p.AddScore(50, 100, 5) {
		t.Error("no extra life below the threshold")
	}
	if !p.AddScore(60, 100, 5) {
		t.Fatal("expected extra life when crossing the threshold")
	}
	if p.Lives() != 4 {
		t.Errorf("expected 4 lives, got %d", p.Lives())
	}
	if p.AddScore(1000, 100, 5) {
		t.Error("extra life granted twice")
	}
	if p.Lives() != 4 || p.Score() != 1110 {
		t.Errorf("lives %d score %d, want 4 and 1110", p.Lives(), p.Score())
	}
}

func TestExtraLifeWaitsForRoom(t *testing.T) {
	p := NewPlayer(DefaultGeometry(), C(1, 1), 5)

	if p.AddScore(200, 100, 5) {
		t.Fatal("no extra life at the lives cap")
	}
	p.LoseLife()
	if !p.AddScore(10, 100, 5) {
		t.Error("extra life should be granted once below the cap")
	}
	if p.Lives() != 5 {
		t.Errorf("expected 5 lives, got %d", p.Lives())
	}
}

func TestChainScoring(t *testing.T) {
	s := newTestSim(t, maze(t), DefaultParams())

	for _, g := range s.ghosts {
		g.Frighten(s.grid, 6000)
		g.Teleport(s.player.Tile)
		g.Pos = s.player.Pos
	}
	before := s.Score()

	var res StepResult
	s.resolveCollisions(&res)

	var points []int
	for _, e := range res.Events {
		if e.Kind == EventGhostEaten {
			points = append(points, e.Points)
		}
	}
	want := []int{200, 400, 800}
	if len(points) != len(want) {
		t.Fatalf("expected %d ghosts eaten, got %v", len(want), points)
	}
	for i := range want {
		if points[i] != want[i] {
			t.Errorf("ghost %d: got %d points, want %d", i, points[i], want[i])
		}
	}
	if got := s.Score() - before; got != 1400 {
		t.Errorf("chain total = %d, want 1400", got)
	}
	if s.Message() != "+800" {
		t.Errorf("expected message +800, got %q", s.Message())
	}
	for _, g := range s.ghosts {
		if g.State() != StateEaten {
			t.Errorf("%s: expected eaten, got %s", g.Name, g.State())
		}
	}
}

func TestPowerPelletFrightensAndExpires(t *testing.T) {
	lv := Level{
		Name: "power",
		Grid: parseRows(t,
			"#######",
			"# o...#",
			"#######",
			"#     #",
			"#######",
		),
		PlayerSpawn: C(1, 1),
		Home:        C(3, 3),
		Ghosts: []GhostSpec{
			{Name: "clyde", Behavior: BehaviorRandom, Spawn: C(3, 3), Dir: DirLeft},
		},
	}
	p := DefaultParams()
	p.FrenzyMs = 200
	s := newTestSim(t, lv, p)

	var sawPower, sawFrightened, sawEnded bool
	for range 500 {
		res := s.Step(Input{Right: true}, 16)
		if res.Has(EventPower) {
			sawPower = true
			if !s.PowerActive() {
				t.Fatal("power window should open on the pellet")
			}
		}
		if s.ghosts[0].State() == StateFrightened {
			sawFrightened = true
		}
		if res.Has(EventPowerEnded) {
			if !sawPower {
				t.Fatal("power ended before it started")
			}
			sawEnded = true
		}
		if res.Over {
			break
		}
	}

	if !sawPower || !sawFrightened || !sawEnded {
		t.Fatalf("power %v, frightened %v, ended %v", sawPower, sawFrightened, sawEnded)
	}
	if !s.Won() {
		t.Error("expected the level to be cleared")
	}
	if s.Score() != 80 {
		t.Errorf("score = %d, want 80", s.Score())
	}
}

func corridorLevel(t *testing.T) Level {
	return Level{
		Name: "corridor",
		Grid: parseRows(t,
			"#######",
			"#     #",
			"###.###",
			"#######",
		),
		PlayerSpawn: C(1, 1),
		Home:        C(5, 1),
		Ghosts: []GhostSpec{
			{Name: "blinky", Behavior: BehaviorChaser, Spawn: C(5, 1), Dir: DirLeft},
		},
	}
}

func TestCollisionCostsLifeAndResets(t *testing.T) {
	s := newTestSim(t, corridorLevel(t), DefaultParams())
	geo := s.params.Geometry

	for range 100 {
		res := s.Step(Input{Right: true}, 16)
		if !res.Has(EventLifeLost) {
			continue
		}
		if s.Lives() != 2 {
			t.Errorf("expected 2 lives, got %d", s.Lives())
		}
		if s.player.Tile != C(1, 1) || s.player.Pos != geo.Center(C(1, 1)) {
			t.Errorf("player not reset: %s %v", s.player.Tile, s.player.Pos)
		}
		if g := s.ghosts[0]; g.Tile != C(5, 1) || g.State() != StateRoaming {
			t.Errorf("ghost not reset: %s %s", g.Tile, g.State())
		}
		if s.Message() != "Ouch!" {
			t.Errorf("expected message Ouch!, got %q", s.Message())
		}
		if res.Over {
			t.Error("game should go on with lives left")
		}
		return
	}
	t.Fatal("player and ghost never collided")
}

func TestGameOverAtZeroLives(t *testing.T) {
	p := DefaultParams()
	p.Lives = 1
	s := newTestSim(t, corridorLevel(t), p)

	var last StepResult
	for range 100 {
		last = s.Step(Input{Right: true}, 16)
		if last.Over {
			break
		}
	}
	if !last.Over || !last.Has(EventGameOver) {
		t.Fatalf("expected game over, got %+v", last)
	}
	if s.Won() {
		t.Error("game over is not a win")
	}

	after := s.Step(Input{Right: true}, 16)
	if !after.Over || after.Now != last.Now {
		t.Error("stepping a finished session should change nothing")
	}

	out := s.Outcome()
	if out.Won || out.Level != "corridor" || out.Algorithm != prng.AlgLCG || out.Seed != 12345 {
		t.Errorf("unexpected outcome %+v", out)
	}
	if out.Duration <= 0 {
		t.Errorf("expected positive duration, got %v", out.Duration)
	}
}

func TestMessageExpires(t *testing.T) {
	lv := Level{
		Name:        "closet",
		Grid:        parseRows(t, "#####", "# #.#", "#####"),
		PlayerSpawn: C(1, 1),
		Home:        C(1, 1),
	}
	s := newTestSim(t, lv, DefaultParams())

	s.say("hello")
	s.Step(Input{}, 1999)
	if s.Message() != "hello" {
		t.Fatalf("message expired early: %q", s.Message())
	}
	s.Step(Input{}, 1)
	if s.Message() != "" {
		t.Errorf("message should expire after %vms, got %q", s.params.MessageMs, s.Message())
	}
}

func TestNewSimRejectsBadSpawns(t *testing.T) {
	lv := corridorLevel(t)
	lv.PlayerSpawn = C(0, 0)
	if _, err := NewSim(Setup{Level: lv, Params: DefaultParams(), Algorithm: prng.AlgLCG, Seed: 1}); !errors.Is(err, ErrInvalidSetup) {
		t.Errorf("expected ErrInvalidSetup for a walled spawn, got %v", err)
	}

	lv = corridorLevel(t)
	if _, err := NewSim(Setup{Level: lv, Params: DefaultParams(), Algorithm: "dice", Seed: 1}); !errors.Is(err, prng.ErrUnknownAlgorithm) {
		t.Errorf("expected ErrUnknownAlgorithm, got %v", err)
	}
}

func TestGhostGeneratorsSharedByDefault(t *testing.T) {
	shared := newTestSim(t, maze(t), DefaultParams())
	if shared.ghosts[0].rng != shared.ghosts[1].rng {
		t.Error("ghosts should share one generator by default")
	}

	s, err := NewSim(Setup{Level: maze(t), Params: DefaultParams(), Algorithm: prng.AlgXorShift, Seed: 7, PerGhost: true})
	if err != nil {
		t.Fatalf("NewSim failed: %v", err)
	}
	if s.ghosts[0].rng == s.ghosts[1].rng || s.ghosts[1].rng == s.ghosts[2].rng {
		t.Error("per-ghost generators should be distinct")
	}
}

func TestSimDeterminismAndContainment(t *testing.T) {
	run := func() ([]Vec, Outcome) {
		s := newTestSim(t, maze(t), DefaultParams())
		geo := s.params.Geometry
		var trail []Vec
		for i := range 3000 {
			res := s.Step(scriptedInput(i), 16)
			checkOnSegment(t, "player", &s.player.Mover, s.grid, geo)
			trail = append(trail, s.player.Pos)
			for _, g := range s.ghosts {
				checkOnSegment(t, g.Name, &g.Mover, s.grid, geo)
				trail = append(trail, g.Pos)
			}
			if res.Over {
				break
			}
		}
		return trail, s.Outcome()
	}

	trail1, out1 := run()
	trail2, out2 := run()

	if out1 != out2 {
		t.Fatalf("outcomes differ: %+v vs %+v", out1, out2)
	}
	if len(trail1) != len(trail2) {
		t.Fatalf("trails differ in length: %d vs %d", len(trail1), len(trail2))
	}
	for i := range trail1 {
		if trail1[i] != trail2[i] {
			t.Fatalf("positions diverge at sample %d: %v vs %v", i, trail1[i], trail2[i])
		}
	}
}
