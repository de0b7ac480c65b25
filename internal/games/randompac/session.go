package randompac

import (
	"fmt"

	"github.com/vovakirdan/randompac/internal/config"
	pac "github.com/vovakirdan/randompac/internal/games/randompac/core"
	"github.com/vovakirdan/randompac/internal/games/randompac/levels"
	"github.com/vovakirdan/randompac/internal/prng"
)

// Options selects a session. Empty fields fall back to the configuration.
type Options struct {
	ConfigPath string
	Difficulty string
	Algorithm  string
	Level      string
	Seed       uint64
}

// Session is a ready-to-step simulation plus what it was built from.
type Session struct {
	Sim       *pac.Sim
	Config    config.RandomPacConfig
	Level     levels.Level
	Tier      config.Tier
	Algorithm prng.Algorithm
}

// NewSession resolves the configuration, level and generator and builds the
// simulation. Recoverable problems (bad config values, unknown names, a
// broken level file) are returned as warnings and replaced by defaults; the
// error is only set when no session could be built at all.
func NewSession(opts Options) (*Session, []error, error) {
	var warnings []error

	cfg, err := config.LoadRandomPac(opts.ConfigPath)
	if err != nil {
		warnings = append(warnings, err)
		cfg = config.DefaultRandomPacConfig()
	}

	tierName := opts.Difficulty
	if tierName == "" {
		tierName = string(cfg.Difficulty.Default)
	}
	tier, err := config.ParseTier(tierName)
	if err != nil {
		warnings = append(warnings, err)
	}

	algName := opts.Algorithm
	if algName == "" {
		algName = cfg.RNG.Algorithm
	}
	alg, err := prng.ParseAlgorithm(algName)
	if err != nil {
		warnings = append(warnings, fmt.Errorf("%w, using %s", err, prng.AlgLCG))
		alg = prng.AlgLCG
	}

	seed := opts.Seed
	if seed == 0 {
		seed = cfg.RNG.Seed
	}

	levelName := opts.Level
	if levelName == "" {
		levelName = cfg.Levels.Default
	}
	level, err := levels.NewLoader(config.ExpandHome(cfg.Levels.Dir)).Resolve(levelName)
	if err != nil {
		warnings = append(warnings, err)
	}

	board, rosterWarnings := applyRoster(level.Board, cfg.Ghosts)
	warnings = append(warnings, rosterWarnings...)

	setup := pac.Setup{
		Level:      board,
		Params:     Params(cfg, tier),
		Algorithm:  alg,
		Seed:       seed,
		PerGhost:   !cfg.RNG.Shared,
		Difficulty: string(tier),
	}
	sim, err := pac.NewSim(setup)
	if err != nil {
		return nil, warnings, fmt.Errorf("randompac: %w", err)
	}

	return &Session{Sim: sim, Config: cfg, Level: level, Tier: tier, Algorithm: alg}, warnings, nil
}

// Params converts the configuration of a tier into engine parameters.
func Params(cfg config.RandomPacConfig, tier config.Tier) pac.Params {
	speeds := cfg.Difficulty.Speeds(tier)
	return pac.Params{
		Geometry: pac.Geometry{
			TileSize:        cfg.Geometry.TileSize,
			CenterTolerance: cfg.Geometry.CenterTolerance,
			ReferenceTickMs: cfg.Geometry.ReferenceTickMs,
		},
		PlayerSpeed:      speeds.Player,
		GhostSpeed:       speeds.Ghost,
		PowerSpeedFactor: cfg.Speeds.PowerFactor,
		FrightenedFactor: cfg.Speeds.FrightenedFactor,
		EatenFactor:      cfg.Speeds.EatenFactor,
		CaptureRadius:    cfg.Speeds.CaptureRadius,
		FrenzyMs:         cfg.Timing.FrenzyMs,
		RespawnMs:        cfg.Timing.RespawnMs,
		MessageMs:        cfg.Timing.MessageMs,
		DotScore:         cfg.Scoring.Dot,
		PowerScore:       cfg.Scoring.Power,
		GhostScoreBase:   cfg.Scoring.GhostBase,
		ExtraLifeAt:      cfg.Scoring.ExtraLifeAt,
		Lives:            cfg.Player.Lives,
		MaxLives:         cfg.Player.MaxLives,
	}
}

// applyRoster overlays configured names, behaviors and release delays on the
// level's ghosts, matched by index.
func applyRoster(b pac.Level, roster []config.GhostConfig) (pac.Level, []error) {
	var warnings []error
	ghosts := make([]pac.GhostSpec, len(b.Ghosts))
	copy(ghosts, b.Ghosts)

	for i := range ghosts {
		if i >= len(roster) {
			break
		}
		r := roster[i]
		if r.Name != "" {
			ghosts[i].Name = r.Name
		}
		if r.Behavior != "" {
			behavior, err := pac.ParseBehavior(r.Behavior)
			if err != nil {
				warnings = append(warnings, fmt.Errorf("ghosts[%d]: %w", i, err))
			} else {
				ghosts[i].Behavior = behavior
			}
		}
		if r.ReleaseMs > 0 {
			ghosts[i].ReleaseMs = r.ReleaseMs
		}
	}
	b.Ghosts = ghosts
	return b, warnings
}
