package config

import (
	_ "embed"
)

//go:embed defaults/randompac.yaml
var defaultRandomPacYAML []byte

// DefaultRandomPacConfig returns the classic configuration. It matches the
// embedded defaults/randompac.yaml and is used when that cannot be parsed.
func DefaultRandomPacConfig() RandomPacConfig {
	return RandomPacConfig{
		Geometry: GeometryConfig{
			TileSize:        24,
			CenterTolerance: 2,
			ReferenceTickMs: 16,
		},
		Speeds: SpeedConfig{
			PowerFactor:      1.3125,
			FrightenedFactor: 0.5,
			EatenFactor:      2.0,
			CaptureRadius:    0.6,
		},
		Timing: TimingConfig{
			FrenzyMs:  6000,
			RespawnMs: 1000,
			MessageMs: 2000,
		},
		Scoring: ScoringConfig{
			Dot:         10,
			Power:       50,
			GhostBase:   200,
			ExtraLifeAt: 10000,
		},
		Player: PlayerConfig{
			Lives:    3,
			MaxLives: 5,
		},
		Difficulty: DifficultyConfig{
			Default: TierClassic,
			Tiers: map[Tier]TierSpeeds{
				TierClassic: builtinTiers[TierClassic],
				TierHard:    builtinTiers[TierHard],
				TierExtreme: builtinTiers[TierExtreme],
			},
		},
		RNG: RNGConfig{
			Algorithm: "lcg",
			Shared:    true,
		},
		Ghosts: []GhostConfig{
			{Name: "blinky", Behavior: "chaser"},
			{Name: "pinky", Behavior: "random"},
			{Name: "inky", Behavior: "random"},
			{Name: "clyde", Behavior: "random"},
		},
		Levels: LevelsConfig{
			Dir:     "~/.randompac/levels",
			Default: "classic",
		},
		Storage: StorageConfig{
			Path: "~/.randompac/randompac.db",
		},
	}
}
