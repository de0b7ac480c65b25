// Package config provides YAML-based configuration loading and difficulty
// tiers for RandomPac.
package config

// RandomPacConfig contains all tunables of a RandomPac session.
type RandomPacConfig struct {
	Geometry   GeometryConfig   `yaml:"geometry"`
	Speeds     SpeedConfig      `yaml:"speeds"`
	Timing     TimingConfig     `yaml:"timing"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Player     PlayerConfig     `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	RNG        RNGConfig        `yaml:"rng"`
	Ghosts     []GhostConfig    `yaml:"ghosts,omitempty"`
	Levels     LevelsConfig     `yaml:"levels"`
	Storage    StorageConfig    `yaml:"storage"`
}

// GeometryConfig fixes the world units used by the movement controller.
type GeometryConfig struct {
	TileSize        float64 `yaml:"tile_size"`
	CenterTolerance float64 `yaml:"center_tolerance"`
	ReferenceTickMs float64 `yaml:"reference_tick_ms"`
}

// SpeedConfig holds the speed multipliers. Base speeds come from the
// difficulty tier.
type SpeedConfig struct {
	PowerFactor      float64 `yaml:"power_factor"`      // Player, while a power window is open
	FrightenedFactor float64 `yaml:"frightened_factor"` // Must be below 1
	EatenFactor      float64 `yaml:"eaten_factor"`      // Must be above 1
	CaptureRadius    float64 `yaml:"capture_radius"`    // In tiles
}

// TimingConfig holds durations in milliseconds.
type TimingConfig struct {
	FrenzyMs  float64 `yaml:"frenzy_ms"`
	RespawnMs float64 `yaml:"respawn_ms"`
	MessageMs float64 `yaml:"message_ms"`
}

// ScoringConfig holds point values.
type ScoringConfig struct {
	Dot         int `yaml:"dot"`
	Power       int `yaml:"power"`
	GhostBase   int `yaml:"ghost_base"`
	ExtraLifeAt int `yaml:"extra_life_at"`
}

// PlayerConfig holds the life counter bounds.
type PlayerConfig struct {
	Lives    int `yaml:"lives"`
	MaxLives int `yaml:"max_lives"`
}

// RNGConfig selects the ghost random source.
type RNGConfig struct {
	Algorithm string `yaml:"algorithm"`
	Seed      uint64 `yaml:"seed"`   // 0 derives a seed from the clock
	Shared    bool   `yaml:"shared"` // One generator for all ghosts
}

// GhostConfig overrides the level roster entry with the same index.
type GhostConfig struct {
	Name      string  `yaml:"name,omitempty"`
	Behavior  string  `yaml:"behavior,omitempty"`
	ReleaseMs float64 `yaml:"release_ms,omitempty"`
}

// LevelsConfig tells where custom levels live.
type LevelsConfig struct {
	Dir     string `yaml:"dir"`
	Default string `yaml:"default"`
}

// StorageConfig tells where sessions and profiles are stored.
type StorageConfig struct {
	Path string `yaml:"path"`
}
