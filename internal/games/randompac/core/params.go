package core

// Geometry fixes the world units used for continuous movement.
type Geometry struct {
	TileSize        float64 // Width of one tile in world units
	CenterTolerance float64 // Distance below which an actor counts as centered
	ReferenceTickMs float64 // Tick length at which speed is expressed
}

// DefaultGeometry returns a 24-unit tile with a 2-unit center tolerance and a
// 16ms reference tick.
func DefaultGeometry() Geometry {
	return Geometry{
		TileSize:        24,
		CenterTolerance: 2,
		ReferenceTickMs: 16,
	}
}

// Center returns the world position of the center of tile c.
func (g Geometry) Center(c Coord) Vec {
	return Vec{
		X: float64(c.X)*g.TileSize + g.TileSize/2,
		Y: float64(c.Y)*g.TileSize + g.TileSize/2,
	}
}

// Params holds every tunable constant of a session. Values are looked up
// from configuration, never computed during play.
type Params struct {
	Geometry Geometry

	PlayerSpeed      float64 // World units per reference tick
	GhostSpeed       float64
	PowerSpeedFactor float64 // Player speed multiplier while a power window is open
	FrightenedFactor float64 // Ghost speed multiplier while Frightened (< 1)
	EatenFactor      float64 // Ghost speed multiplier while Eaten (> 1)
	CaptureRadius    float64 // Player-ghost collision distance, in tiles

	FrenzyMs  float64 // Length of a power window
	RespawnMs float64 // Wait at home before an eaten ghost returns to Normal
	MessageMs float64 // Lifetime of a HUD message

	DotScore       int
	PowerScore     int
	GhostScoreBase int
	ExtraLifeAt    int

	Lives    int
	MaxLives int
}

// DefaultParams returns the classic tuning.
func DefaultParams() Params {
	return Params{
		Geometry:         DefaultGeometry(),
		PlayerSpeed:      3.2,
		GhostSpeed:       3.0,
		PowerSpeedFactor: 1.3125,
		FrightenedFactor: 0.5,
		EatenFactor:      2.0,
		CaptureRadius:    0.6,
		FrenzyMs:         6000,
		RespawnMs:        1000,
		MessageMs:        2000,
		DotScore:         10,
		PowerScore:       50,
		GhostScoreBase:   200,
		ExtraLifeAt:      10000,
		Lives:            3,
		MaxLives:         5,
	}
}
