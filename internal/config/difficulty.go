package config

import (
	"fmt"
	"strings"
)

// Tier is a named difficulty level. A tier only selects base speeds.
type Tier string

const (
	TierClassic Tier = "classic"
	TierHard    Tier = "hard"
	TierExtreme Tier = "extreme"
)

// Tiers returns every tier from easiest to hardest.
func Tiers() []Tier {
	return []Tier{TierClassic, TierHard, TierExtreme}
}

// ParseTier maps user text to a tier. The Spanish names used by old profiles
// are accepted too.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "classic", "clasico", "clásico", "normal", "":
		return TierClassic, nil
	case "hard", "dificil", "difícil":
		return TierHard, nil
	case "extreme", "extremo":
		return TierExtreme, nil
	}
	return TierClassic, fmt.Errorf("config: unknown difficulty %q", s)
}

// TierSpeeds are the base speeds of a tier, in world units per reference tick.
type TierSpeeds struct {
	Player float64 `yaml:"player"`
	Ghost  float64 `yaml:"ghost"`
}

// DifficultyConfig holds the tier table and the default tier.
type DifficultyConfig struct {
	Default Tier                `yaml:"default"`
	Tiers   map[Tier]TierSpeeds `yaml:"tiers"`
}

// builtinTiers is used for tiers missing from the table.
var builtinTiers = map[Tier]TierSpeeds{
	TierClassic: {Player: 3.2, Ghost: 3.0},
	TierHard:    {Player: 3.8, Ghost: 3.6},
	TierExtreme: {Player: 4.4, Ghost: 4.2},
}

// Speeds looks up the speeds of tier t. Unknown tiers use classic.
func (d DifficultyConfig) Speeds(t Tier) TierSpeeds {
	if s, ok := d.Tiers[t]; ok && s.Player > 0 && s.Ghost > 0 {
		return s
	}
	if s, ok := builtinTiers[t]; ok {
		return s
	}
	return d.Speeds(TierClassic)
}
