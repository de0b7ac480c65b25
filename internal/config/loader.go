package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name searched for in the config directories.
const ConfigFile = "randompac.yaml"

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid value")

// LoadRandomPac loads the RandomPac configuration.
// Search order: customPath -> ~/.randompac/configs/randompac.yaml ->
// ./configs/randompac.yaml -> embedded default.
// Files are decoded over the defaults, so keys they omit keep default values.
func LoadRandomPac(customPath string) (RandomPacConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultRandomPacConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return DefaultRandomPacConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data); err == nil {
				return cfg, cfg.Validate()
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := decode(data); err == nil {
			return cfg, cfg.Validate()
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultRandomPacYAML)
	if err != nil {
		return DefaultRandomPacConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func decode(data []byte) (RandomPacConfig, error) {
	cfg := DefaultRandomPacConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the values the engine relies on.
func (c RandomPacConfig) Validate() error {
	var problems []string
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Sprintf(format, args...))
		}
	}

	g := c.Geometry
	check(g.TileSize > 0, "geometry.tile_size must be positive")
	check(g.CenterTolerance > 0 && g.CenterTolerance < g.TileSize/2, "geometry.center_tolerance must be in (0, tile_size/2)")
	check(g.ReferenceTickMs > 0, "geometry.reference_tick_ms must be positive")

	s := c.Speeds
	check(s.FrightenedFactor > 0 && s.FrightenedFactor < 1, "speeds.frightened_factor must be in (0, 1)")
	check(s.EatenFactor > 1, "speeds.eaten_factor must be above 1")
	check(s.PowerFactor > 0, "speeds.power_factor must be positive")
	check(s.CaptureRadius > 0, "speeds.capture_radius must be positive")

	check(c.Timing.FrenzyMs >= 0 && c.Timing.RespawnMs >= 0 && c.Timing.MessageMs >= 0, "timing values must not be negative")
	check(c.Player.Lives > 0, "player.lives must be positive")
	check(c.Player.MaxLives >= c.Player.Lives, "player.max_lives must be at least player.lives")

	for t, speeds := range c.Difficulty.Tiers {
		check(speeds.Player > 0 && speeds.Ghost > 0, "difficulty.tiers.%s speeds must be positive", t)
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".randompac", "configs", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
