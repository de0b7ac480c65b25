package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := decode(defaultRandomPacYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	def := DefaultRandomPacConfig()

	if cfg.Geometry != def.Geometry {
		t.Errorf("geometry %+v, want %+v", cfg.Geometry, def.Geometry)
	}
	if cfg.Speeds != def.Speeds || cfg.Timing != def.Timing || cfg.Scoring != def.Scoring {
		t.Error("embedded speeds, timing or scoring differ from the hardcoded defaults")
	}
	if cfg.RNG != def.RNG {
		t.Errorf("rng %+v, want %+v", cfg.RNG, def.RNG)
	}
	for _, tier := range Tiers() {
		if cfg.Difficulty.Speeds(tier) != def.Difficulty.Speeds(tier) {
			t.Errorf("tier %s differs", tier)
		}
	}
	if len(cfg.Ghosts) != 4 || cfg.Ghosts[0].Behavior != "chaser" {
		t.Errorf("unexpected roster %+v", cfg.Ghosts)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadCustomPathKeepsOmittedDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := "rng:\n  algorithm: xorshift\n  seed: 99\ndifficulty:\n  tiers:\n    hard: {player: 5, ghost: 4.5}\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRandomPac(path)
	if err != nil {
		t.Fatalf("LoadRandomPac failed: %v", err)
	}
	if cfg.RNG.Algorithm != "xorshift" || cfg.RNG.Seed != 99 {
		t.Errorf("rng not applied: %+v", cfg.RNG)
	}
	if !cfg.RNG.Shared {
		t.Error("omitted rng.shared should keep its default")
	}
	if cfg.Scoring.Dot != 10 || cfg.Player.Lives != 3 {
		t.Error("omitted sections should keep defaults")
	}
	if got := cfg.Difficulty.Speeds(TierHard); got.Player != 5 || got.Ghost != 4.5 {
		t.Errorf("hard tier = %+v, want 5/4.5", got)
	}
	if got := cfg.Difficulty.Speeds(TierExtreme); got.Player != 4.4 {
		t.Errorf("extreme tier should keep its default, got %+v", got)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadRandomPac(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for a missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("speeds:\n  eaten_factor: 0.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRandomPac(bad); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestTierSpeeds(t *testing.T) {
	d := DefaultRandomPacConfig().Difficulty
	cases := map[Tier]TierSpeeds{
		TierClassic: {Player: 3.2, Ghost: 3.0},
		TierHard:    {Player: 3.8, Ghost: 3.6},
		TierExtreme: {Player: 4.4, Ghost: 4.2},
		"nightmare": {Player: 3.2, Ghost: 3.0},
	}
	for tier, want := range cases {
		if got := d.Speeds(tier); got != want {
			t.Errorf("Speeds(%s) = %+v, want %+v", tier, got, want)
		}
	}
}

func TestParseTier(t *testing.T) {
	for in, want := range map[string]Tier{"Hard": TierHard, "extremo": TierExtreme, "": TierClassic, "Clásico": TierClassic} {
		got, err := ParseTier(in)
		if err != nil || got != want {
			t.Errorf("ParseTier(%q) = %s, %v", in, got, err)
		}
	}
	if tier, err := ParseTier("insane"); err == nil || tier != TierClassic {
		t.Errorf("unknown tier should fall back to classic with an error, got %s, %v", tier, err)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ExpandHome("~/x/y.db"); got != filepath.Join(home, "x", "y.db") {
		t.Errorf("ExpandHome = %q", got)
	}
	if got := ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("absolute path changed to %q", got)
	}
}
