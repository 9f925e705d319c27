package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseTentacles(defaultTentaclesYAML)
	if err != nil {
		t.Fatalf("embedded defaults should parse: %v", err)
	}
	if cfg != DefaultTentaclesConfig() {
		t.Errorf("embedded YAML and DefaultTentaclesConfig() diverge:\n%+v\n%+v", cfg, DefaultTentaclesConfig())
	}
}

func TestLoadTentaclesCustomPathOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tentacles.yaml")
	data := []byte("session:\n  time_limit: 30\norbs:\n  count: 5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTentacles(path)
	if err != nil {
		t.Fatalf("LoadTentacles() error = %v", err)
	}
	if cfg.Session.TimeLimit != 30 {
		t.Errorf("time_limit = %d, expected 30", cfg.Session.TimeLimit)
	}
	if cfg.Orbs.Count != 5 {
		t.Errorf("orbs.count = %d, expected 5", cfg.Orbs.Count)
	}
	// Untouched fields keep their defaults
	if cfg.Creature.Radius != 15 {
		t.Errorf("creature.radius = %f, expected default 15", cfg.Creature.Radius)
	}
}

func TestLoadTentaclesErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadTentacles(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should return an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("orbs: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTentacles(bad); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("malformed YAML error = %v, expected parse failure", err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("orbs:\n  count: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTentacles(invalid); err == nil || !strings.Contains(err.Error(), "orbs.count") {
		t.Errorf("invalid config error = %v, expected orbs.count complaint", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TentaclesConfig)
		field  string
	}{
		{"zero radius", func(c *TentaclesConfig) { c.Creature.Radius = 0 }, "creature.radius"},
		{"no segments", func(c *TentaclesConfig) { c.Tentacles.Segments = 0 }, "tentacles.segments"},
		{"inverted lengths", func(c *TentaclesConfig) { c.Tentacles.MaxLength = 1 }, "tentacles lengths"},
		{"negative burst", func(c *TentaclesConfig) { c.Particles.Burst = -1 }, "particles.burst"},
		{"empty burst", func(c *TentaclesConfig) { c.Particles.Burst = 0 }, "particles.burst"},
		{"negative live cap", func(c *TentaclesConfig) { c.Particles.MaxLive = -1 }, "particles.max_live"},
		{"inverted lives", func(c *TentaclesConfig) { c.Particles.MinLife = 99 }, "particles lives"},
		{"negative time", func(c *TentaclesConfig) { c.Session.TimeLimit = -1 }, "session.time_limit"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTentaclesConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.field) {
				t.Errorf("Validate() = %v, expected error mentioning %q", err, tc.field)
			}
		})
	}

	if err := DefaultTentaclesConfig().Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestMarshalRoundTripsDefaults(t *testing.T) {
	data, err := Marshal(DefaultTentaclesConfig())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), "time_limit: 60") {
		t.Errorf("marshalled YAML should use yaml tags, got:\n%s", data)
	}
}

func TestApplyTentaclesPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		enabled   bool
		initial   float64
		timeLimit int
		orbRadius float64
	}{
		{DifficultyEasy, true, 0.0, 90, 14},
		{DifficultyNormal, true, 0.3, 60, 10},
		{DifficultyHard, true, 0.7, 45, 8},
		{DifficultyFixed, false, 0.0, 60, 10},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultTentaclesConfig()
			ApplyTentaclesPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.initial {
				t.Errorf("InitialLevel = %f, expected %f", cfg.Difficulty.InitialLevel, tc.initial)
			}
			if cfg.Session.TimeLimit != tc.timeLimit {
				t.Errorf("TimeLimit = %d, expected %d", cfg.Session.TimeLimit, tc.timeLimit)
			}
			if cfg.Orbs.Radius != tc.orbRadius {
				t.Errorf("Orbs.Radius = %f, expected %f", cfg.Orbs.Radius, tc.orbRadius)
			}
		})
	}
}
