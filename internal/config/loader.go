package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTentacles loads the tentacles configuration.
// Search order: customPath -> ~/.arcade/configs/tentacles.yaml -> ./configs/tentacles.yaml -> embedded default.
// Files only need to name the fields they override.
func LoadTentacles(customPath string) (TentaclesConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TentaclesConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseTentacles(data)
		if err != nil {
			return TentaclesConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("tentacles.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseTentacles(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "tentacles.yaml")); err == nil {
		if cfg, err := parseTentacles(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parseTentacles(defaultTentaclesYAML)
	if err != nil {
		return DefaultTentaclesConfig(), nil
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg TentaclesConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

func parseTentacles(data []byte) (TentaclesConfig, error) {
	cfg := DefaultTentaclesConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports values that would make the simulation degenerate.
func (c TentaclesConfig) Validate() error {
	var errs []error
	if c.Creature.Radius <= 0 {
		errs = append(errs, errors.New("creature.radius must be positive"))
	}
	if c.Tentacles.Count < 0 {
		errs = append(errs, errors.New("tentacles.count must not be negative"))
	}
	if c.Tentacles.Segments < 1 {
		errs = append(errs, errors.New("tentacles.segments must be at least 1"))
	}
	if c.Tentacles.MinLength <= 0 || c.Tentacles.MaxLength < c.Tentacles.MinLength {
		errs = append(errs, errors.New("tentacles lengths must satisfy 0 < min_length <= max_length"))
	}
	if c.Orbs.Count < 1 {
		errs = append(errs, errors.New("orbs.count must be at least 1"))
	}
	if c.Orbs.Radius <= 0 {
		errs = append(errs, errors.New("orbs.radius must be positive"))
	}
	if c.Orbs.RespawnDelay < 0 {
		errs = append(errs, errors.New("orbs.respawn_delay must not be negative"))
	}
	if c.Particles.Burst < 1 {
		errs = append(errs, errors.New("particles.burst must be at least 1"))
	}
	if c.Particles.MaxLive < 0 {
		errs = append(errs, errors.New("particles.max_live must not be negative"))
	}
	if c.Particles.MinLife < 1 || c.Particles.MaxLife < c.Particles.MinLife {
		errs = append(errs, errors.New("particles lives must satisfy 1 <= min_life <= max_life"))
	}
	if c.Particles.MaxSpeed < c.Particles.MinSpeed || c.Particles.MaxSize < c.Particles.MinSize {
		errs = append(errs, errors.New("particles ranges must have min <= max"))
	}
	if c.Session.TimeLimit < 0 {
		errs = append(errs, errors.New("session.time_limit must not be negative"))
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyTentaclesPreset modifies the config based on a difficulty preset.
func ApplyTentaclesPreset(cfg *TentaclesConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Session.TimeLimit = 90
		cfg.Orbs.Radius = 14
		cfg.Arena.WarningDistance = 60
	case DifficultyHard:
		cfg.Session.TimeLimit = 45
		cfg.Orbs.Radius = 8
		cfg.Arena.WarningDistance = 25
	}
}
