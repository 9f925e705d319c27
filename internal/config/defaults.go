package config

import (
	_ "embed"
)

//go:embed defaults/tentacles.yaml
var defaultTentaclesYAML []byte

// DefaultTentaclesConfig returns the built-in configuration. It mirrors
// defaults/tentacles.yaml and is used when the embedded file cannot be parsed.
func DefaultTentaclesConfig() TentaclesConfig {
	return TentaclesConfig{
		Arena: ArenaConfig{
			BorderWidth:     10,
			WarningDistance: 40,
		},
		Creature: CreatureConfig{
			Radius: 15,
		},
		Tentacles: TentacleConfig{
			Count:     160,
			Segments:  12,
			MinLength: 60,
			MaxLength: 180,
		},
		Orbs: OrbConfig{
			Count:        3,
			Radius:       10,
			MinRadius:    6,
			PulseSpeed:   0.1,
			RespawnDelay: 1000,
		},
		Particles: ParticleConfig{
			Burst:    24,
			MaxLive:  512,
			MinSpeed: 1,
			MaxSpeed: 4,
			MinLife:  20,
			MaxLife:  45,
			MinSize:  4,
			MaxSize:  12,
		},
		Session: SessionConfig{
			TimeLimit: 60,
		},
		Autopilot: AutopilotConfig{
			Step:       0.01,
			AmplitudeX: 0.3,
			AmplitudeY: 0.3,
		},
		Background: BackgroundConfig{
			Stars: 60,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				OrbShrink:       0.4,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tentacles", "tentacles_endless":
		return defaultTentaclesYAML
	default:
		return nil
	}
}
