// Package config provides YAML-based game configuration loading and
// difficulty management for the tentacles game.
package config

// TentaclesConfig contains all configuration for the tentacles game.
type TentaclesConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Creature   CreatureConfig   `yaml:"creature"`
	Tentacles  TentacleConfig   `yaml:"tentacles"`
	Orbs       OrbConfig        `yaml:"orbs"`
	Particles  ParticleConfig   `yaml:"particles"`
	Session    SessionConfig    `yaml:"session"`
	Autopilot  AutopilotConfig  `yaml:"autopilot"`
	Background BackgroundConfig `yaml:"background"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ArenaConfig defines the playfield edges, in world units.
type ArenaConfig struct {
	BorderWidth     float64 `yaml:"border_width"`
	WarningDistance float64 `yaml:"warning_distance"` // Extra margin that raises the edge warning
}

// CreatureConfig defines the player core.
type CreatureConfig struct {
	Radius float64 `yaml:"radius"`
}

// TentacleConfig defines the batch of tentacles created on every reset.
type TentacleConfig struct {
	Count     int     `yaml:"count"`
	Segments  int     `yaml:"segments"`
	MinLength float64 `yaml:"min_length"` // Total chain length range
	MaxLength float64 `yaml:"max_length"`
}

// OrbConfig defines the collectible orbs.
type OrbConfig struct {
	Count        int     `yaml:"count"`
	Radius       float64 `yaml:"radius"`
	MinRadius    float64 `yaml:"min_radius"`    // Floor for difficulty shrinking
	PulseSpeed   float64 `yaml:"pulse_speed"`   // Phase advance per tick (radians)
	RespawnDelay int     `yaml:"respawn_delay"` // Milliseconds before a collected orb is replaced
}

// ParticleConfig defines the burst spawned on orb pickup.
type ParticleConfig struct {
	Burst    int     `yaml:"burst"`
	MaxLive  int     `yaml:"max_live"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
	MinLife  int     `yaml:"min_life"` // Ticks
	MaxLife  int     `yaml:"max_life"`
	MinSize  float64 `yaml:"min_size"`
	MaxSize  float64 `yaml:"max_size"`
}

// SessionConfig defines session rules.
type SessionConfig struct {
	TimeLimit int `yaml:"time_limit"` // Seconds, 0 disables the countdown
}

// AutopilotConfig defines the figure-eight path followed without pointer input.
type AutopilotConfig struct {
	Step       float64 `yaml:"step"`        // Clock advance per tick
	AmplitudeX float64 `yaml:"amplitude_x"` // Fraction of arena width
	AmplitudeY float64 `yaml:"amplitude_y"` // Fraction of arena height
}

// BackgroundConfig defines the decorative star layer.
type BackgroundConfig struct {
	Stars int `yaml:"stars"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Autopilot speed added at max difficulty
	OrbShrink       float64 `yaml:"orb_shrink"`       // Fraction of orb radius removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
