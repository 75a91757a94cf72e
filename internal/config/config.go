// Package config provides YAML-based game configuration loading and
// validation for the eggcatch platform.
package config

import "time"

// CatchConfig contains all configuration for the egg catching game.
type CatchConfig struct {
	Field   FieldConfig          `yaml:"field"`
	Catcher CatcherConfig        `yaml:"catcher"`
	Eggs    EggConfig            `yaml:"eggs"`
	Round   RoundConfig          `yaml:"round"`
	Palette []string             `yaml:"palette"`
	Rules   map[string]ColorRule `yaml:"rules"`
}

// FieldConfig defines the playfield size in playfield units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CatcherConfig defines the basket the player moves along the floor.
type CatcherConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Step   float64 `yaml:"step"` // Distance moved per left/right intent
}

// EggConfig defines how falling eggs are spawned.
type EggConfig struct {
	Radius          float64 `yaml:"radius"`
	BaseSpeed       float64 `yaml:"base_speed"`     // Units per tick
	SpeedVariance   float64 `yaml:"speed_variance"` // Upper bound of the random speed bonus
	SpawnIntervalMS int     `yaml:"spawn_interval_ms"`
}

// SpawnInterval returns the spawn cadence as a duration.
func (e EggConfig) SpawnInterval() time.Duration {
	return time.Duration(e.SpawnIntervalMS) * time.Millisecond
}

// RoundConfig defines the round lengths. Classic rounds use DurationSecs;
// marathon rounds use MarathonSecs.
type RoundConfig struct {
	DurationSecs int `yaml:"duration_secs"`
	MarathonSecs int `yaml:"marathon_secs"`
}

// ColorRule is the effect of catching an egg of one color.
type ColorRule struct {
	Score    int    `yaml:"score"`
	GameOver bool   `yaml:"game_over"`
	Display  string `yaml:"display,omitempty"` // Terminal color name; defaults to the palette name
}

// RoundPreset represents a named round length.
type RoundPreset string

const (
	PresetClassic  RoundPreset = "classic"
	PresetMarathon RoundPreset = "marathon"
)
