package config

import (
	_ "embed"
)

//go:embed defaults/eggcatch.yaml
var defaultCatchYAML []byte

// DefaultCatchConfig returns the built-in Egg Catch configuration.
func DefaultCatchConfig() CatchConfig {
	return CatchConfig{
		Field: FieldConfig{
			Width:  480,
			Height: 640,
		},
		Catcher: CatcherConfig{
			Width:  100,
			Height: 20,
			Step:   10,
		},
		Eggs: EggConfig{
			Radius:          10,
			BaseSpeed:       3,
			SpeedVariance:   2,
			SpawnIntervalMS: 1000,
		},
		Round: RoundConfig{
			DurationSecs: 15,
			MarathonSecs: 60,
		},
		Palette: []string{"yellow", "blue", "green", "red", "orange", "purple", "pink", "brown", "cyan", "magenta"},
		Rules: map[string]ColorRule{
			"yellow":  {Score: 10},
			"blue":    {Score: 5},
			"green":   {Score: 2},
			"red":     {Score: 0, GameOver: true},
			"orange":  {Score: -5},
			"purple":  {Score: -10},
			"pink":    {Score: -2},
			"brown":   {Score: 15},
			"cyan":    {Score: 8},
			"magenta": {Score: 0, GameOver: true},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultCatchYAML
}
