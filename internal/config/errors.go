package config

import "fmt"

// ConfigurationError reports a configuration that cannot be played.
// It is raised once at startup and is never recovered from.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Validate checks the geometry, timing and color table of a configuration.
// The first problem found is returned as a *ConfigurationError.
func (c CatchConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return invalid("field", "size must be positive, got %gx%g", c.Field.Width, c.Field.Height)
	case c.Catcher.Width <= 0 || c.Catcher.Height <= 0:
		return invalid("catcher", "size must be positive, got %gx%g", c.Catcher.Width, c.Catcher.Height)
	case c.Catcher.Width > c.Field.Width:
		return invalid("catcher.width", "%g exceeds field width %g", c.Catcher.Width, c.Field.Width)
	case c.Catcher.Height > c.Field.Height:
		return invalid("catcher.height", "%g exceeds field height %g", c.Catcher.Height, c.Field.Height)
	case c.Catcher.Step <= 0:
		return invalid("catcher.step", "must be positive, got %g", c.Catcher.Step)
	case c.Eggs.Radius < 0:
		return invalid("eggs.radius", "must not be negative, got %g", c.Eggs.Radius)
	case c.Eggs.BaseSpeed <= 0:
		return invalid("eggs.base_speed", "must be positive, got %g", c.Eggs.BaseSpeed)
	case c.Eggs.SpeedVariance < 0:
		return invalid("eggs.speed_variance", "must not be negative, got %g", c.Eggs.SpeedVariance)
	case c.Eggs.SpawnIntervalMS <= 0:
		return invalid("eggs.spawn_interval_ms", "must be positive, got %d", c.Eggs.SpawnIntervalMS)
	case c.Round.DurationSecs <= 0:
		return invalid("round.duration_secs", "must be positive, got %d", c.Round.DurationSecs)
	case c.Round.MarathonSecs <= 0:
		return invalid("round.marathon_secs", "must be positive, got %d", c.Round.MarathonSecs)
	}
	return ValidateColors(c.Palette, c.Rules)
}

// ValidateColors checks that the palette and the rule table name exactly the
// same colors, with no duplicates and at least one color.
func ValidateColors(palette []string, rules map[string]ColorRule) error {
	if len(palette) == 0 {
		return invalid("palette", "must name at least one color")
	}
	seen := make(map[string]bool, len(palette))
	for _, name := range palette {
		if name == "" {
			return invalid("palette", "empty color name")
		}
		if seen[name] {
			return invalid("palette", "color %q listed twice", name)
		}
		seen[name] = true
		if _, ok := rules[name]; !ok {
			return invalid("rules", "palette color %q has no rule", name)
		}
	}
	for name := range rules {
		if !seen[name] {
			return invalid("palette", "rule color %q is not in the palette", name)
		}
	}
	return nil
}
