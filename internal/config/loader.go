package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCatch loads the Egg Catch configuration.
// Search order: customPath -> ~/.eggcatch/configs/eggcatch.yaml -> ./configs/eggcatch.yaml -> embedded default
func LoadCatch(customPath string) (CatchConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CatchConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseCatch(data)
		if err != nil {
			return CatchConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("eggcatch.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseCatch(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "eggcatch.yaml")); err == nil {
		if cfg, err := ParseCatch(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseCatch(defaultCatchYAML)
	if err != nil {
		return DefaultCatchConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseCatch decodes YAML on top of the built-in defaults, so a file only needs
// the keys it changes. A document that mentions palette or rules replaces both
// of them, keeping the color table self-consistent. Unknown keys are rejected.
func ParseCatch(data []byte) (CatchConfig, error) {
	cfg := DefaultCatchConfig()

	var colors struct {
		Palette []string             `yaml:"palette"`
		Rules   map[string]ColorRule `yaml:"rules"`
	}
	if err := yaml.Unmarshal(data, &colors); err != nil {
		return CatchConfig{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if colors.Palette != nil || colors.Rules != nil {
		cfg.Palette = nil
		cfg.Rules = nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return CatchConfig{}, fmt.Errorf("yaml decode: %w", err)
	}
	return cfg, nil
}

// MarshalCatch encodes a configuration as YAML.
func MarshalCatch(cfg CatchConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("yaml encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("yaml encode: %w", err)
	}
	return buf.Bytes(), nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".eggcatch", "configs", filename)
}

// ApplyPreset sets the round duration for a preset. Marathon switches to
// round.marathon_secs; classic and unknown presets keep round.duration_secs.
func ApplyPreset(cfg *CatchConfig, preset RoundPreset) {
	if preset == PresetMarathon {
		cfg.Round.DurationSecs = cfg.Round.MarathonSecs
	}
}
