package catch

import (
	"errors"
	"testing"

	"github.com/vovakirdan/eggcatch/internal/config"
)

func TestRulesFromDefaults(t *testing.T) {
	rules, err := RulesFromConfig(config.DefaultCatchConfig())
	if err != nil {
		t.Fatalf("RulesFromConfig: %v", err)
	}

	tests := []struct {
		color      Color
		delta      int
		terminates bool
	}{
		{"yellow", 10, false},
		{"blue", 5, false},
		{"green", 2, false},
		{"red", 0, true},
		{"orange", -5, false},
		{"purple", -10, false},
		{"pink", -2, false},
		{"brown", 15, false},
		{"cyan", 8, false},
		{"magenta", 0, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.color), func(t *testing.T) {
			e := rules.EffectOf(tt.color)
			if e.ScoreDelta != tt.delta {
				t.Errorf("ScoreDelta = %d, want %d", e.ScoreDelta, tt.delta)
			}
			if e.Terminates != tt.terminates || rules.IsTerminating(tt.color) != tt.terminates {
				t.Errorf("Terminates = %v, want %v", e.Terminates, tt.terminates)
			}
		})
	}

	if got := len(rules.Palette()); got != len(tests) {
		t.Errorf("palette has %d colors, want %d", got, len(tests))
	}
}

func TestNewRuleTableMismatch(t *testing.T) {
	tests := []struct {
		name    string
		palette []Color
		effects map[Color]Effect
		field   string
	}{
		{"empty palette", nil, map[Color]Effect{}, "palette"},
		{"palette color without rule", []Color{"red", "blue"}, map[Color]Effect{"red": {}}, "rules"},
		{"rule color not in palette", []Color{"red"}, map[Color]Effect{"red": {}, "blue": {}}, "palette"},
		{"duplicate color", []Color{"red", "red"}, map[Color]Effect{"red": {}}, "palette"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRuleTable(tt.palette, tt.effects)
			var cfgErr *config.ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigurationError, got %v", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("Field = %q, want %q", cfgErr.Field, tt.field)
			}
		})
	}
}

func TestEffectOfUnknownColorPanics(t *testing.T) {
	rules, err := NewRuleTable([]Color{"red"}, map[Color]Effect{"red": {Terminates: true}})
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Error("EffectOf should panic for a color outside the table")
		}
	}()
	rules.EffectOf("chartreuse")
}

func TestPaletteIsCopy(t *testing.T) {
	rules, err := NewRuleTable([]Color{"red", "blue"}, map[Color]Effect{"red": {}, "blue": {}})
	if err != nil {
		t.Fatal(err)
	}
	p := rules.Palette()
	p[0] = "green"
	if rules.Palette()[0] != "red" {
		t.Error("modifying the returned palette should not affect the table")
	}
}
