// Package catch implements the Egg Catch game: colored eggs fall down the
// playfield and the player moves a basket along the floor to catch the good
// ones and dodge the rest before the round clock runs out.
//
// The simulation is split into pure parts (RuleTable, Spawner, Step, Catcher)
// and a Session that owns all mutable round state and is the only place where
// state transitions happen.
package catch

import (
	"fmt"

	"github.com/vovakirdan/eggcatch/internal/config"
)

// Color names an egg color from the configured palette.
type Color string

// Effect is what catching an egg of a color does to the round.
type Effect struct {
	ScoreDelta int
	Terminates bool // Ends the round immediately
}

// RuleTable maps every palette color to its effect.
// It is validated once at construction, so lookups never fail at runtime.
type RuleTable struct {
	palette []Color
	effects map[Color]Effect
}

// NewRuleTable builds a rule table. The palette and the effects must name
// exactly the same colors; otherwise a *config.ConfigurationError is returned.
func NewRuleTable(palette []Color, effects map[Color]Effect) (*RuleTable, error) {
	names := make([]string, len(palette))
	for i, c := range palette {
		names[i] = string(c)
	}
	rules := make(map[string]config.ColorRule, len(effects))
	for c, e := range effects {
		rules[string(c)] = config.ColorRule{Score: e.ScoreDelta, GameOver: e.Terminates}
	}
	if err := config.ValidateColors(names, rules); err != nil {
		return nil, err
	}

	t := &RuleTable{
		palette: append([]Color(nil), palette...),
		effects: make(map[Color]Effect, len(effects)),
	}
	for c, e := range effects {
		t.effects[c] = e
	}
	return t, nil
}

// RulesFromConfig builds the rule table described by a game configuration.
func RulesFromConfig(cfg config.CatchConfig) (*RuleTable, error) {
	palette := make([]Color, len(cfg.Palette))
	for i, name := range cfg.Palette {
		palette[i] = Color(name)
	}
	effects := make(map[Color]Effect, len(cfg.Rules))
	for name, r := range cfg.Rules {
		effects[Color(name)] = Effect{ScoreDelta: r.Score, Terminates: r.GameOver}
	}
	return NewRuleTable(palette, effects)
}

// EffectOf returns the effect of catching an egg of color c.
// Panics if c is not in the table; a validated table never produces such a color.
func (t *RuleTable) EffectOf(c Color) Effect {
	e, ok := t.effects[c]
	if !ok {
		panic(fmt.Sprintf("catch: no rule for color %q", c))
	}
	return e
}

// IsTerminating reports whether catching color c ends the round.
func (t *RuleTable) IsTerminating(c Color) bool {
	return t.EffectOf(c).Terminates
}

// Palette returns the colors in configured order.
func (t *RuleTable) Palette() []Color {
	return append([]Color(nil), t.palette...)
}
