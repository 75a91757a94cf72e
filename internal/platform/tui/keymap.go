package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/eggcatch/internal/core"
)

type actionBinding struct {
	action core.Action
	key.Binding
}

type menuBinding struct {
	action MenuAction
	key.Binding
}

// KeyMapper translates Bubble Tea key messages to game and menu actions.
// Bindings are checked in order; the first match wins.
type KeyMapper struct {
	game []actionBinding
	menu []menuBinding
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		game: []actionBinding{
			{core.ActionQuit, key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit"))},
			{core.ActionLeft, key.NewBinding(key.WithKeys("left", "a", "h"), key.WithHelp("←/a", "left"))},
			{core.ActionRight, key.NewBinding(key.WithKeys("right", "d", "l"), key.WithHelp("→/d", "right"))},
			{core.ActionConfirm, key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "start"))},
			{core.ActionRestart, key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "again"))},
			{core.ActionBack, key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("esc", "menu"))},
		},
		menu: []menuBinding{
			{MenuActionQuit, key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit"))},
			{MenuActionUp, key.NewBinding(key.WithKeys("w", "up", "k"), key.WithHelp("↑/k", "up"))},
			{MenuActionDown, key.NewBinding(key.WithKeys("s", "down", "j"), key.WithHelp("↓/j", "down"))},
			{MenuActionSelect, key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "play"))},
			{MenuActionScoreboard, key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores"))},
			{MenuActionBack, key.NewBinding(key.WithKeys("b", "esc"))},
		},
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, b := range km.game {
		if key.Matches(msg, b.Binding) {
			return b.action, b.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame records the key's action in an input frame.
// Returns true if the key was a quit request; quits are not recorded.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	for _, b := range km.menu {
		if key.Matches(msg, b.Binding) {
			return b.action
		}
	}
	return MenuActionNone
}

// ShortHelp implements help.KeyMap with the menu bindings that have help text.
func (km *KeyMapper) ShortHelp() []key.Binding {
	var out []key.Binding
	for _, b := range km.menu {
		if b.Help().Key != "" {
			out = append(out, b.Binding)
		}
	}
	return out
}

// FullHelp implements help.KeyMap: menu bindings, then game bindings.
func (km *KeyMapper) FullHelp() [][]key.Binding {
	game := make([]key.Binding, 0, len(km.game))
	for _, b := range km.game {
		game = append(game, b.Binding)
	}
	return [][]key.Binding{km.ShortHelp(), game}
}
