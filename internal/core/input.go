package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move catcher left
	ActionRight          // D, Right arrow - move catcher right
	ActionConfirm        // Enter, Space - start a round
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart after the round ended
	ActionQuit           // Q, Ctrl+C - exit game/session

	actionCount
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame counts the actions triggered between two simulation ticks.
// Repeats are counted so several presses inside one frame still move the
// basket several steps. The zero value is an empty frame, and copying a
// frame copies its counts.
type InputFrame struct {
	counts [actionCount]int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records one occurrence of an action. Out of range actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a > ActionNone && a < actionCount {
		f.counts[a]++
	}
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Count(a) > 0
}

// Count returns how many times the action was triggered this frame.
func (f InputFrame) Count(a Action) int {
	if a <= ActionNone || a >= actionCount {
		return 0
	}
	return f.counts[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.counts = [actionCount]int{}
}
