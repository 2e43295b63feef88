package core

// Action is a discrete, edge-triggered input event, abstracted from physical
// key presses. The platform debounces device input into these.
type Action int

const (
	ActionNone            Action = iota
	ActionFlap                   // Space, Up - flap while playing
	ActionSelectLeft             // Left - previous character in menu
	ActionSelectRight            // Right - next character in menu
	ActionConfirm                // Enter, Space - start from menu
	ActionCancel                 // Esc - back to menu
	ActionRestart                // R - restart after game over
	ActionOpenLeaderboard        // L - open leaderboard from menu
	ActionPause                  // P - pause/unpause while playing
	ActionQuit                   // Q, Ctrl+C - exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionSelectLeft:
		return "SelectLeft"
	case ActionSelectRight:
		return "SelectRight"
	case ActionConfirm:
		return "Confirm"
	case ActionCancel:
		return "Cancel"
	case ActionRestart:
		return "Restart"
	case ActionOpenLeaderboard:
		return "OpenLeaderboard"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the input collected for one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Scroll is the accumulated selection scroll delta (mouse wheel).
	// Positive scrolls forward, negative backward.
	Scroll float64
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// AddScroll accumulates scroll delta for this frame.
func (f *InputFrame) AddScroll(delta float64) {
	f.Scroll += delta
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether nothing was triggered this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && f.Scroll == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Scroll = 0
}
