package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionRotate         // Up, W - rotate the falling piece clockwise
	ActionDown           // Down, S - move one row down
	ActionLeft           // Left, A
	ActionRight          // Right, D
	ActionPause          // Esc, P - pause/unpause game
	ActionRestart        // Space, R, Enter - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRotate:
		return "Rotate"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseAction maps a lowercase action name back to an Action.
func ParseAction(name string) (Action, bool) {
	switch name {
	case "rotate", "up":
		return ActionRotate, true
	case "down":
		return ActionDown, true
	case "left":
		return ActionLeft, true
	case "right":
		return ActionRight, true
	case "pause", "escape":
		return ActionPause, true
	case "restart", "space":
		return ActionRestart, true
	case "quit":
		return ActionQuit, true
	}
	return ActionNone, false
}

// InputFrame represents the input state for a single simulation tick.
// Flags are edge-triggered: the platform sets them on key press and clears
// them after each tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
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

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	for _, v := range f.Actions {
		if v {
			return false
		}
	}
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
