package core

// Action represents a semantic input, abstracted from physical key presses.
// The four direction actions are the console buttons; the rest are
// platform-level controls that never reach an engine.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow, h
	ActionRight          // D, Right arrow, l
	ActionUp             // W, Up arrow, k, Space (flap / rotate)
	ActionDown           // S, Down arrow, j (soft drop)
	ActionConfirm        // Enter
	ActionBack           // B, Escape
	ActionRestart        // R
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P
)

// Buttons lists the four console buttons in polling order: Left, Down, Right, Up.
var Buttons = [...]Action{ActionLeft, ActionDown, ActionRight, ActionUp}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// IsButton reports whether a is one of the four console buttons.
func (a Action) IsButton() bool {
	return a >= ActionLeft && a <= ActionDown
}

// InputFrame holds the actions triggered since the previous simulation tick.
type InputFrame struct {
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

// AnyButton reports whether any console button is held in this frame.
func (f InputFrame) AnyButton() bool {
	for _, b := range Buttons {
		if f.Has(b) {
			return true
		}
	}
	return false
}

// Merge adds every action of other into f.
// Games use it to latch presses across platform ticks until the engine steps.
func (f *InputFrame) Merge(other InputFrame) {
	for a, on := range other.Actions {
		if on {
			f.Set(a)
		}
	}
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
