package core

// Action represents a semantic game action, abstracted from physical key presses,
// mouse clicks and touches. Frontends translate their input into Actions.
type Action int

const (
	ActionNone             Action = iota
	ActionUp                      // W, Up arrow, on-screen up button
	ActionDown                    // S, Down arrow, on-screen down button
	ActionLeft                    // A, Left arrow, on-screen left button
	ActionRight                   // D, Right arrow, on-screen right button
	ActionToggleFullscreen        // F11, Alt+Enter
	ActionHideControls            // any key press
	ActionShowControls            // pointer moved
	ActionQuit                    // Q, Ctrl+C, Esc
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionToggleFullscreen:
		return "ToggleFullscreen"
	case ActionHideControls:
		return "HideControls"
	case ActionShowControls:
		return "ShowControls"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the unit step for a movement action and whether a is one.
func (a Action) Direction() (Point, bool) {
	switch a {
	case ActionUp:
		return Pt(0, -1), true
	case ActionDown:
		return Pt(0, 1), true
	case ActionLeft:
		return Pt(-1, 0), true
	case ActionRight:
		return Pt(1, 0), true
	}
	return Point{}, false
}

// MoveActions lists movement actions in the order they are applied each frame.
var MoveActions = []Action{ActionUp, ActionDown, ActionLeft, ActionRight}

// InputFrame represents the input state for one frame.
// It contains all actions that were triggered during this frame.
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
	if a == ActionNone {
		return
	}
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
	return len(f.Actions) == 0
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
