package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games poll actions through an InputFrame once per tick and never see raw keys.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move up / previous option
	ActionDown           // S, Down arrow - move down / next option
	ActionLeft           // A, Left arrow - move left
	ActionRight          // D, Right arrow - move right
	ActionConfirm        // Enter - confirm the highlighted option
	ActionChoice1        // 1 - pick the first dialogue option
	ActionChoice2        // 2 - pick the second dialogue option
	ActionChoice3        // 3 - pick the third dialogue option
	ActionPause          // P - pause/unpause game
	ActionRestart        // R - restart after game over or completion
	ActionQuit           // Q, Ctrl+C - exit game/session
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
	case ActionConfirm:
		return "Confirm"
	case ActionChoice1:
		return "Choice1"
	case ActionChoice2:
		return "Choice2"
	case ActionChoice3:
		return "Choice3"
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

// Continuous reports whether the action describes a held control (movement)
// rather than a one-shot command. Hosts keep continuous actions set for as long
// as the control is held and one-shot actions for a single tick.
func (a Action) Continuous() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		return true
	default:
		return false
	}
}

// ChoiceIndex maps ActionChoice1..3 to 0..2. Returns -1 for other actions.
func (a Action) ChoiceIndex() int {
	switch a {
	case ActionChoice1:
		return 0
	case ActionChoice2:
		return 1
	case ActionChoice3:
		return 2
	default:
		return -1
	}
}

// InputFrame represents the control state for a single simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{Actions: make(map[Action]bool, len(actions))}
	for _, a := range actions {
		f.Actions[a] = true
	}
	return f
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
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
