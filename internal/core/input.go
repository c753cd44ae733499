package core

// Action represents a semantic flight command, abstracted from physical key
// presses. The platform maps keys to actions; the simulation polls them.
type Action int

const (
	ActionNone        Action = iota
	ActionThrust             // Space, Up, W - main engine burn (also lift-off)
	ActionRotateLeft         // Left, A - positive torque
	ActionRotateRight        // Right, D - negative torque
	ActionThrottle1          // 1 - full thrust
	ActionThrottle2          // 2 - half thrust
	ActionThrottle3          // 3 - third thrust
	ActionConfirm            // Enter - confirm selection
	ActionBack               // B, Escape - back
	ActionRestart            // R - restart after crash/landing
	ActionQuit               // Q, Ctrl+C - exit
	ActionPause              // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionThrust:
		return "Thrust"
	case ActionRotateLeft:
		return "RotateLeft"
	case ActionRotateRight:
		return "RotateRight"
	case ActionThrottle1:
		return "ThrottleFull"
	case ActionThrottle2:
		return "ThrottleHalf"
	case ActionThrottle3:
		return "ThrottleThird"
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

// InputFrame represents the polled command state for a single simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
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
