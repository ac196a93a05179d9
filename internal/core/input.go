package core

// Action represents a semantic game action, abstracted from physical key presses.
// Every action is edge-triggered: one key press delivers one action.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionRestart        // R, Enter, or the Play Again button - only after game over
	ActionQuit           // Q, Esc, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
