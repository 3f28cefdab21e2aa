package core

// Action represents a semantic game action, abstracted from physical key presses.
// Backends translate their own key events into actions; the engine never sees keys.
type Action int

const (
	ActionNone   Action = iota
	ActionUp            // W, Up arrow - jump towards the goal row
	ActionDown          // S, Down arrow - jump back towards the start bank
	ActionLeft          // A, Left arrow - side step left
	ActionRight         // D, Right arrow - side step right
	ActionQuit          // Q, Ctrl+C - end the game
	ActionAnyKey        // any other key; only dismisses the end banner
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
	case ActionQuit:
		return "Quit"
	case ActionAnyKey:
		return "AnyKey"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action is one of the four directional moves.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionRight
}
