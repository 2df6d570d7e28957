package core

// Action is a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // cursor one hex up
	ActionDown           // cursor one hex down
	ActionLeft           // cursor left, zigzagging to stay level
	ActionRight          // cursor right, zigzagging to stay level
	ActionUpLeft
	ActionUpRight
	ActionDownLeft
	ActionDownRight
	ActionConfirm // click the hex under the cursor
	ActionFlip    // mirror the board view
	ActionRestart // reset to the opening position
	ActionBack
	ActionQuit
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
	case ActionUpLeft:
		return "UpLeft"
	case ActionUpRight:
		return "UpRight"
	case ActionDownLeft:
		return "DownLeft"
	case ActionDownRight:
		return "DownRight"
	case ActionConfirm:
		return "Confirm"
	case ActionFlip:
		return "Flip"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
