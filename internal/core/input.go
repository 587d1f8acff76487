package core

// Action represents a semantic simulation command, abstracted from the
// physical key that produced it.
type Action int

const (
	ActionNone     Action = iota
	ActionSpeedUp         // a, A - shorten the tick delay
	ActionSlowDown        // z, Z - lengthen the tick delay
	ActionQuit            // Space - stop the simulation
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSpeedUp:
		return "SpeedUp"
	case ActionSlowDown:
		return "SlowDown"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ActionForKey maps a single keystroke to an action.
// Unknown keys map to ActionNone and are ignored by the simulation.
func ActionForKey(key rune) Action {
	switch key {
	case 'a', 'A':
		return ActionSpeedUp
	case 'z', 'Z':
		return ActionSlowDown
	case ' ':
		return ActionQuit
	}
	return ActionNone
}
