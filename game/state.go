package game

// State is the screen the game is on. Exactly one is active at a time.
type State int

const (
	StateMenu State = iota
	StateLevelSelect
	StateLevelTransition
	StatePlaying
	StatePaused
	StateSettings
	StateVictory
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StateLevelSelect:
		return "LevelSelect"
	case StateLevelTransition:
		return "LevelTransition"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateSettings:
		return "Settings"
	case StateVictory:
		return "Victory"
	default:
		return "Unknown"
	}
}

// SettingsOrigin records which screen opened Settings so "back" can return there.
type SettingsOrigin int

const (
	OriginMenu SettingsOrigin = iota
	OriginPaused
)

func (o SettingsOrigin) String() string {
	if o == OriginPaused {
		return "Paused"
	}
	return "Menu"
}

// State returns the screen Settings goes back to.
func (o SettingsOrigin) State() State {
	if o == OriginPaused {
		return StatePaused
	}
	return StateMenu
}
