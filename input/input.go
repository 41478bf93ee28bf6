// Package input holds the logical, device-independent action state that the
// game core consumes. Polling real devices is done by the frontend.
package input

// Action represents a logical game action
type Action int

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
	ActionJump
	ActionConfirm
	ActionBack
	ActionDebug
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	"Up", "Down", "Left", "Right", "Jump", "Confirm", "Back", "Debug",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// State stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type State struct {
	Current  [ActionCount]bool
	Previous [ActionCount]bool
}

// Advance swaps buffers: current becomes previous and the new frame's
// pressed set becomes current.
func (s *State) Advance(pressed [ActionCount]bool) {
	s.Previous = s.Current
	s.Current = pressed
}

// Get returns the full ActionState for an action.
func (s *State) Get(a Action) ActionState {
	curr := s.Current[a]
	prev := s.Previous[a]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

func (s *State) Pressed(a Action) bool { return s.Current[a] }

func (s *State) JustPressed(a Action) bool { return s.Current[a] && !s.Previous[a] }

// Consume clears the just-pressed edge of an action so that a screen reached
// in the same step does not see it again.
func (s *State) Consume(a Action) {
	s.Previous[a] = s.Current[a]
}

// Press builds a State where the given actions were just pressed. Used by
// scripted input and tests.
func Press(actions ...Action) *State {
	s := &State{}
	for _, a := range actions {
		s.Current[a] = true
	}
	return s
}
