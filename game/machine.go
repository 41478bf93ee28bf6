package game

import (
	"errors"
	"fmt"
)

var ErrInvalidTransition = errors.New("invalid state transition")

// transitions lists, for every state, the states it may move to.
var transitions = map[State][]State{
	StateMenu:            {StatePlaying, StateLevelSelect, StateSettings},
	StateLevelSelect:     {StatePlaying, StateMenu},
	StateLevelTransition: {StatePlaying},
	StatePlaying:         {StatePaused, StateLevelTransition, StateVictory},
	StatePaused:          {StatePlaying, StateSettings, StateMenu},
	StateSettings:        {StateMenu, StatePaused},
	StateVictory:         {StateMenu},
}

// CanTransition reports whether from → to is in the transition table.
func CanTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Machine holds the active state. Transitions are requested during a step
// and applied once, at the end of it; the last valid request wins.
type Machine struct {
	current    State
	pending    State
	hasPending bool

	origin        SettingsOrigin
	pendingOrigin SettingsOrigin
}

func NewMachine() *Machine {
	return &Machine{current: StateMenu}
}

func (m *Machine) Current() State {
	return m.current
}

// Origin is the screen that opened the current (or last) Settings visit.
func (m *Machine) Origin() SettingsOrigin {
	return m.origin
}

func (m *Machine) Pending() (State, bool) {
	return m.pending, m.hasPending
}

// Request schedules a transition out of the current state.
func (m *Machine) Request(to State) error {
	if !CanTransition(m.current, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.current, to)
	}
	if to == StateSettings {
		m.pendingOrigin = originOf(m.current)
	}
	m.pending = to
	m.hasPending = true
	return nil
}

// RequestBack schedules the return from Settings to whichever screen opened it.
func (m *Machine) RequestBack() error {
	if m.current != StateSettings {
		return fmt.Errorf("%w: back from %s", ErrInvalidTransition, m.current)
	}
	return m.Request(m.origin.State())
}

// Apply performs the pending transition, if any.
func (m *Machine) Apply() (from, to State, changed bool) {
	if !m.hasPending {
		return m.current, m.current, false
	}
	from, to = m.current, m.pending
	m.current = to
	m.hasPending = false
	if to == StateSettings {
		m.origin = m.pendingOrigin
	}
	return from, to, true
}

func originOf(s State) SettingsOrigin {
	if s == StatePaused {
		return OriginPaused
	}
	return OriginMenu
}
