package manager

import (
	"grid-snake/game/types"

	"github.com/rs/zerolog"
)

// StateManager owns the running state. Exit is terminal.
type StateManager struct {
	state types.RunningState
	log   zerolog.Logger
}

func NewStateManager(log zerolog.Logger) *StateManager {
	return &StateManager{
		state: types.Paused,
		log:   log,
	}
}

func (sm *StateManager) State() types.RunningState {
	return sm.state
}

func (sm *StateManager) Running() bool {
	return sm.state == types.Running
}

// Toggle flips between Paused and Running.
func (sm *StateManager) Toggle() bool {
	switch sm.state {
	case types.Paused:
		return sm.transition(types.Running, "resume")
	case types.Running:
		return sm.transition(types.Paused, "pause")
	default:
		return false
	}
}

// Quit moves to Exit from any live state.
func (sm *StateManager) Quit() bool {
	return sm.transition(types.Exit, "quit")
}

// Die moves a running game to Exit.
func (sm *StateManager) Die() bool {
	if sm.state != types.Running {
		return false
	}
	return sm.transition(types.Exit, "death")
}

func (sm *StateManager) transition(to types.RunningState, reason string) bool {
	if sm.state == types.Exit || sm.state == to {
		return false
	}
	sm.log.Debug().
		Stringer("from", sm.state).
		Stringer("to", to).
		Str("reason", reason).
		Msg("running state changed")
	sm.state = to
	return true
}
