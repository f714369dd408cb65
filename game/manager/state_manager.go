package manager

import (
	"worm-game/game/types"
)

// StateManager runs the status machine: Ongoing until the first terminal
// status, which then sticks until Reset.
type StateManager struct {
	status types.Status
	ticks  int
}

func NewStateManager() *StateManager {
	return &StateManager{status: types.Ongoing}
}

// Update records the outcome of a tick and returns the resulting status
func (sm *StateManager) Update(outcome types.Status) types.Status {
	if sm.status.IsTerminal() {
		return sm.status
	}
	sm.ticks++
	sm.status = outcome
	return sm.status
}

func (sm *StateManager) Status() types.Status {
	return sm.status
}

func (sm *StateManager) IsOver() bool {
	return sm.status.IsTerminal()
}

// Ticks counts the steps taken, including the one that ended the game
func (sm *StateManager) Ticks() int {
	return sm.ticks
}

func (sm *StateManager) Reset() {
	sm.status = types.Ongoing
	sm.ticks = 0
}
