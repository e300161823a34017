package fsm

import "github.com/enetx/g"

// Interface compliance check.
var _ StateMachine = (*SyncFSM)(nil)

// Current is the thread-safe version of FSM.Current.
// It returns the FSM's current state.
func (sf *SyncFSM) Current() State {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.Current()
}

// ChangeState is the thread-safe version of FSM.ChangeState.
// It atomically moves the FSM to a declared state.
func (sf *SyncFSM) ChangeState(s State) error {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.ChangeState(s)
}

// Trigger is the thread-safe version of FSM.Trigger.
// It atomically executes a state transition in response to an event.
func (sf *SyncFSM) Trigger(event Event) error {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.Trigger(event)
}

// Reset is the thread-safe version of FSM.Reset.
// It returns the FSM to its initial state and discards its history.
func (sf *SyncFSM) Reset() {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	sf.fsm.Reset()
}

// States is the thread-safe version of FSM.States.
func (sf *SyncFSM) States(event ...Event) g.Slice[State] {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.States(event...)
}

// History is the thread-safe version of FSM.History.
// It returns a copy of the state history.
func (sf *SyncFSM) History() g.Slice[State] {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.History()
}

// Cursor is the thread-safe version of FSM.Cursor.
func (sf *SyncFSM) Cursor() int {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.Cursor()
}

// CanUndo is the thread-safe version of FSM.CanUndo.
// The answer may be stale by the time the caller acts on it; use Undo directly
// when the check and the move must be atomic.
func (sf *SyncFSM) CanUndo() bool {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.CanUndo()
}

// CanRedo is the thread-safe version of FSM.CanRedo.
func (sf *SyncFSM) CanRedo() bool {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.CanRedo()
}

// Undo is the thread-safe version of FSM.Undo.
func (sf *SyncFSM) Undo() bool {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.Undo()
}

// Redo is the thread-safe version of FSM.Redo.
func (sf *SyncFSM) Redo() bool {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.Redo()
}

// ClearHistory is the thread-safe version of FSM.ClearHistory.
// It keeps only the current state in the history.
func (sf *SyncFSM) ClearHistory() {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	sf.fsm.ClearHistory()
}
