// Package fsm provides a finite state machine (FSM) driven by a declarative
// configuration of states and event transitions. Every state entered is kept
// in a linear history, so the machine can step back and forth with Undo and
// Redo. It is built with types and utilities from the github.com/enetx/g library.
package fsm

import "github.com/enetx/g"

// Interface compliance check.
var _ StateMachine = (*FSM)(nil)

// New creates a new FSM positioned at the configured initial state.
// The configuration is not validated; see Config.Validate.
func New(config *Config) *FSM {
	return &FSM{
		config:  config,
		history: g.Slice[State]{config.initial},
	}
}

// Clone creates a new FSM instance with the same configuration but a fresh history.
func (f *FSM) Clone() *FSM { return New(f.config) }

// Sync wraps the FSM for use from multiple goroutines.
// The FSM must not be used directly once wrapped.
func (f *FSM) Sync() *SyncFSM { return &SyncFSM{fsm: f} }

// Config returns the configuration the FSM was built from.
func (f *FSM) Config() *Config { return f.config }

// Current returns the FSM's current state.
func (f *FSM) Current() State { return f.history[f.cursor] }

// History returns a copy of every state entered, oldest first.
func (f *FSM) History() g.Slice[State] { return f.history.Clone() }

// Cursor returns the position of the current state in History.
func (f *FSM) Cursor() int { return f.cursor }

// States returns the declared states in declaration order, or, given an event,
// the states that have a transition for it. It does not depend on the current state.
func (f *FSM) States(event ...Event) g.Slice[State] { return f.config.States(event...) }

// ChangeState moves to the given declared state regardless of transitions.
func (f *FSM) ChangeState(s State) error {
	if !f.config.Has(s) {
		return &ErrUnknownState{State: s}
	}

	f.push(s)

	return nil
}

// Trigger attempts to transition using the given event.
func (f *FSM) Trigger(event Event) error {
	current := f.Current()

	next := f.config.Target(current, event)
	if next.IsNone() {
		return &ErrInvalidTransition{From: current, Event: event}
	}

	f.push(next.Some())

	return nil
}

// push drops any states ahead of the cursor before recording s,
// so a new transition after Undo starts a fresh branch.
func (f *FSM) push(s State) {
	f.history = f.history[:f.cursor+1]
	f.history.Push(s)
	f.cursor++
}

// Reset returns the FSM to its initial state and discards all history.
func (f *FSM) Reset() {
	f.history = g.Slice[State]{f.config.initial}
	f.cursor = 0
}

// CanUndo reports whether Undo would move the cursor.
func (f *FSM) CanUndo() bool { return f.cursor > 0 }

// CanRedo reports whether Redo would move the cursor.
func (f *FSM) CanRedo() bool { return f.cursor+1 < len(f.history) }

// Undo steps back to the previous state in history.
// It returns false, leaving the FSM unchanged, when there is nothing to undo.
func (f *FSM) Undo() bool {
	if !f.CanUndo() {
		return false
	}

	f.cursor--

	return true
}

// Redo steps forward to the state most recently undone.
// It returns false, leaving the FSM unchanged, when there is nothing to redo.
func (f *FSM) Redo() bool {
	if !f.CanRedo() {
		return false
	}

	f.cursor++

	return true
}

// ClearHistory keeps only the current state, dropping everything that
// could be reached with Undo or Redo.
func (f *FSM) ClearHistory() {
	f.history = g.Slice[State]{f.Current()}
	f.cursor = 0
}
