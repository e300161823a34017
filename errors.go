package fsm

import "fmt"

// ErrInvalidTransition is returned when no matching transition is found for the given event
// from the current state. The FSM is left unchanged.
type ErrInvalidTransition struct {
	From  State
	Event Event
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("fsm: no matching transition for event %q from state %q", e.Event, e.From)
}

// ErrUnknownState is returned when a state is requested that has not been
// declared in the FSM's configuration. This prevents the FSM from entering
// an invalid, undeclared state.
type ErrUnknownState struct {
	State State
}

func (e *ErrUnknownState) Error() string {
	return fmt.Sprintf("fsm: unknown state %q", e.State)
}

// ErrUnknownTarget is returned by Config.Validate when a transition leads to
// a state that is not declared.
type ErrUnknownTarget struct {
	From  State
	Event Event
	To    State
}

func (e *ErrUnknownTarget) Error() string {
	return fmt.Sprintf("fsm: transition on event %q from state %q targets unknown state %q", e.Event, e.From, e.To)
}
