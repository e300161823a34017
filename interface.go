package fsm

import "github.com/enetx/g"

type StateMachine interface {
	Current() State
	ChangeState(State) error
	Trigger(Event) error
	Reset()
	States(...Event) g.Slice[State]
	History() g.Slice[State]
	Cursor() int
	CanUndo() bool
	CanRedo() bool
	Undo() bool
	Redo() bool
	ClearHistory()
}
