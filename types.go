package fsm

import (
	"sync"

	"github.com/enetx/g"
)

type (
	// State represents a finite state in the FSM.
	State g.String
	// Event represents an event that triggers a transition.
	Event g.String

	// Config is the read-only description of a machine: the initial state,
	// the declared states in declaration order and their transition tables.
	Config struct {
		initial     State
		order       g.Slice[State]
		transitions g.Map[State, g.Map[Event, State]]
	}

	// FSM is the main state machine struct.
	// The active state is always history[cursor].
	FSM struct {
		config  *Config
		history g.Slice[State]
		cursor  int
	}

	// SyncFSM is a thread-safe wrapper around an FSM.
	// It protects all state-mutating and state-reading operations with a sync.RWMutex,
	// making it safe for use across multiple goroutines.
	// All methods on SyncFSM are the thread-safe counterparts to the methods on the base FSM.
	SyncFSM struct {
		fsm *FSM
		mu  sync.RWMutex
	}
)
