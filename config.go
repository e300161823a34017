package fsm

import "github.com/enetx/g"

// NewConfig creates an empty configuration whose machines start in initial.
// The initial state still has to be declared with State or Transition.
func NewConfig(initial State) *Config {
	return &Config{
		initial:     initial,
		order:       g.NewSlice[State](),
		transitions: g.NewMap[State, g.Map[Event, State]](),
	}
}

// State declares a state with an empty transition table.
// Declaring an existing state again keeps its original position.
func (c *Config) State(s State) *Config {
	if c.transitions.Contains(s) {
		return c
	}

	c.order.Push(s)
	c.transitions[s] = g.NewMap[Event, State]()

	return c
}

// Transition adds a transition from -> event -> to, declaring from if needed.
// A later transition for the same from and event replaces the earlier one.
func (c *Config) Transition(from State, event Event, to State) *Config {
	c.State(from)
	c.transitions[from][event] = to

	return c
}

// Initial returns the configured initial state.
func (c *Config) Initial() State { return c.initial }

// Has reports whether s is a declared state.
func (c *Config) Has(s State) bool { return c.transitions.Contains(s) }

// Target returns the state reached from the given state on event.
// It is None when the state is undeclared, has no entry for event, or maps it to an empty target.
func (c *Config) Target(from State, event Event) g.Option[State] {
	table, ok := c.transitions[from]
	if !ok {
		return g.None[State]()
	}

	to, ok := table[event]
	if !ok || to == "" {
		return g.None[State]()
	}

	return g.Some(to)
}

// States returns the declared states in declaration order.
// With an event it keeps only the states that have a transition for it.
// An empty event is treated as no event.
func (c *Config) States(event ...Event) g.Slice[State] {
	if len(event) == 0 || event[0] == "" {
		return c.order.Clone()
	}

	states := g.NewSlice[State]()
	for _, s := range c.order {
		if c.Target(s, event[0]).IsSome() {
			states.Push(s)
		}
	}

	return states
}

// Validate checks that the initial state is declared and that every
// transition targets a declared state. New does not call it; machines built
// from an unvalidated config behave exactly as configured.
func (c *Config) Validate() error {
	if !c.Has(c.initial) {
		return &ErrUnknownState{State: c.initial}
	}

	for _, from := range c.order {
		for event, to := range c.transitions[from] {
			if to != "" && !c.Has(to) {
				return &ErrUnknownTarget{From: from, Event: event, To: to}
			}
		}
	}

	return nil
}
