package fsm_test

import (
	"errors"
	"testing"

	. "github.com/halushka/fsm"
)

func TestConfig_DeclarationOrder(t *testing.T) {
	cfg := NewConfig("b").
		State("b").
		Transition("a", "go", "b").
		State("b").
		Transition("b", "go", "a")

	assertStates(t, cfg.States(), "b", "a")
	assertEqual(t, cfg.Initial(), State("b"))
	assertTrue(t, cfg.Has("a"))
	assertFalse(t, cfg.Has("c"))
}

func TestConfig_TransitionOverride(t *testing.T) {
	cfg := NewConfig("a").
		Transition("a", "go", "b").
		Transition("a", "go", "c").
		State("b").
		State("c")

	assertEqual(t, cfg.Target("a", "go").Some(), State("c"))
}

func TestConfig_Target(t *testing.T) {
	cfg := NewConfig("a").
		Transition("a", "go", "b").
		Transition("a", "nop", "")

	assertTrue(t, cfg.Target("a", "go").IsSome())
	assertTrue(t, cfg.Target("a", "nop").IsNone())
	assertTrue(t, cfg.Target("a", "missing").IsNone())
	assertTrue(t, cfg.Target("undeclared", "go").IsNone())
}

func TestConfig_Validate(t *testing.T) {
	assertNoError(t, idleRunning().Validate())
}

func TestConfig_ValidateUnknownInitial(t *testing.T) {
	err := NewConfig("ghost").State("a").Validate()

	var unknown *ErrUnknownState
	assertTrue(t, errors.As(err, &unknown))
	assertEqual(t, unknown.State, State("ghost"))
}

func TestConfig_ValidateUnknownTarget(t *testing.T) {
	err := NewConfig("a").Transition("a", "go", "b").Validate()

	var target *ErrUnknownTarget
	assertTrue(t, errors.As(err, &target))
	assertEqual(t, target.From, State("a"))
	assertEqual(t, target.Event, Event("go"))
	assertEqual(t, target.To, State("b"))
}

func TestConfig_ValidateIgnoresEmptyTargets(t *testing.T) {
	assertNoError(t, NewConfig("a").Transition("a", "nop", "").Validate())
}

func TestConfig_NewDoesNotValidate(t *testing.T) {
	cfg := NewConfig("a").Transition("a", "go", "b")
	assertError(t, cfg.Validate())

	fsm := New(cfg)
	assertNoError(t, fsm.Trigger("go"))
	assertEqual(t, fsm.Current(), State("b"))

	assertError(t, fsm.Trigger("go"))
	assertTrue(t, fsm.Undo())
	assertEqual(t, fsm.Current(), State("a"))
}

func TestErrors_Messages(t *testing.T) {
	assertEqual(t, (&ErrUnknownState{State: "x"}).Error(), `fsm: unknown state "x"`)
	assertEqual(t,
		(&ErrInvalidTransition{From: "a", Event: "go"}).Error(),
		`fsm: no matching transition for event "go" from state "a"`)
	assertEqual(t,
		(&ErrUnknownTarget{From: "a", Event: "go", To: "b"}).Error(),
		`fsm: transition on event "go" from state "a" targets unknown state "b"`)
}
