package stato

import "testing"

// orderedConfig wires all four hooks on the A --go--> B transition,
// recording the current state at the moment each hook fires.
func orderedConfig(recorder *HookRecorder, machine **Machine, seen *map[string]string) Config {
	observe := func(label string) Callback {
		return recorder.HookFunc(label, func() {
			(*seen)[label] = (*machine).CurrentState()
		})
	}
	return Config{
		Start: "A",
		States: map[string]*State{
			"A": {
				Events: map[string]*Event{
					"go": {To: "B", OnBefore: observe("before"), OnAfter: observe("after")},
				},
				OnExit: observe("exitA"),
			},
			"B": {OnEnter: observe("enterB")},
		},
	}
}

func TestHandleEvent_HookOrdering(t *testing.T) {
	recorder := NewHookRecorder()
	seen := map[string]string{}
	var machine *Machine
	machine = New(orderedConfig(recorder, &machine, &seen), WithDiagnostics(NopDiagnostics))

	AssertStatus(t, machine.HandleEvent("go"), StatusOK)
	AssertState(t, machine, "B")
	AssertCalls(t, recorder, "before", "exitA", "enterB", "after")

	// The state flips exactly at the mutation boundary between onExit
	// and onEnter
	if seen["before"] != "A" || seen["exitA"] != "A" {
		t.Errorf("Expected old state during before/exit, got %v", seen)
	}
	if seen["enterB"] != "B" || seen["after"] != "B" {
		t.Errorf("Expected new state during enter/after, got %v", seen)
	}
}

func TestHandleEvent_SelfTransitionFiresAllHooks(t *testing.T) {
	recorder := NewHookRecorder()
	cfg := Config{
		Start: "A",
		States: map[string]*State{
			"A": {
				Events: map[string]*Event{
					"tick": {To: "A", OnBefore: recorder.Hook("before"), OnAfter: recorder.Hook("after")},
				},
				OnEnter: recorder.Hook("enter"),
				OnExit:  recorder.Hook("exit"),
			},
		},
	}
	machine := New(cfg, WithDiagnostics(NopDiagnostics))

	AssertStatus(t, machine.HandleEvent("tick"), StatusOK)
	AssertState(t, machine, "A")
	AssertCalls(t, recorder, "before", "exit", "enter", "after")
}

func TestHandleEvent_MissingHooksAreSkipped(t *testing.T) {
	recorder := NewHookRecorder()
	cfg := Config{
		Start: "A",
		States: map[string]*State{
			"A": {Events: map[string]*Event{
				"go": {To: "B", OnAfter: recorder.Hook("after")},
			}},
			"B": {OnEnter: recorder.Hook("enterB")},
		},
	}
	machine := New(cfg, WithDiagnostics(NopDiagnostics))

	AssertStatus(t, machine.HandleEvent("go"), StatusOK)
	AssertCalls(t, recorder, "enterB", "after")
}

func TestHandleEvent_NoHooksOnRejection(t *testing.T) {
	recorder := NewHookRecorder()
	cfg := Config{
		Start: "A",
		States: map[string]*State{
			"A": {
				Events: map[string]*Event{
					"go": {To: "B", OnBefore: recorder.Hook("before")},
				},
				OnExit: recorder.Hook("exit"),
			},
			"B": {},
		},
	}
	machine := New(cfg, WithDiagnostics(NopDiagnostics))

	AssertStatus(t, machine.HandleEvent("bogus"), StatusIllegalEvent)
	AssertCalls(t, recorder)
}

func TestHandleEvent_PanicBeforeMutationLeavesOldState(t *testing.T) {
	recorder := NewHookRecorder()
	cfg := Config{
		Start: "A",
		States: map[string]*State{
			"A": {
				Events: map[string]*Event{
					"go": {To: "B", OnBefore: recorder.Hook("before"), OnAfter: recorder.Hook("after")},
				},
				OnExit: func() { panic("exit failed") },
			},
			"B": {OnEnter: recorder.Hook("enterB")},
		},
	}
	machine := New(cfg, WithDiagnostics(NopDiagnostics))

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("Expected the hook panic to propagate")
			}
		}()
		machine.HandleEvent("go")
	}()

	// onExit panicked before the mutation boundary: state unchanged,
	// remaining hooks skipped
	AssertState(t, machine, "A")
	AssertCalls(t, recorder, "before")
}

func TestHandleEvent_PanicAfterMutationKeepsNewState(t *testing.T) {
	recorder := NewHookRecorder()
	cfg := Config{
		Start: "A",
		States: map[string]*State{
			"A": {Events: map[string]*Event{
				"go": {To: "B", OnAfter: recorder.Hook("after")},
			}},
			"B": {OnEnter: func() { panic("enter failed") }},
		},
	}
	machine := New(cfg, WithDiagnostics(NopDiagnostics))

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("Expected the hook panic to propagate")
			}
		}()
		machine.HandleEvent("go")
	}()

	// onEnter panicked after the mutation boundary: the machine is
	// already in B and onAfter never ran
	AssertState(t, machine, "B")
	AssertCalls(t, recorder)
}

func TestHandleEvent_HooksMayReenterQueries(t *testing.T) {
	var machine *Machine
	canDuringEnter := false
	cfg := LightSwitchConfig()
	cfg.States["On"].OnEnter = func() {
		canDuringEnter = machine.CanHandleEvent("turnOff")
	}
	machine = New(cfg, WithDiagnostics(NopDiagnostics))

	AssertStatus(t, machine.HandleEvent("turnOn"), StatusOK)
	if !canDuringEnter {
		t.Error("Expected turnOff to be handleable from inside On's onEnter")
	}
}
