package stato

import (
	"fmt"

	"github.com/google/uuid"
)

// Machine is a finite state machine instance. It is created by New or
// NewFromDocument, validated exactly once at construction, and never
// re-validated. A machine whose configuration failed validation stays
// queryable but refuses to handle events.
//
// A Machine is not safe for concurrent use; callers sharing one
// instance across goroutines must serialize access themselves.
type Machine struct {
	id        string
	states    map[string]*machineState
	current   string
	status    Status
	valid     bool
	problems  []Problem
	diag      Diagnostics
	observers []Observer
}

// hook is one lifecycle callback slot. A slot bound from a document
// keeps the referenced name; bad marks a name that did not resolve to
// a function.
type hook struct {
	fn   Callback
	name string
	bad  bool
}

// fire checks for a function at call time rather than caching the
// result of validation.
func (h hook) fire() {
	if h.fn != nil {
		h.fn()
	}
}

type machineEvent struct {
	to     string
	before hook
	after  hook
}

type machineState struct {
	events map[string]*machineEvent
	enter  hook
	exit   hook
}

// Option configures a machine at construction
type Option func(*Machine)

// WithDiagnostics routes the machine's warnings and errors to the
// given sink instead of the default stderr logger
func WithDiagnostics(d Diagnostics) Option {
	return func(m *Machine) {
		m.diag = d
	}
}

// WithObserver registers an observer before construction completes
func WithObserver(o Observer) Option {
	return func(m *Machine) {
		m.observers = append(m.observers, o)
	}
}

// New builds a machine from the given configuration. It always returns
// a machine: configuration defects are never fatal, they are recorded
// and discoverable through Status, IsValid and Problems. The machine
// keeps a private deep copy of the configuration.
func New(cfg Config, opts ...Option) *Machine {
	return build(normalizeConfig(cfg.States), cfg.Start, opts)
}

// normalizeConfig deep-copies the caller's configuration into the
// machine's private model. A nil state definition is kept as an empty
// terminal state; a nil event definition is kept as-is so validation
// can flag it.
func normalizeConfig(states map[string]*State) map[string]*machineState {
	if states == nil {
		return nil
	}
	normalized := make(map[string]*machineState, len(states))
	for id, s := range states {
		ms := &machineState{events: map[string]*machineEvent{}}
		if s != nil {
			ms.enter = hook{fn: s.OnEnter}
			ms.exit = hook{fn: s.OnExit}
			for name, ev := range s.Events {
				if ev == nil {
					ms.events[name] = nil
					continue
				}
				ms.events[name] = &machineEvent{
					to:     ev.To,
					before: hook{fn: ev.OnBefore},
					after:  hook{fn: ev.OnAfter},
				}
			}
		}
		normalized[id] = ms
	}
	return normalized
}

func build(states map[string]*machineState, start string, opts []Option) *Machine {
	m := &Machine{
		id:     uuid.New().String(),
		states: states,
		status: StatusOK,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.diag == nil {
		m.diag = defaultDiagnostics(m.id)
	}
	m.validate(start)
	return m
}

// validate runs every check and reports every defect through the
// diagnostics sink; the terminal status is the last defect recorded.
func (m *Machine) validate(start string) {
	if len(m.states) == 0 {
		m.problem(StatusNoValidStates, "configuration declares no states")
	} else if _, ok := m.states[start]; !ok {
		m.problem(StatusInvalidStartState, "start state %q is not a declared state", start)
	} else {
		m.current = start
	}

	for id, st := range m.states {
		if len(st.events) == 0 {
			m.diag.Warnf("state %q accepts no events; it is a terminal state", id)
		}
		if st.enter.bad {
			m.problem(StatusInvalidActionFunc, "state %q onEnter hook %q is not callable", id, st.enter.name)
		}
		if st.exit.bad {
			m.problem(StatusInvalidActionFunc, "state %q onExit hook %q is not callable", id, st.exit.name)
		}
		for name, ev := range st.events {
			if ev == nil {
				m.problem(StatusInvalidEventNode, "state %q event %q has no definition", id, name)
				continue
			}
			if ev.before.bad {
				m.problem(StatusInvalidTransitionFunc, "state %q event %q onBefore hook %q is not callable", id, name, ev.before.name)
			}
			if ev.after.bad {
				m.problem(StatusInvalidTransitionFunc, "state %q event %q onAfter hook %q is not callable", id, name, ev.after.name)
			}
			if _, ok := m.states[ev.to]; !ok {
				m.problem(StatusInvalidTargetState, "state %q event %q targets undeclared state %q", id, name, ev.to)
			}
		}
	}

	m.valid = len(m.problems) == 0
}

func (m *Machine) problem(status Status, format string, args ...any) {
	m.diag.Errorf(format, args...)
	m.status = status
	m.problems = append(m.problems, Problem{Status: status, Detail: fmt.Sprintf(format, args...)})
}

// ID returns the unique instance identifier assigned at construction
func (m *Machine) ID() string {
	return m.id
}

// CurrentState returns the current state identifier verbatim, without
// any validity gate. It is empty when validation failed before a start
// state could be fixed.
func (m *Machine) CurrentState() string {
	return m.current
}

// Status returns StatusOK for a valid machine, otherwise the last
// configuration defect recorded at construction. Problems lists all of
// them.
func (m *Machine) Status() Status {
	return m.status
}

// IsValid reports whether construction recorded no defects
func (m *Machine) IsValid() bool {
	return m.valid
}

// Problems returns every configuration defect detected at construction,
// in the order they were recorded
func (m *Machine) Problems() []Problem {
	out := make([]Problem, len(m.problems))
	copy(out, m.problems)
	return out
}

// CanHandleEvent reports whether the named event is registered on the
// current state. It is always false on an invalid machine.
func (m *Machine) CanHandleEvent(name string) bool {
	if !m.valid {
		m.diag.Errorf("machine improperly initialized; cannot answer CanHandleEvent(%q)", name)
		return false
	}
	_, ok := m.states[m.current].events[name]
	return ok
}

// HandleEvent triggers the named event on the current state and returns
// the outcome. On success the hooks fire in exactly this order:
//
//	onBefore -> onExit(old) -> state change -> onEnter(new) -> onAfter
//
// CurrentState still reports the old state inside onBefore/onExit and
// already reports the new state inside onEnter/onAfter. An event whose
// target is the current state is a valid transition, not a no-op: the
// full hook sequence runs. On any error the state is unchanged and no
// hooks fire. A panic inside a hook propagates to the caller, skipping
// the remaining hooks; the state stays wherever the sequence had
// progressed.
func (m *Machine) HandleEvent(name string) Status {
	if !m.valid {
		m.diag.Errorf("machine improperly initialized; event %q refused", name)
		m.notifyRejected(name, StatusImproperlyInitialized)
		return StatusImproperlyInitialized
	}

	ev, ok := m.states[m.current].events[name]
	if !ok {
		m.diag.Errorf("event %q is not legal in state %q", name, m.current)
		m.notifyRejected(name, StatusIllegalEvent)
		return StatusIllegalEvent
	}

	// Construction validated the target; this guards against any
	// runtime inconsistency.
	target, ok := m.states[ev.to]
	if !ok {
		m.diag.Errorf("event %q in state %q targets undeclared state %q", name, m.current, ev.to)
		m.notifyRejected(name, StatusInvalidTargetState)
		return StatusInvalidTargetState
	}

	from := m.current
	ev.before.fire()
	m.states[from].exit.fire()
	m.current = ev.to
	target.enter.fire()
	ev.after.fire()

	m.notifyTransition(from, ev.to, name)
	return StatusOK
}
