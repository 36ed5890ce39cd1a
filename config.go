package stato

// Config is the declarative description a machine is built from. The
// machine takes a private deep copy at construction, so mutating the
// caller's maps or structs afterwards has no effect on the machine.
type Config struct {
	// Start names the state the machine begins in; it must be a key of States.
	Start string
	// States maps state identifiers to their definitions.
	States map[string]*State
}

// State defines one state: the events it accepts and its entry/exit
// actions. A state with an empty event set is a legal terminal state.
type State struct {
	// Events maps event identifiers to their definitions.
	Events map[string]*Event
	// OnEnter runs after the machine has moved into this state.
	OnEnter Callback
	// OnExit runs before the machine leaves this state.
	OnExit Callback
}

// Event defines one transition: the target state and the hooks fired
// around the state change.
type Event struct {
	// To names the state this event transitions into; it must be a declared state.
	To string
	// OnBefore runs before the old state's OnExit, while the machine is
	// still in the old state.
	OnBefore Callback
	// OnAfter runs after the new state's OnEnter, with the machine
	// already in the new state.
	OnAfter Callback
}
