package stato

// Status reports construction validity or the outcome of a single
// HandleEvent call.
type Status int

const (
	// StatusOK indicates a valid configuration or a completed transition
	StatusOK Status = iota
	// StatusIllegalEvent indicates the event is not registered on the current state
	StatusIllegalEvent
	// StatusInvalidStartState indicates the start state is not a declared state
	StatusInvalidStartState
	// StatusNoValidStates indicates the configuration declares no states
	StatusNoValidStates
	// StatusInvalidEventNode indicates a declared event with no definition
	StatusInvalidEventNode
	// StatusInvalidTargetState indicates an event targeting an undeclared state
	StatusInvalidTargetState
	// StatusInvalidTransitionFunc indicates an onBefore/onAfter hook that is not callable
	StatusInvalidTransitionFunc
	// StatusInvalidActionFunc indicates an onEnter/onExit hook that is not callable
	StatusInvalidActionFunc
	// StatusImproperlyInitialized indicates an operation on a machine whose construction failed
	StatusImproperlyInitialized
)

// statusNames carries the wire-level names. ERROR_INVALID_TRANSISTION_FUNCTION
// keeps its historical spelling; consumers match on the exact string.
var statusNames = map[Status]string{
	StatusOK:                    "OK",
	StatusIllegalEvent:          "ERROR_ILLEGAL_EVENT",
	StatusInvalidStartState:     "ERROR_INVALID_START_STATE",
	StatusNoValidStates:         "ERROR_NO_VALID_STATES",
	StatusInvalidEventNode:      "ERROR_INVALID_EVENT_NODE",
	StatusInvalidTargetState:    "ERROR_INVALID_TARGET_STATE",
	StatusInvalidTransitionFunc: "ERROR_INVALID_TRANSISTION_FUNCTION",
	StatusInvalidActionFunc:     "ERROR_INVALID_ACTION_FUNCTION",
	StatusImproperlyInitialized: "ERROR_IMPROPERLY_INITIALIZED",
}

// String returns the wire-level name of the status
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsOK reports whether the status indicates success
func (s Status) IsOK() bool {
	return s == StatusOK
}

// Problem records one configuration defect detected at construction
type Problem struct {
	Status Status
	Detail string
}

func (p Problem) String() string {
	return p.Status.String() + ": " + p.Detail
}
