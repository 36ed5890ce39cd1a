// Package stato provides a configuration-driven finite state machine
// engine. A machine is built once from a declarative Config describing
// states, the events each state accepts, and lifecycle callbacks; the
// configuration is validated eagerly at construction and the machine
// then mediates transitions triggered by named events, firing callbacks
// in a fixed order around the state change.
//
// Machines are flat: there is exactly one current state at any time and
// states have no hierarchy. A machine with an invalid configuration is
// degraded but alive: it can be queried, but refuses to handle events.
package stato

// Callback is a caller-supplied lifecycle hook. It takes no arguments
// and returns nothing; the engine invokes it synchronously and does not
// recover panics raised inside it.
type Callback func()
