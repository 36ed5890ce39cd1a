package stato

// Observer is notified of machine activity. Observers are a side
// channel: a panicking observer is recovered and reported through the
// diagnostics sink, and never changes the outcome of HandleEvent.
type Observer interface {
	// OnTransition is called after a completed transition, with the
	// machine already in the new state and all hooks fired
	OnTransition(from string, to string, event string)

	// OnEventRejected is called when HandleEvent refuses an event
	OnEventRejected(event string, status Status)
}

// BaseObserver provides no-op implementations of all Observer methods
type BaseObserver struct{}

// OnTransition implements Observer
func (BaseObserver) OnTransition(from string, to string, event string) {}

// OnEventRejected implements Observer
func (BaseObserver) OnEventRejected(event string, status Status) {}

// AddObserver registers an observer on the machine
func (m *Machine) AddObserver(observer Observer) {
	m.observers = append(m.observers, observer)
}

// RemoveObserver removes a previously registered observer
func (m *Machine) RemoveObserver(observer Observer) {
	for i, obs := range m.observers {
		if obs == observer {
			m.observers = append(m.observers[:i], m.observers[i+1:]...)
			break
		}
	}
}

func (m *Machine) notifyTransition(from, to, event string) {
	for _, obs := range m.observers {
		m.safeNotify(func() { obs.OnTransition(from, to, event) })
	}
}

func (m *Machine) notifyRejected(event string, status Status) {
	for _, obs := range m.observers {
		m.safeNotify(func() { obs.OnEventRejected(event, status) })
	}
}

func (m *Machine) safeNotify(notify func()) {
	defer func() {
		if r := recover(); r != nil {
			m.diag.Errorf("observer panic: %v", r)
		}
	}()
	notify()
}
