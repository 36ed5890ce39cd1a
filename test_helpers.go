package stato

import (
	"fmt"
	"testing"
)

// RecorderDiagnostics is a diagnostics sink that captures messages for
// test assertions
type RecorderDiagnostics struct {
	Warnings []string
	Errors   []string
}

// NewRecorderDiagnostics creates a new recording diagnostics sink
func NewRecorderDiagnostics() *RecorderDiagnostics {
	return &RecorderDiagnostics{}
}

func (d *RecorderDiagnostics) Warnf(format string, args ...any) {
	d.Warnings = append(d.Warnings, fmt.Sprintf(format, args...))
}

func (d *RecorderDiagnostics) Errorf(format string, args ...any) {
	d.Errors = append(d.Errors, fmt.Sprintf(format, args...))
}

// Reset discards everything recorded so far
func (d *RecorderDiagnostics) Reset() {
	d.Warnings = nil
	d.Errors = nil
}

// HookRecorder records the order in which lifecycle hooks fire
type HookRecorder struct {
	Calls []string
}

// NewHookRecorder creates a new hook recorder
func NewHookRecorder() *HookRecorder {
	return &HookRecorder{}
}

// Hook returns a callback that records the given label when fired
func (r *HookRecorder) Hook(label string) Callback {
	return func() {
		r.Calls = append(r.Calls, label)
	}
}

// HookFunc returns a callback that records the label and then runs fn
func (r *HookRecorder) HookFunc(label string, fn func()) Callback {
	return func() {
		r.Calls = append(r.Calls, label)
		fn()
	}
}

// Reset discards everything recorded so far
func (r *HookRecorder) Reset() {
	r.Calls = nil
}

// TransitionRecord is one observed transition
type TransitionRecord struct {
	From  string
	To    string
	Event string
}

// RejectionRecord is one observed event rejection
type RejectionRecord struct {
	Event  string
	Status Status
}

// RecorderObserver is an observer that captures notifications for test
// assertions
type RecorderObserver struct {
	Transitions []TransitionRecord
	Rejections  []RejectionRecord
}

// NewRecorderObserver creates a new recording observer
func NewRecorderObserver() *RecorderObserver {
	return &RecorderObserver{}
}

func (o *RecorderObserver) OnTransition(from string, to string, event string) {
	o.Transitions = append(o.Transitions, TransitionRecord{From: from, To: to, Event: event})
}

func (o *RecorderObserver) OnEventRejected(event string, status Status) {
	o.Rejections = append(o.Rejections, RejectionRecord{Event: event, Status: status})
}

// Canonical configurations used across tests

// LightSwitchConfig returns the two-state Off/On machine
func LightSwitchConfig() Config {
	return Config{
		Start: "Off",
		States: map[string]*State{
			"Off": {Events: map[string]*Event{
				"turnOn": {To: "On"},
			}},
			"On": {Events: map[string]*Event{
				"turnOff": {To: "Off"},
			}},
		},
	}
}

// LoginConfig returns the LoggedOut/LoggingIn/LoggedIn flow with a
// failure path back to LoggedOut
func LoginConfig() Config {
	return Config{
		Start: "LoggedOut",
		States: map[string]*State{
			"LoggedOut": {Events: map[string]*Event{
				"login": {To: "LoggingIn"},
			}},
			"LoggingIn": {Events: map[string]*Event{
				"success": {To: "LoggedIn"},
				"failure": {To: "LoggedOut"},
			}},
			"LoggedIn": {Events: map[string]*Event{
				"logout": {To: "LoggedOut"},
			}},
		},
	}
}

// Test assertions

// AssertState checks that the machine is in the expected state
func AssertState(t *testing.T, m *Machine, expected string) {
	t.Helper()
	if current := m.CurrentState(); current != expected {
		t.Errorf("Expected state %q, got %q", expected, current)
	}
}

// AssertStatus checks a returned status against the expected one
func AssertStatus(t *testing.T, got Status, expected Status) {
	t.Helper()
	if got != expected {
		t.Errorf("Expected status %v, got %v", expected, got)
	}
}

// AssertValid checks the machine's construction validity
func AssertValid(t *testing.T, m *Machine, expected bool) {
	t.Helper()
	if m.IsValid() != expected {
		t.Errorf("Expected IsValid()=%v, got %v (status %v)", expected, m.IsValid(), m.Status())
	}
}

// AssertCalls checks the exact sequence of recorded hook labels
func AssertCalls(t *testing.T, r *HookRecorder, expected ...string) {
	t.Helper()
	if len(r.Calls) != len(expected) {
		t.Fatalf("Expected %d hook calls %v, got %d: %v", len(expected), expected, len(r.Calls), r.Calls)
	}
	for i, label := range expected {
		if r.Calls[i] != label {
			t.Errorf("Expected hook call %d to be %q, got %q (full sequence %v)", i, label, r.Calls[i], r.Calls)
		}
	}
}
