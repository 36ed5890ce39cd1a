package stato

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Document is the on-disk YAML form of a machine configuration. Hooks
// cannot live in a file, so a document references them by name and the
// names are bound against a registry at construction:
//
//	start: "Off"
//	states:
//	  "Off":
//	    events:
//	      turnOn: {to: "On", onBefore: beep}
//	  "On":
//	    onEnter: lamp
//	    events:
//	      turnOff: {to: "Off"}
type Document struct {
	Start  string                   `yaml:"start"`
	States map[string]DocumentState `yaml:"states"`
}

// DocumentState is the document form of a state definition
type DocumentState struct {
	Events  map[string]*DocumentEvent `yaml:"events"`
	OnEnter string                    `yaml:"onEnter,omitempty"`
	OnExit  string                    `yaml:"onExit,omitempty"`
}

// DocumentEvent is the document form of an event definition
type DocumentEvent struct {
	To       string `yaml:"to"`
	OnBefore string `yaml:"onBefore,omitempty"`
	OnAfter  string `yaml:"onAfter,omitempty"`
}

// ParseDocument decodes a YAML document. A decode failure is an
// ordinary error: the document never reached construction, so there is
// no degraded machine to return.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode machine document: %w", err)
	}
	return &doc, nil
}

// LoadDocument reads and decodes a YAML document from r
func LoadDocument(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read machine document: %w", err)
	}
	return ParseDocument(data)
}

// NewFromDocument builds a machine from a document, binding hook names
// against the registry. A name that is unbound, or bound to nil, is a
// configuration defect (ERROR_INVALID_ACTION_FUNCTION for state hooks,
// ERROR_INVALID_TRANSISTION_FUNCTION for event hooks) recorded on the
// returned machine exactly like any other validation failure.
func NewFromDocument(doc *Document, hooks map[string]Callback, opts ...Option) *Machine {
	if doc == nil {
		return build(nil, "", opts)
	}
	return build(doc.normalize(hooks), doc.Start, opts)
}

func (d *Document) normalize(hooks map[string]Callback) map[string]*machineState {
	if d.States == nil {
		return nil
	}
	states := make(map[string]*machineState, len(d.States))
	for id, s := range d.States {
		ms := &machineState{
			events: map[string]*machineEvent{},
			enter:  bindHook(s.OnEnter, hooks),
			exit:   bindHook(s.OnExit, hooks),
		}
		for name, ev := range s.Events {
			if ev == nil {
				ms.events[name] = nil
				continue
			}
			ms.events[name] = &machineEvent{
				to:     ev.To,
				before: bindHook(ev.OnBefore, hooks),
				after:  bindHook(ev.OnAfter, hooks),
			}
		}
		states[id] = ms
	}
	return states
}

func bindHook(name string, hooks map[string]Callback) hook {
	if name == "" {
		return hook{}
	}
	fn := hooks[name]
	return hook{fn: fn, name: name, bad: fn == nil}
}
