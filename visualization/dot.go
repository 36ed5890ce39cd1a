// Package visualization renders machine configurations as Graphviz
// DOT graphs.
package visualization

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/anggasct/stato"
)

// DOTGenerator generates Graphviz DOT representations of a machine
// configuration
type DOTGenerator struct {
	config  stato.Config
	options DOTOptions
}

// DOTOptions configures the DOT generation
type DOTOptions struct {
	ShowEventLabels bool
	RankDirection   string // "TB", "LR", "BT", "RL"
	NodeShape       string
}

// DefaultDOTOptions returns sensible default options for DOT generation
func DefaultDOTOptions() DOTOptions {
	return DOTOptions{
		ShowEventLabels: true,
		RankDirection:   "TB",
		NodeShape:       "box",
	}
}

// NewDOTGenerator creates a new DOT generator for the given configuration
func NewDOTGenerator(config stato.Config, options ...DOTOptions) *DOTGenerator {
	opts := DefaultDOTOptions()
	if len(options) > 0 {
		opts = options[0]
	}

	return &DOTGenerator{
		config:  config,
		options: opts,
	}
}

// Generate creates a DOT representation of the configuration. States
// and events are emitted in sorted order so output is deterministic.
func (g *DOTGenerator) Generate() (string, error) {
	var dot strings.Builder

	dot.WriteString("digraph Machine {\n")
	dot.WriteString(fmt.Sprintf("  rankdir=%s;\n", g.options.RankDirection))
	dot.WriteString(fmt.Sprintf("  node [shape=%s];\n", g.options.NodeShape))
	dot.WriteString("  edge [fontsize=10];\n\n")

	g.generateStates(&dot)
	g.generateTransitions(&dot)

	dot.WriteString("}\n")

	return dot.String(), nil
}

func (g *DOTGenerator) generateStates(dot *strings.Builder) {
	dot.WriteString("  // States\n")

	for _, stateID := range g.sortedStateIDs() {
		g.generateStateNode(dot, stateID, g.config.States[stateID])
	}
	dot.WriteString("\n")
}

func (g *DOTGenerator) generateStateNode(dot *strings.Builder, stateID string, state *stato.State) {
	shape := g.options.NodeShape
	fillColor := "lightblue"
	label := stateID

	if stateID == g.config.Start {
		fillColor = "lightgreen"
		label += "\\n(start)"
	}

	if state == nil || len(state.Events) == 0 {
		// No outgoing events: terminal state
		shape = "doublecircle"
		fillColor = "lightcoral"
	}

	dot.WriteString(fmt.Sprintf("  %q [shape=%s style=\"filled\" fillcolor=%s label=\"%s\"];\n",
		stateID, shape, fillColor, label))
}

func (g *DOTGenerator) generateTransitions(dot *strings.Builder) {
	dot.WriteString("  // Transitions\n")

	for _, stateID := range g.sortedStateIDs() {
		state := g.config.States[stateID]
		if state == nil {
			continue
		}

		events := make([]string, 0, len(state.Events))
		for name := range state.Events {
			events = append(events, name)
		}
		sort.Strings(events)

		for _, name := range events {
			event := state.Events[name]
			if event == nil {
				continue
			}
			if g.options.ShowEventLabels {
				dot.WriteString(fmt.Sprintf("  %q -> %q [label=%q];\n", stateID, event.To, name))
			} else {
				dot.WriteString(fmt.Sprintf("  %q -> %q;\n", stateID, event.To))
			}
		}
	}
}

func (g *DOTGenerator) sortedStateIDs() []string {
	ids := make([]string, 0, len(g.config.States))
	for id := range g.config.States {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// GenerateToFile writes the DOT representation to a file
func (g *DOTGenerator) GenerateToFile(filename string) error {
	content, err := g.Generate()
	if err != nil {
		return err
	}

	return os.WriteFile(filename, []byte(content), 0644)
}
