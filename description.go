package automaton

import (
	"slices"
)

// NodeDescription Declares a single state. Position is carried for the diagram and ignored here.
type NodeDescription struct {
	Start     bool      `yaml:"start,omitempty" json:"start,omitempty"`
	Accepting bool      `yaml:"accepting,omitempty" json:"accepting,omitempty"`
	Position  []float64 `yaml:"position,omitempty" json:"position,omitempty"`
}

// EdgeDescription Declares a transition. Label is a comma separated symbol list, see ParseLabel.
type EdgeDescription struct {
	From  string `yaml:"from" json:"from"`
	To    string `yaml:"to" json:"to"`
	Label string `yaml:"label" json:"label"`
}

// Description The static, declarative form of an automaton.
type Description struct {
	Nodes map[string]NodeDescription `yaml:"nodes" json:"nodes"`
	Edges []EdgeDescription          `yaml:"edges" json:"edges"`
}

// Load
// Builds an Automaton from its description. Fails with a *MalformedAutomatonError if zero or
// more than one start state is declared, or if an edge references an unknown state. A
// description with no nodes and no edges yields the empty automaton.
func Load(desc Description) (*Automaton, error) {
	ids := make([]string, 0, len(desc.Nodes))
	for id := range desc.Nodes {
		ids = append(ids, id)
	}
	// Map order is random; keep state indices stable between loads.
	slices.Sort(ids)

	b := NewBuilder()
	for _, id := range ids {
		node := desc.Nodes[id]
		b.CreateState(id)
		if node.Start {
			b.SetStart(id)
		}
		if node.Accepting {
			b.SetAccept(id, true)
		}
	}

	for _, e := range desc.Edges {
		b.AddTransition(e.From, e.To, ParseLabel(e.Label)...)
	}

	return b.Finish()
}
