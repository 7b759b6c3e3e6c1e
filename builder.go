package automaton

import (
	"github.com/bits-and-blooms/bitset"
)

type pendingTransition struct {
	source, dest string
	labels       []Symbol
}

// Builder Collects states and transitions and produces an immutable Automaton. States may be
// referenced by transitions before they are created; unknown references are reported by Finish.
type Builder struct {
	ids         []string
	index       map[string]int
	starts      []string
	isAccept    *bitset.BitSet
	transitions []pendingTransition
	err         error
}

func NewBuilder() *Builder {
	return &Builder{
		index:    make(map[string]int),
		isAccept: bitset.New(2),
	}
}

// CreateState Create a new state with this id and return its index.
func (b *Builder) CreateState(id string) int {
	if s, ok := b.index[id]; ok {
		if b.err == nil {
			b.err = malformed(ErrDuplicateState, "state %q declared twice", id)
		}
		return s
	}
	s := len(b.ids)
	b.ids = append(b.ids, id)
	b.index[id] = s
	return s
}

// SetStart Mark the state as the start state. Finish fails unless exactly one state is marked.
func (b *Builder) SetStart(id string) {
	b.starts = append(b.starts, id)
}

// SetAccept Set or clear this state as an accept state.
func (b *Builder) SetAccept(id string, accept bool) {
	s, ok := b.index[id]
	if !ok {
		if b.err == nil {
			b.err = malformed(ErrUnknownState, "accept flag set on unknown state %q", id)
		}
		return
	}
	b.isAccept.SetTo(uint(s), accept)
}

// AddTransition Add a new transition from source to dest firing on any of labels.
func (b *Builder) AddTransition(source, dest string, labels ...Symbol) {
	b.transitions = append(b.transitions, pendingTransition{
		source: source,
		dest:   dest,
		labels: append([]Symbol(nil), labels...),
	})
}

// AddEpsilon Add an epsilon transition between source and dest.
func (b *Builder) AddEpsilon(source, dest string) {
	b.AddTransition(source, dest, Epsilon)
}

// GetNumStates How many states have been created so far.
func (b *Builder) GetNumStates() int {
	return len(b.ids)
}

// Finish Validates the collected description and returns the automaton. The builder must not
// be used afterwards.
func (b *Builder) Finish() (*Automaton, error) {
	if b.err != nil {
		return nil, b.err
	}

	numStates := len(b.ids)
	if numStates == 0 && len(b.starts) == 0 && len(b.transitions) == 0 {
		// Degenerate: the empty automaton.
		return newAutomaton(0), nil
	}

	switch {
	case len(b.starts) == 0:
		return nil, malformed(ErrNoStartState, "no start state among %d states", numStates)
	case len(b.starts) > 1:
		return nil, malformed(ErrMultipleStartStates, "start states %v", b.starts)
	}
	start, ok := b.index[b.starts[0]]
	if !ok {
		return nil, malformed(ErrUnknownState, "start state %q is not declared", b.starts[0])
	}

	a := newAutomaton(numStates)
	a.ids = append(a.ids, b.ids...)
	for id, s := range b.index {
		a.index[id] = s
	}
	a.start = start
	a.isAccept = b.isAccept.Clone()
	a.transitions = a.transitions[:numStates]

	for _, t := range b.transitions {
		source, ok := b.index[t.source]
		if !ok {
			return nil, malformed(ErrUnknownState, "edge %s->%s: unknown source %q", t.source, t.dest, t.source)
		}
		dest, ok := b.index[t.dest]
		if !ok {
			return nil, malformed(ErrUnknownState, "edge %s->%s: unknown target %q", t.source, t.dest, t.dest)
		}
		a.transitions[source] = append(a.transitions[source], Transition{
			Source: source,
			Dest:   dest,
			Labels: t.labels,
		})
		a.numTransitions++
	}

	return a, nil
}
