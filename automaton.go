package automaton

import (
	"github.com/bits-and-blooms/bitset"
)

// State A single NFA state. IDs are unique within one Automaton.
type State struct {
	ID          string
	IsStart     bool
	IsAccepting bool
}

// Transition A labeled edge. The edge fires on any one of its labels; a label set of {a, b}
// means "on a or on b", never the sequence ab. Parallel edges between the same pair of states
// are allowed.
type Transition struct {
	Source int
	Dest   int
	Labels []Symbol
}

// Automaton Represents a nondeterministic finite automaton and all its states and transitions.
// States are integers internally and are addressed by their string ID from the outside. An
// Automaton is created by a Builder (or by Load) and is read-only afterwards.
type Automaton struct {
	ids   []string
	index map[string]int

	// -1 when the automaton has no states.
	start int

	isAccept *bitset.BitSet

	// Transitions grouped by source state, in insertion order.
	transitions [][]Transition

	numTransitions int
}

func newAutomaton(numStates int) *Automaton {
	return &Automaton{
		ids:         make([]string, 0, numStates),
		index:       make(map[string]int, numStates),
		start:       -1,
		isAccept:    bitset.New(uint(numStates)),
		transitions: make([][]Transition, 0, numStates),
	}
}

// NumStates How many states this automaton has.
func (a *Automaton) NumStates() int {
	return len(a.ids)
}

// NumTransitions How many transitions this automaton has.
func (a *Automaton) NumTransitions() int {
	return a.numTransitions
}

// StartState Returns the unique start state. ok is false only for the empty automaton.
func (a *Automaton) StartState() (State, bool) {
	if a.start < 0 {
		return State{}, false
	}
	return a.stateAt(a.start), true
}

// State Returns the state with the given id.
func (a *Automaton) State(id string) (State, bool) {
	s, ok := a.index[id]
	if !ok {
		return State{}, false
	}
	return a.stateAt(s), true
}

// States Returns all states in declaration order.
func (a *Automaton) States() []State {
	states := make([]State, len(a.ids))
	for s := range a.ids {
		states[s] = a.stateAt(s)
	}
	return states
}

func (a *Automaton) stateAt(s int) State {
	return State{
		ID:          a.ids[s],
		IsStart:     s == a.start,
		IsAccepting: a.isAccept.Test(uint(s)),
	}
}

// IsAccept Returns true if the state with this id is an accept state.
func (a *Automaton) IsAccept(id string) bool {
	s, ok := a.index[id]
	return ok && a.isAccept.Test(uint(s))
}

// TransitionsFrom Returns a copy of all transitions leaving the state with this id. Unknown ids
// have no transitions.
func (a *Automaton) TransitionsFrom(id string) []Transition {
	s, ok := a.index[id]
	if !ok {
		return nil
	}
	out := make([]Transition, len(a.transitions[s]))
	for i, t := range a.transitions[s] {
		out[i] = Transition{
			Source: t.Source,
			Dest:   t.Dest,
			Labels: append([]Symbol(nil), t.Labels...),
		}
	}
	return out
}

// ID Returns the string id of the state at internal index s.
func (a *Automaton) ID(s int) string {
	return a.ids[s]
}

// Symbols Returns every non-epsilon symbol used by some transition, in order of first appearance.
func (a *Automaton) Symbols() []Symbol {
	seen := make(map[Symbol]struct{})
	symbols := make([]Symbol, 0)
	for _, ts := range a.transitions {
		for _, t := range ts {
			for _, l := range t.Labels {
				if l.IsEpsilon() {
					continue
				}
				if _, ok := seen[l]; ok {
					continue
				}
				seen[l] = struct{}{}
				symbols = append(symbols, l)
			}
		}
	}
	return symbols
}
