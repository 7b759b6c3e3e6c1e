package automaton

import (
	"github.com/bits-and-blooms/bitset"
)

// EpsilonClosure
// Returns every state reachable from states using only epsilon transitions, states included.
// Ids unknown to the automaton are kept in the result but lead nowhere.
func EpsilonClosure(a *Automaton, states StateSet) StateSet {
	seen := bitset.New(uint(a.NumStates()))
	workList := make([]int, 0, states.Len())
	for _, id := range states.IDs() {
		if s, ok := a.index[id]; ok && !seen.Test(uint(s)) {
			seen.Set(uint(s))
			workList = append(workList, s)
		}
	}

	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]

		for _, t := range a.transitions[s] {
			if seen.Test(uint(t.Dest)) || !hasSymbol(t.Labels, Epsilon) {
				continue
			}
			seen.Set(uint(t.Dest))
			workList = append(workList, t.Dest)
		}
	}

	return states.Union(a.toStateSet(seen))
}

// ReachableOnSymbol
// One step of the subset construction: follow every transition labeled c out of states, then
// take the epsilon closure of the targets. states is expected to be epsilon closed already, as
// every valid row header is; no closure is taken before the step.
func ReachableOnSymbol(a *Automaton, states StateSet, c Symbol) StateSet {
	return EpsilonClosure(a, a.toStateSet(a.move(states, c)))
}

// move Returns the direct targets of c-labeled transitions leaving states.
func (a *Automaton) move(states StateSet, c Symbol) *bitset.BitSet {
	targets := bitset.New(uint(a.NumStates()))
	for _, id := range states.IDs() {
		s, ok := a.index[id]
		if !ok {
			continue
		}
		for _, t := range a.transitions[s] {
			if hasSymbol(t.Labels, c) {
				targets.Set(uint(t.Dest))
			}
		}
	}
	return targets
}

func (a *Automaton) toStateSet(states *bitset.BitSet) StateSet {
	ids := make([]string, 0, states.Count())
	for s, ok := states.NextSet(0); ok; s, ok = states.NextSet(s + 1) {
		ids = append(ids, a.ids[s])
	}
	return NewStateSet(ids...)
}

// StartSet Returns the epsilon closure of the start state: the first row of every conversion
// table. The empty automaton has an empty start set.
func StartSet(a *Automaton) StateSet {
	start, ok := a.StartState()
	if !ok {
		return StateSet{}
	}
	return EpsilonClosure(a, NewStateSet(start.ID))
}

// IsAcceptingSet Returns true if some member of the set is an accept state of a.
func IsAcceptingSet(a *Automaton, states StateSet) bool {
	for _, id := range states.IDs() {
		if a.IsAccept(id) {
			return true
		}
	}
	return false
}
