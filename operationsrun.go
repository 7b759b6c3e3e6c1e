package automaton

// Run Returns true if a accepts input, following every path at once.
func Run(a *Automaton, input []Symbol) bool {
	current := StartSet(a)
	for _, c := range input {
		if current.IsEmpty() {
			return false
		}
		current = ReachableOnSymbol(a, current, c)
	}
	return IsAcceptingSet(a, current)
}

// RunString Like Run, reading each rune of s as one symbol.
func RunString(a *Automaton, s string) bool {
	input := make([]Symbol, 0, len(s))
	for _, r := range s {
		input = append(input, Symbol(string(r)))
	}
	return Run(a, input)
}
