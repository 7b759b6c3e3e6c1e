package automaton

import "strings"

// Symbol An input symbol of the automaton alphabet, or Epsilon.
type Symbol string

// Epsilon The empty symbol. A transition carrying it fires without consuming input.
const Epsilon = Symbol("ε")

// IsEpsilon Returns true if the symbol is the empty symbol.
func (s Symbol) IsEpsilon() bool {
	return s == Epsilon
}

func isEpsilonToken(tok string) bool {
	switch strings.ToLower(tok) {
	case string(Epsilon), "eps", "epsilon":
		return true
	}
	return false
}

// ParseLabel
// Splits an edge label such as "a", "a,b" or "ε" into its symbols. Duplicates are collapsed and
// the order of first appearance is kept. An empty label is read as epsilon.
func ParseLabel(label string) []Symbol {
	if strings.TrimSpace(label) == "" {
		return []Symbol{Epsilon}
	}

	parts := strings.Split(label, ",")
	symbols := make([]Symbol, 0, len(parts))
	seen := make(map[Symbol]struct{}, len(parts))

	for _, part := range parts {
		tok := strings.TrimSpace(part)
		if tok == "" {
			continue
		}
		sym := Symbol(tok)
		if isEpsilonToken(tok) {
			sym = Epsilon
		}
		if _, ok := seen[sym]; ok {
			continue
		}
		seen[sym] = struct{}{}
		symbols = append(symbols, sym)
	}
	return symbols
}

// hasSymbol any-of match over a transition label set.
func hasSymbol(labels []Symbol, c Symbol) bool {
	for _, l := range labels {
		if l == c {
			return true
		}
	}
	return false
}
