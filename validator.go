package automaton

import (
	"fmt"
	"slices"
)

// Rule Identifies which subset-construction rule a table broke. Rules are checked in the order
// they are declared.
type Rule int

const (
	RuleNone         = Rule(iota) // The table is valid
	RuleAlphabet                  // The alphabet holds epsilon or differs from the table columns
	RuleStartRow                  // The start closure has no row
	RuleUniqueRows                // Two rows share a header
	RuleTransitions               // A cell differs from the computed transition
	RuleCompleteness              // A target set has no row of its own
)

func (r Rule) String() string {
	switch r {
	case RuleNone:
		return "none"
	case RuleAlphabet:
		return "alphabet"
	case RuleStartRow:
		return "start-row"
	case RuleUniqueRows:
		return "unique-rows"
	case RuleTransitions:
		return "transitions"
	case RuleCompleteness:
		return "completeness"
	}
	return fmt.Sprintf("Rule(%d)", int(r))
}

// ValidationResult Outcome of Validate. When Valid is false Rule and Reason describe the first
// failing rule. A failure is feedback for the learner, not an error.
type ValidationResult struct {
	Valid  bool
	Rule   Rule
	Reason string
}

func valid() ValidationResult {
	return ValidationResult{Valid: true, Rule: RuleNone}
}

func invalid(rule Rule, format string, args ...any) ValidationResult {
	return ValidationResult{Rule: rule, Reason: fmt.Sprintf(format, args...)}
}

// Validate
// Decides whether table is a faithful subset-construction translation of a over alphabet. The
// rules are checked in a fixed order and the first failure is reported:
//
//  0. alphabet has no epsilon and lists the table columns in order;
//  1. some row header equals the epsilon closure of the start state;
//  2. no two non-empty headers are equal;
//  3. every cell of a row with a header equals ReachableOnSymbol(header, symbol);
//  4. every non-empty cell value is the header of some row.
//
// Rows with an empty header are ignored. Validate reads its inputs and nothing else, so it can
// be called after every edit.
func Validate(table *ConversionTable, a *Automaton, alphabet []Symbol) ValidationResult {
	// 0. Alphabet.
	if slices.ContainsFunc(alphabet, Symbol.IsEpsilon) {
		return invalid(RuleAlphabet, "alphabet %v contains %s", alphabet, Epsilon)
	}
	if columns := table.Alphabet(); !slices.Equal(columns, alphabet) {
		return invalid(RuleAlphabet, "alphabet %v does not match table columns %v", alphabet, columns)
	}

	rows := table.Rows()
	headers := NewHashMap[int](WithCapacity(len(rows)))

	// 1. Start row.
	expected := StartSet(a)
	if !expected.IsEmpty() {
		found := false
		for _, row := range rows {
			if row.Header.Equal(expected) {
				found = true
				break
			}
		}
		if !found {
			return invalid(RuleStartRow, "expected start state %s not present in headers", expected)
		}
	}

	// 2. Unique headers.
	for i, row := range rows {
		if row.Header.IsEmpty() {
			continue
		}
		if _, loaded := headers.GetOrSet(row.Header, i+1); loaded {
			return invalid(RuleUniqueRows, "state %s appears as a header more than once", row.Header)
		}
	}

	// 3. Transitions.
	for _, row := range rows {
		if row.Header.IsEmpty() {
			continue
		}
		for j, c := range alphabet {
			want := ReachableOnSymbol(a, row.Header, c)
			if got := row.Cell(j); !got.Equal(want) {
				return invalid(RuleTransitions, "transition from %s on %s is incorrect (got %s)", row.Header, c, got)
			}
		}
	}

	// 4. Every target has a row.
	for _, row := range rows {
		for _, cell := range row.Cells {
			if cell.IsEmpty() {
				continue
			}
			if !headers.Contains(cell) {
				return invalid(RuleCompleteness, "state %s is reachable but has no row", cell)
			}
		}
	}

	return valid()
}

// IsKnownState Returns true if set is already the header of some row of table.
func IsKnownState(set StateSet, table *ConversionTable) bool {
	if set.IsEmpty() {
		return false
	}
	for _, row := range table.Rows() {
		if row.Header.Equal(set) {
			return true
		}
	}
	return false
}

// HasUniqueHeader Returns true if no row before rowIndex shares its header. Rows with an empty
// header, the label row and out of range indices are never unique.
func HasUniqueHeader(table *ConversionTable, rowIndex int) bool {
	row := table.Row(rowIndex)
	if rowIndex < 1 || row == nil || row.Header.IsEmpty() {
		return false
	}
	for i := 1; i < rowIndex; i++ {
		if table.Row(i).Header.Equal(row.Header) {
			return false
		}
	}
	return true
}
