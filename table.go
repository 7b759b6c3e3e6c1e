package automaton

import (
	"fmt"
	"slices"
)

// Row One DFA state of a conversion table: the header set and one target set per alphabet
// symbol, in alphabet order.
type Row struct {
	Header StateSet
	Cells  []StateSet
}

// Cell Returns the cell at column j. Columns the row never filled read as the empty set.
func (r *Row) Cell(j int) StateSet {
	if j < 0 || j >= len(r.Cells) {
		return StateSet{}
	}
	return r.Cells[j]
}

// ConversionTable The learner's subset-construction grid. Row 0 holds the column labels and no
// state data; rows 1.. are DFA states. Rows are never removed.
type ConversionTable struct {
	alphabet []Symbol
	rows     []*Row
}

// NewConversionTable Creates a table with the label row and one empty row to fill in.
func NewConversionTable(alphabet []Symbol) (*ConversionTable, error) {
	if slices.ContainsFunc(alphabet, Symbol.IsEpsilon) {
		return nil, ErrEpsilonInAlphabet
	}
	t := &ConversionTable{
		alphabet: slices.Clone(alphabet),
		rows:     []*Row{{}},
	}
	t.EnsureTrailingEmptyRow()
	return t, nil
}

// Alphabet Returns the column symbols.
func (t *ConversionTable) Alphabet() []Symbol {
	return slices.Clone(t.alphabet)
}

// Len Number of rows including the label row.
func (t *ConversionTable) Len() int {
	return len(t.rows)
}

// Row Returns row i, or nil if i is out of range.
func (t *ConversionTable) Row(i int) *Row {
	if i < 0 || i >= len(t.rows) {
		return nil
	}
	return t.rows[i]
}

// Rows Returns the state rows, that is every row but the label row.
func (t *ConversionTable) Rows() []*Row {
	return t.rows[1:]
}

// AppendRow Adds a new row at the end and returns its index.
func (t *ConversionTable) AppendRow() int {
	t.rows = append(t.rows, &Row{
		Cells: make([]StateSet, len(t.alphabet)),
	})
	return len(t.rows) - 1
}

// EnsureTrailingEmptyRow
// Appends an empty row if the last row has a header, so there is always room for the next DFA
// state. Call it after every header edit. It never trims.
func (t *ConversionTable) EnsureTrailingEmptyRow() {
	if len(t.rows) > 1 && t.rows[len(t.rows)-1].Header.IsEmpty() {
		return
	}
	t.AppendRow()
}

// SetHeader Replaces the header of row i.
func (t *ConversionTable) SetHeader(i int, ids ...string) error {
	if i < 1 || i >= len(t.rows) {
		return fmt.Errorf("set header of row %d: %w", i, ErrRowOutOfRange)
	}
	t.rows[i].Header = NewStateSet(ids...)
	return nil
}

// SetCell Replaces the cell of row i under alphabet column j.
func (t *ConversionTable) SetCell(i, j int, ids ...string) error {
	if i < 1 || i >= len(t.rows) {
		return fmt.Errorf("set cell (%d, %d): %w", i, j, ErrRowOutOfRange)
	}
	if j < 0 || j >= len(t.alphabet) {
		return fmt.Errorf("set cell (%d, %d): %w", i, j, ErrColumnOutOfRange)
	}
	row := t.rows[i]
	row.Cells = grow(row.Cells, len(t.alphabet))
	row.Cells[j] = NewStateSet(ids...)
	return nil
}

// Column Returns the column index of symbol c, or -1.
func (t *ConversionTable) Column(c Symbol) int {
	return slices.Index(t.alphabet, c)
}
