package automaton

import (
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// Solution Handed to the success callback once the learner's table validates.
type Solution struct {
	// DFA states in row order.
	States []StateSet
	// The subset of States holding an accept state of the NFA.
	Accepting []StateSet
	Table     *ConversionTable
}

type lessonOptions struct {
	logger   *zap.Logger
	onSolved func(Solution)
	table    *ConversionTable
}

type LessonOption func(*lessonOptions)

// WithLogger Log each check at debug level.
func WithLogger(logger *zap.Logger) LessonOption {
	return func(o *lessonOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithOnSolved Called every time Check finds the table valid.
func WithOnSolved(fn func(Solution)) LessonOption {
	return func(o *lessonOptions) {
		o.onSolved = fn
	}
}

// WithTable Start from an existing table instead of an empty one. The table must use the
// lesson alphabet.
func WithTable(table *ConversionTable) LessonOption {
	return func(o *lessonOptions) {
		o.table = table
	}
}

// Lesson Holds one run of the conversion exercise: the automaton, the alphabet and the table the
// learner is editing. Edits are applied one at a time by the caller.
type Lesson struct {
	automaton *Automaton
	alphabet  []Symbol
	table     *ConversionTable
	logger    *zap.Logger
	onSolved  func(Solution)
}

func NewLesson(a *Automaton, alphabet []Symbol, options ...LessonOption) (*Lesson, error) {
	opts := &lessonOptions{
		logger: zap.NewNop(),
	}
	for _, fn := range options {
		fn(opts)
	}

	table := opts.table
	if table == nil {
		var err error
		table, err = NewConversionTable(alphabet)
		if err != nil {
			return nil, err
		}
	} else {
		if !slices.Equal(table.alphabet, alphabet) {
			return nil, fmt.Errorf("table columns %v do not match alphabet %v: %w", table.alphabet, alphabet, ErrAlphabetMismatch)
		}
		table.EnsureTrailingEmptyRow()
	}

	return &Lesson{
		automaton: a,
		alphabet:  table.Alphabet(),
		table:     table,
		logger:    opts.logger,
		onSolved:  opts.onSolved,
	}, nil
}

func (l *Lesson) Automaton() *Automaton {
	return l.automaton
}

func (l *Lesson) Alphabet() []Symbol {
	return append([]Symbol(nil), l.alphabet...)
}

func (l *Lesson) Table() *ConversionTable {
	return l.table
}

// SetHeader Edits a row header and grows the table so an empty row stays available.
func (l *Lesson) SetHeader(row int, ids ...string) error {
	if err := l.table.SetHeader(row, ids...); err != nil {
		return err
	}
	l.table.EnsureTrailingEmptyRow()
	return nil
}

// SetCell Edits the cell at row under the column of symbol c.
func (l *Lesson) SetCell(row int, c Symbol, ids ...string) error {
	return l.table.SetCell(row, l.table.Column(c), ids...)
}

// PromoteCell Copies the cell at (row, c) into the trailing empty row as a new header, unless
// that set already has a row. Returns the row now holding the set, or -1 if the cell is empty.
func (l *Lesson) PromoteCell(row int, c Symbol) (int, error) {
	r := l.table.Row(row)
	if r == nil || row < 1 {
		return -1, ErrRowOutOfRange
	}
	col := l.table.Column(c)
	if col < 0 {
		return -1, ErrColumnOutOfRange
	}
	set := r.Cell(col)
	if set.IsEmpty() {
		return -1, nil
	}
	for i, other := range l.table.Rows() {
		if other.Header.Equal(set) {
			return i + 1, nil
		}
	}

	target := l.table.Len() - 1
	if err := l.SetHeader(target, set.IDs()...); err != nil {
		return -1, err
	}
	return target, nil
}

// StartSet The header the first row is expected to carry.
func (l *Lesson) StartSet() StateSet {
	return StartSet(l.automaton)
}

// ExpectedCell The set the cell at (row, c) should hold given the row header.
func (l *Lesson) ExpectedCell(row int, c Symbol) StateSet {
	r := l.table.Row(row)
	if r == nil || row < 1 {
		return StateSet{}
	}
	return ReachableOnSymbol(l.automaton, r.Header, c)
}

// Check Validates the current table. On success the OnSolved callback receives the solution.
func (l *Lesson) Check() ValidationResult {
	result := Validate(l.table, l.automaton, l.alphabet)
	l.logger.Debug("checked conversion table",
		zap.Int("rows", l.table.Len()),
		zap.Bool("valid", result.Valid),
		zap.Stringer("rule", result.Rule),
		zap.String("reason", result.Reason))

	if result.Valid && l.onSolved != nil {
		l.onSolved(l.solution())
	}
	return result
}

func (l *Lesson) solution() Solution {
	sol := Solution{Table: l.table}
	for _, row := range l.table.Rows() {
		if row.Header.IsEmpty() {
			continue
		}
		sol.States = append(sol.States, row.Header)
		if IsAcceptingSet(l.automaton, row.Header) {
			sol.Accepting = append(sol.Accepting, row.Header)
		}
	}
	return sol
}
