package automaton

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// RowDescription One learner row as written in a lesson file. Cells follow alphabet order.
type RowDescription struct {
	Header []string   `yaml:"header"`
	Cells  [][]string `yaml:"cells"`
}

// LessonFile The YAML form of a lesson: the automaton, the table columns and, optionally, a
// table in progress. The label row is implicit.
type LessonFile struct {
	Automaton Description      `yaml:"automaton"`
	Alphabet  []string         `yaml:"alphabet"`
	Table     []RowDescription `yaml:"table,omitempty"`
}

func DecodeLessonFile(r io.Reader) (*LessonFile, error) {
	var lf LessonFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&lf); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode lesson file: %w", err)
	}
	return &lf, nil
}

func LoadLessonFile(path string) (*LessonFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lf, err := DecodeLessonFile(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lf, nil
}

// Symbols Returns the alphabet of the file. An alphabet left out of the file defaults to the
// symbols used by the automaton edges.
func (lf *LessonFile) Symbols(a *Automaton) []Symbol {
	if len(lf.Alphabet) == 0 {
		return a.Symbols()
	}
	alphabet := make([]Symbol, len(lf.Alphabet))
	for i, c := range lf.Alphabet {
		alphabet[i] = Symbol(c)
		if isEpsilonToken(c) {
			alphabet[i] = Epsilon
		}
	}
	return alphabet
}

// BuildTable Returns the table written in the file, always ending with an empty row.
func (lf *LessonFile) BuildTable(alphabet []Symbol) (*ConversionTable, error) {
	table, err := NewConversionTable(alphabet)
	if err != nil {
		return nil, err
	}
	for i, rd := range lf.Table {
		row := i + 1
		if row == table.Len() {
			table.AppendRow()
		}
		if len(rd.Cells) > len(alphabet) {
			return nil, fmt.Errorf("row %d has %d cells for %d symbols: %w", row, len(rd.Cells), len(alphabet), ErrColumnOutOfRange)
		}
		if err := table.SetHeader(row, rd.Header...); err != nil {
			return nil, err
		}
		for j, cell := range rd.Cells {
			if err := table.SetCell(row, j, cell...); err != nil {
				return nil, err
			}
		}
	}
	table.EnsureTrailingEmptyRow()
	return table, nil
}

// Build Loads the automaton and the table and returns the lesson ready to be checked.
func (lf *LessonFile) Build(options ...LessonOption) (*Lesson, error) {
	a, err := Load(lf.Automaton)
	if err != nil {
		return nil, err
	}
	alphabet := lf.Symbols(a)
	table, err := lf.BuildTable(alphabet)
	if err != nil {
		return nil, err
	}
	return NewLesson(a, alphabet, append(options, WithTable(table))...)
}
