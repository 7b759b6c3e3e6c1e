package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLessonWalkthrough(t *testing.T) {
	a := mustLoad(t, cyclicNFA())

	var solved []Solution
	core, logs := observer.New(zap.DebugLevel)
	lesson, err := NewLesson(a, []Symbol{"a", "b"},
		WithLogger(zap.New(core)),
		WithOnSolved(func(s Solution) { solved = append(solved, s) }))
	require.NoError(t, err)

	start := lesson.StartSet()
	assert.Equal(t, "{q0, q1, q2}", start.String())

	// The learner fills the table the way the guided mode suggests.
	require.NoError(t, lesson.SetHeader(1, start.IDs()...))
	assert.Equal(t, 3, lesson.Table().Len())

	for row := 1; row < lesson.Table().Len()-1; row++ {
		for _, c := range lesson.Alphabet() {
			want := lesson.ExpectedCell(row, c)
			require.NoError(t, lesson.SetCell(row, c, want.IDs()...))
			_, err := lesson.PromoteCell(row, c)
			require.NoError(t, err)
		}
		if row < 3 {
			assert.False(t, lesson.Check().Valid)
		}
	}

	result := lesson.Check()
	assert.True(t, result.Valid, result.Reason)
	require.Len(t, solved, 1)
	assert.Len(t, solved[0].States, 4)
	assert.Equal(t, []string{"{q1, q3}", "{q0, q1, q2, q3}", "{q3}"}, func() []string {
		out := make([]string, 0)
		for _, s := range solved[0].Accepting {
			out = append(out, s.String())
		}
		return out
	}())
	assert.Same(t, lesson.Table(), solved[0].Table)

	entries := logs.FilterMessage("checked conversion table").All()
	require.NotEmpty(t, entries)
	last := entries[len(entries)-1].ContextMap()
	assert.Equal(t, true, last["valid"])
	assert.Equal(t, "none", last["rule"])
}

func TestLessonPromoteCell(t *testing.T) {
	a := mustLoad(t, singleStep())
	lesson, err := NewLesson(a, []Symbol{"a"})
	require.NoError(t, err)

	require.NoError(t, lesson.SetHeader(1, "S"))
	require.NoError(t, lesson.SetCell(1, "a", "A"))

	row, err := lesson.PromoteCell(1, "a")
	require.NoError(t, err)
	assert.Equal(t, 2, row)
	assert.True(t, IsKnownState(NewStateSet("A"), lesson.Table()))
	// filling the trailing row opens a new empty one
	assert.Equal(t, 4, lesson.Table().Len())
	assert.True(t, lesson.Table().Row(3).Header.IsEmpty())

	// already known: nothing appended
	row, err = lesson.PromoteCell(1, "a")
	require.NoError(t, err)
	assert.Equal(t, 2, row)
	assert.Equal(t, 4, lesson.Table().Len())
	assert.True(t, lesson.Table().Row(3).Header.IsEmpty())

	// empty cell
	row, err = lesson.PromoteCell(2, "a")
	require.NoError(t, err)
	assert.Equal(t, -1, row)

	_, err = lesson.PromoteCell(0, "a")
	assert.ErrorIs(t, err, ErrRowOutOfRange)
	_, err = lesson.PromoteCell(1, "z")
	assert.ErrorIs(t, err, ErrColumnOutOfRange)
	assert.ErrorIs(t, lesson.SetCell(1, "z", "A"), ErrColumnOutOfRange)

	assert.True(t, lesson.Check().Valid)
}

func TestLessonHeaderEditInvalidates(t *testing.T) {
	a := mustLoad(t, singleStep())
	lesson, err := NewLesson(a, []Symbol{"a"})
	require.NoError(t, err)

	require.NoError(t, lesson.SetHeader(1, "S"))
	require.NoError(t, lesson.SetCell(1, "a", "A"))
	require.NoError(t, lesson.SetHeader(2, "A"))
	require.True(t, lesson.Check().Valid)

	// completeness is recomputed, never cached
	require.NoError(t, lesson.SetHeader(1, "S", "A"))
	result := lesson.Check()
	assert.False(t, result.Valid)
	assert.Equal(t, RuleStartRow, result.Rule)
}

func TestNewLesson(t *testing.T) {
	a := mustLoad(t, singleStep())

	_, err := NewLesson(a, []Symbol{Epsilon})
	assert.ErrorIs(t, err, ErrEpsilonInAlphabet)

	table, err := NewConversionTable([]Symbol{"a"})
	require.NoError(t, err)
	_, err = NewLesson(a, []Symbol{"b"}, WithTable(table))
	assert.ErrorIs(t, err, ErrAlphabetMismatch)

	lesson, err := NewLesson(a, []Symbol{"a"}, WithTable(table), WithLogger(nil))
	require.NoError(t, err)
	assert.Same(t, table, lesson.Table())
	assert.Same(t, a, lesson.Automaton())
	assert.True(t, lesson.ExpectedCell(0, "a").IsEmpty())
	assert.True(t, lesson.ExpectedCell(9, "a").IsEmpty())
}
