package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConversionTable(t *testing.T) {
	table, err := NewConversionTable([]Symbol{"a", "b"})
	require.NoError(t, err)

	assert.Equal(t, 2, table.Len())
	assert.Len(t, table.Rows(), 1)
	assert.True(t, table.Row(1).Header.IsEmpty())
	assert.Len(t, table.Row(1).Cells, 2)
	assert.Nil(t, table.Row(2))
	assert.Nil(t, table.Row(-1))
	assert.Equal(t, 1, table.Column("b"))
	assert.Equal(t, -1, table.Column("c"))

	_, err = NewConversionTable([]Symbol{"a", Epsilon})
	assert.ErrorIs(t, err, ErrEpsilonInAlphabet)
}

func TestEnsureTrailingEmptyRow(t *testing.T) {
	table, err := NewConversionTable([]Symbol{"a"})
	require.NoError(t, err)

	// already has an empty last row
	table.EnsureTrailingEmptyRow()
	assert.Equal(t, 2, table.Len())

	require.NoError(t, table.SetHeader(1, "S"))
	table.EnsureTrailingEmptyRow()
	assert.Equal(t, 3, table.Len())
	table.EnsureTrailingEmptyRow()
	assert.Equal(t, 3, table.Len())

	// clearing a header never trims
	require.NoError(t, table.SetHeader(1))
	table.EnsureTrailingEmptyRow()
	assert.Equal(t, 3, table.Len())
}

func TestSetHeaderAndCell(t *testing.T) {
	table, err := NewConversionTable([]Symbol{"a", "b"})
	require.NoError(t, err)

	require.NoError(t, table.SetHeader(1, "B", "A"))
	require.NoError(t, table.SetCell(1, 1, "C"))
	assert.Equal(t, "{A, B}", table.Row(1).Header.String())
	assert.Equal(t, "{C}", table.Row(1).Cell(1).String())
	assert.True(t, table.Row(1).Cell(0).IsEmpty())
	assert.True(t, table.Row(1).Cell(5).IsEmpty())

	assert.ErrorIs(t, table.SetHeader(0, "A"), ErrRowOutOfRange)
	assert.ErrorIs(t, table.SetHeader(2, "A"), ErrRowOutOfRange)
	assert.ErrorIs(t, table.SetCell(0, 0, "A"), ErrRowOutOfRange)
	assert.ErrorIs(t, table.SetCell(1, 2, "A"), ErrColumnOutOfRange)
	assert.ErrorIs(t, table.SetCell(1, -1, "A"), ErrColumnOutOfRange)
}

func TestRowCellShortRow(t *testing.T) {
	row := &Row{Header: NewStateSet("A")}
	assert.True(t, row.Cell(0).IsEmpty())

	table, err := NewConversionTable([]Symbol{"a"})
	require.NoError(t, err)
	table.rows[1].Cells = nil
	require.NoError(t, table.SetCell(1, 0, "A"))
	assert.Equal(t, "{A}", table.Row(1).Cell(0).String())
}
