// SPDX-License-Identifier: MIT

package nw_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nwalign/nw"
	"github.com/katalvlaran/nwalign/scoring"
)

// TestTraceback_PriorityOnTie picks Diagonal over Left on a tied cell.
func TestTraceback_PriorityOnTie(t *testing.T) {
	m, err := nw.ExportedFill([]byte("AA"), []byte("A"), scoring.DefaultScheme(), 1)
	require.NoError(t, err)

	path, err := nw.ExportedTraceback(m)
	require.NoError(t, err)
	assert.Equal(t, "LD", nw.PathString(path), "origin-first: Left then Diagonal")
}

// TestTraceback_Boundaries walks pure-gap grids.
func TestTraceback_Boundaries(t *testing.T) {
	sc := scoring.DefaultScheme()

	m, err := nw.ExportedFill([]byte("ACG"), nil, sc, 1)
	require.NoError(t, err)
	path, err := nw.ExportedTraceback(m)
	require.NoError(t, err)
	assert.Equal(t, "LLL", nw.PathString(path))

	m, err = nw.ExportedFill(nil, []byte("AC"), sc, 1)
	require.NoError(t, err)
	path, err = nw.ExportedTraceback(m)
	require.NoError(t, err)
	assert.Equal(t, "UU", nw.PathString(path))

	m, err = nw.ExportedFill(nil, nil, sc, 1)
	require.NoError(t, err)
	path, err = nw.ExportedTraceback(m)
	require.NoError(t, err)
	assert.Empty(t, path, "1×1 grid has nothing to trace")
}

// TestTraceback_CorruptPath covers cells without directions and moves that
// leave the grid.
func TestTraceback_CorruptPath(t *testing.T) {
	// Never-filled grid: terminal cell is unset.
	m, err := nw.ExportedNewMatrix(2, 2)
	require.NoError(t, err)
	_, err = nw.ExportedTraceback(m)
	assert.ErrorIs(t, err, nw.ErrCorruptPath)

	// Filled grid with an interior cell stripped of directions.
	m, err = nw.ExportedFill([]byte("AC"), []byte("AC"), scoring.DefaultScheme(), 1)
	require.NoError(t, err)
	require.NoError(t, nw.MatrixSet(m, 1, 1, nw.Cell{Score: 1}))
	_, err = nw.ExportedTraceback(m)
	assert.ErrorIs(t, err, nw.ErrCorruptPath)
	assert.Contains(t, err.Error(), "(1,1)")

	// Top-row cell pointing Up steps above row 0.
	m, err = nw.ExportedFill([]byte("A"), nil, scoring.DefaultScheme(), 1)
	require.NoError(t, err)
	require.NoError(t, nw.MatrixSet(m, 0, 1, nw.Cell{Score: -2, Dirs: nw.DirUp}))
	_, err = nw.ExportedTraceback(m)
	assert.ErrorIs(t, err, nw.ErrCorruptPath)

	// Zero-sized grid.
	m, err = nw.ExportedNewMatrix(0, 0)
	require.NoError(t, err)
	_, err = nw.ExportedTraceback(m)
	assert.ErrorIs(t, err, nw.ErrCorruptPath)
}

// TestTraceback_LongInputIsIterative runs a path far deeper than any
// reasonable recursion budget.
func TestTraceback_LongInputIsIterative(t *testing.T) {
	a := randomSeq(newRand(3), 20000, dna)
	m, err := nw.ExportedFill(a, nil, scoring.DefaultScheme(), 1)
	require.NoError(t, err)

	path, err := nw.ExportedTraceback(m)
	require.NoError(t, err)
	assert.Len(t, path, len(a))
}
