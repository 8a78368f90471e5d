// SPDX-License-Identifier: MIT

// Alignment grid: row-major flat storage with bounds-checked accessors.
//
// The grid never stores the sequences themselves; presentation code pairs
// Scores() with the symbols on its own.

package nw

import "fmt"

const (
	ctxAt  = "at"
	ctxSet = "set"
)

func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("matrix.%s(%d,%d): %w", method, row, col, err)
}

// matrix is the (rows × cols) score/backpointer grid.
// Offset of (i,j) is i*cols + j.
type matrix struct {
	rows, cols int
	cells      []Cell
}

// newMatrix allocates a grid with every cell unset.
// Zero-sized dimensions are legal; negative ones return ErrBadShape.
func newMatrix(rows, cols int) (*matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("newMatrix(%d,%d): %w", rows, cols, ErrBadShape)
	}
	cells := make([]Cell, rows*cols)
	for k := range cells {
		cells[k] = unset
	}

	return &matrix{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of rows (len(B)+1 for an alignment grid).
func (m *matrix) Rows() int { return m.rows }

// Cols returns the number of columns (len(A)+1 for an alignment grid).
func (m *matrix) Cols() int { return m.cols }

func (m *matrix) inBounds(i, j int) bool {
	return i >= 0 && i < m.rows && j >= 0 && j < m.cols
}

// at returns the cell at (i,j) or ErrOutOfRange.
func (m *matrix) at(i, j int) (Cell, error) {
	if !m.inBounds(i, j) {
		return unset, matrixErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.cells[i*m.cols+j], nil
}

// set writes the cell at (i,j) or returns ErrOutOfRange.
func (m *matrix) set(i, j int, c Cell) error {
	if !m.inBounds(i, j) {
		return matrixErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	m.cells[i*m.cols+j] = c

	return nil
}

// scores returns a deep copy of the score grid; unset cells read as 0.
func (m *matrix) scores() [][]int {
	out := make([][]int, m.rows)
	for i := range out {
		row := make([]int, m.cols)
		for j := range row {
			if c := m.cells[i*m.cols+j]; c.IsSet() {
				row[j] = c.Score
			}
		}
		out[i] = row
	}

	return out
}
