// SPDX-License-Identifier: MIT

package nw

// Test bridge: exposes the private grid, fill and traceback kernels to
// package nw_test without widening the production API.

var (
	ExportedNewMatrix = newMatrix
	ExportedFill      = fill
	ExportedTraceback = traceback
	ExportedUnset     = unset
	ExportedMinChunk  = minChunk
)

// MatrixAt exposes (*matrix).at.
func MatrixAt(m *matrix, i, j int) (Cell, error) { return m.at(i, j) }

// MatrixSet exposes (*matrix).set.
func MatrixSet(m *matrix, i, j int, c Cell) error { return m.set(i, j, c) }

// MatrixScores exposes (*matrix).scores.
func MatrixScores(m *matrix) [][]int { return m.scores() }
