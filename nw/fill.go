// SPDX-License-Identifier: MIT

package nw

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/nwalign/scoring"
)

// minChunk is the smallest run of anti-diagonal cells handed to one goroutine.
const minChunk = 256

// fill builds and fills the alignment grid for a (columns) and b (rows).
//
// Implementation:
//   - Stage 1: let closed-alphabet scorers validate both sequences.
//   - Stage 2: allocate (len(b)+1)×(len(a)+1) and seed the boundaries.
//   - Stage 3: fill interior cells row-major, or by anti-diagonal when
//     workers > 1. Both orders complete every predecessor of (i,j) first.
//
// Empty sequences are legal and yield a single boundary row or column.
func fill(a, b []byte, sc scoring.Scorer, workers int) (*matrix, error) {
	if sc == nil {
		return nil, ErrNilScorer
	}
	if v, ok := sc.(scoring.Validator); ok {
		if err := v.Validate(a); err != nil {
			return nil, fmt.Errorf("sequence A: %w", err)
		}
		if err := v.Validate(b); err != nil {
			return nil, fmt.Errorf("sequence B: %w", err)
		}
	}

	m, err := newMatrix(len(b)+1, len(a)+1)
	if err != nil {
		return nil, err
	}
	seedBoundaries(m, sc.GapPenalty())

	if workers > 1 {
		fillAntiDiagonal(m, a, b, sc, workers)
	} else {
		fillRowMajor(m, a, b, sc)
	}

	return m, nil
}

// seedBoundaries writes the origin, the top row (Left) and the left column (Up).
func seedBoundaries(m *matrix, gap int) {
	m.cells[0] = Cell{Score: 0}
	for j := 1; j < m.cols; j++ {
		m.cells[j] = Cell{Score: j * gap, Dirs: DirLeft}
	}
	for i := 1; i < m.rows; i++ {
		m.cells[i*m.cols] = Cell{Score: i * gap, Dirs: DirUp}
	}
}

// fillRowMajor is the sequential kernel.
func fillRowMajor(m *matrix, a, b []byte, sc scoring.Scorer) {
	for i := 1; i < m.rows; i++ {
		for j := 1; j < m.cols; j++ {
			m.cells[i*m.cols+j] = scoreCell(m, a, b, sc, i, j)
		}
	}
}

// fillAntiDiagonal fills diagonals k = i+j in increasing order. Cells on one
// diagonal only read diagonals k-1 and k-2, so each diagonal is split into
// chunks filled concurrently; Wait orders diagonal k before k+1.
func fillAntiDiagonal(m *matrix, a, b []byte, sc scoring.Scorer, workers int) {
	last := (m.rows - 1) + (m.cols - 1)
	for k := 2; k <= last; k++ {
		lo := max(1, k-(m.cols-1))
		hi := min(m.rows-1, k-1) // inclusive
		n := hi - lo + 1
		if n <= 0 {
			continue
		}
		if n < 2*minChunk {
			fillDiagonalRange(m, a, b, sc, k, lo, hi)
			continue
		}

		chunk := max(minChunk, (n+workers-1)/workers)
		var g errgroup.Group
		g.SetLimit(workers)
		for start := lo; start <= hi; start += chunk {
			end := min(hi, start+chunk-1)
			g.Go(func() error {
				fillDiagonalRange(m, a, b, sc, k, start, end)
				return nil
			})
		}
		_ = g.Wait() // kernels never fail
	}
}

func fillDiagonalRange(m *matrix, a, b []byte, sc scoring.Scorer, k, lo, hi int) {
	for i := lo; i <= hi; i++ {
		j := k - i
		m.cells[i*m.cols+j] = scoreCell(m, a, b, sc, i, j)
	}
}

// scoreCell evaluates the recurrence for interior (i,j) and records every
// move that reaches the maximum.
func scoreCell(m *matrix, a, b []byte, sc scoring.Scorer, i, j int) Cell {
	gap := sc.GapPenalty()
	diag := m.cells[(i-1)*m.cols+(j-1)].Score + sc.Pair(a[j-1], b[i-1])
	up := m.cells[(i-1)*m.cols+j].Score + gap
	left := m.cells[i*m.cols+(j-1)].Score + gap

	best := max(diag, up, left)
	var dirs DirSet
	if diag == best {
		dirs |= DirDiagonal
	}
	if up == best {
		dirs |= DirUp
	}
	if left == best {
		dirs |= DirLeft
	}

	return Cell{Score: best, Dirs: dirs}
}
