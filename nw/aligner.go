// SPDX-License-Identifier: MIT

package nw

import (
	"bytes"
	"fmt"

	"github.com/katalvlaran/nwalign/scoring"
)

// Aligner owns one alignment run: the two input sequences, the scorer and,
// after Align, the filled grid, the traced path and the rendered pair.
//
// The grid is private; callers see only BestScore, TracedPath, AlignedPair
// and the Scores snapshot. An Aligner is not safe for concurrent Align calls.
type Aligner struct {
	a, b   []byte
	scorer scoring.Scorer
	opts   options

	aligned bool
	err     error
	grid    *matrix
	path    []Move
	pair    Pair
}

// New prepares an alignment of a against b. The sequences are copied, so the
// caller may reuse its buffers.
//
// Errors:
//   - ErrNilScorer when scorer is nil.
//   - ErrGapInSequence when a or b contains the gap marker.
func New(a, b []byte, scorer scoring.Scorer, opts ...Option) (*Aligner, error) {
	if scorer == nil {
		return nil, ErrNilScorer
	}
	o := gatherOptions(opts)
	if i := bytes.IndexByte(a, o.gapChar); i >= 0 {
		return nil, fmt.Errorf("sequence A position %d %q: %w", i, o.gapChar, ErrGapInSequence)
	}
	if i := bytes.IndexByte(b, o.gapChar); i >= 0 {
		return nil, fmt.Errorf("sequence B position %d %q: %w", i, o.gapChar, ErrGapInSequence)
	}

	return &Aligner{
		a:      append([]byte(nil), a...),
		b:      append([]byte(nil), b...),
		scorer: scorer,
		opts:   o,
	}, nil
}

// Align fills the grid, traces one optimal path and renders the pair.
// It runs once; later calls return the first outcome. On error no partial
// result is kept.
func (al *Aligner) Align() error {
	if al.aligned {
		return al.err
	}
	al.aligned = true

	grid, err := fill(al.a, al.b, al.scorer, al.opts.workers)
	if err != nil {
		al.err = fmt.Errorf("nw: fill: %w", err)
		return al.err
	}
	path, err := traceback(grid)
	if err != nil {
		al.err = fmt.Errorf("nw: traceback: %w", err)
		return al.err
	}
	pair, err := Render(path, al.a, al.b, al.opts.gapChar)
	if err != nil {
		al.err = fmt.Errorf("nw: render: %w", err)
		return al.err
	}

	al.grid, al.path, al.pair = grid, path, pair

	return nil
}

func (al *Aligner) ready() error {
	if !al.aligned {
		return ErrNotAligned
	}

	return al.err
}

// BestScore returns the score of the terminal cell.
func (al *Aligner) BestScore() (int, error) {
	if err := al.ready(); err != nil {
		return 0, err
	}

	return al.grid.cells[len(al.grid.cells)-1].Score, nil
}

// TracedPath returns a copy of the origin-first move path.
func (al *Aligner) TracedPath() ([]Move, error) {
	if err := al.ready(); err != nil {
		return nil, err
	}

	return append([]Move(nil), al.path...), nil
}

// AlignedPair returns the gapped sequences.
func (al *Aligner) AlignedPair() (Pair, error) {
	if err := al.ready(); err != nil {
		return Pair{}, err
	}

	return al.pair, nil
}

// Scores returns a deep copy of the score grid, rows indexing B and columns
// indexing A, for display.
func (al *Aligner) Scores() ([][]int, error) {
	if err := al.ready(); err != nil {
		return nil, err
	}

	return al.grid.scores(), nil
}

// Cells returns the number of grid cells the run fills, (len(A)+1)·(len(B)+1).
func (al *Aligner) Cells() int { return (len(al.a) + 1) * (len(al.b) + 1) }

// GapChar returns the gap marker used in AlignedPair.
func (al *Aligner) GapChar() byte { return al.opts.gapChar }

// Align is the one-shot form of New + Aligner.Align.
func Align(a, b []byte, scorer scoring.Scorer, opts ...Option) (Result, error) {
	al, err := New(a, b, scorer, opts...)
	if err != nil {
		return Result{}, err
	}
	if err = al.Align(); err != nil {
		return Result{}, err
	}

	return Result{Score: al.grid.cells[len(al.grid.cells)-1].Score, Path: al.path, Pair: al.pair}, nil
}
