// SPDX-License-Identifier: MIT

package nw

import (
	"math"
	"strings"
)

// Move is one traceback step, labelled by a single byte.
type Move byte

const (
	// Diagonal consumes one symbol of each sequence (match or mismatch).
	Diagonal Move = 'D'

	// Up consumes a symbol of B against a gap in A.
	Up Move = 'U'

	// Left consumes a symbol of A against a gap in B.
	Left Move = 'L'
)

// String returns the move label.
func (mv Move) String() string { return string(mv) }

// DirSet is the set of moves that reach a cell's optimal score.
type DirSet uint8

const (
	DirDiagonal DirSet = 1 << iota
	DirUp
	DirLeft
)

// priority is the fixed traceback order.
var priority = [...]struct {
	bit  DirSet
	move Move
}{
	{DirDiagonal, Diagonal},
	{DirUp, Up},
	{DirLeft, Left},
}

// Has reports whether mv is in the set.
func (d DirSet) Has(mv Move) bool {
	for _, p := range priority {
		if p.move == mv {
			return d&p.bit != 0
		}
	}

	return false
}

// First returns the highest-priority move in the set (Diagonal > Up > Left).
// ok is false for the empty set.
func (d DirSet) First() (mv Move, ok bool) {
	for _, p := range priority {
		if d&p.bit != 0 {
			return p.move, true
		}
	}

	return 0, false
}

// Moves lists the set in priority order.
func (d DirSet) Moves() []Move {
	out := make([]Move, 0, len(priority))
	for _, p := range priority {
		if d&p.bit != 0 {
			out = append(out, p.move)
		}
	}

	return out
}

// String renders the set as its labels in priority order, e.g. "DL".
func (d DirSet) String() string {
	var sb strings.Builder
	for _, mv := range d.Moves() {
		sb.WriteByte(byte(mv))
	}

	return sb.String()
}

// Cell is one grid entry: the best score and every move achieving it.
type Cell struct {
	Score int
	Dirs  DirSet
}

// unset marks a cell that has not been filled. No reachable score equals
// math.MinInt while scorer values stay within ±scoring.MaxAbsScore.
var unset = Cell{Score: math.MinInt}

// IsSet reports whether the cell has been written by the fill.
func (c Cell) IsSet() bool { return c != unset }

// Pair is an aligned pair: both rows have equal length and removing the gap
// markers from A (resp. B) yields the input sequence A (resp. B).
type Pair struct {
	A string
	B string
}

// Result bundles the outputs of a single alignment run.
type Result struct {
	Score int
	Path  []Move
	Pair  Pair
}

// PathString renders a path as its concatenated move labels.
func PathString(path []Move) string {
	buf := make([]byte, len(path))
	for i, mv := range path {
		buf[i] = byte(mv)
	}

	return string(buf)
}
