// SPDX-License-Identifier: MIT

package nw

import "errors"

// Every message is prefixed with "nw: ". Call sites wrap with context via
// fmt.Errorf("...: %w", ErrX); callers match with errors.Is.
var (
	// ErrBadShape is returned when a grid is requested with negative dimensions.
	ErrBadShape = errors.New("nw: invalid matrix shape")

	// ErrOutOfRange indicates a grid coordinate outside the matrix.
	ErrOutOfRange = errors.New("nw: index out of range")

	// ErrNilScorer indicates that no scoring strategy was supplied.
	ErrNilScorer = errors.New("nw: scorer is nil")

	// ErrGapInSequence indicates an input sequence containing the gap marker.
	ErrGapInSequence = errors.New("nw: sequence contains the gap marker")

	// ErrNotAligned is returned by accessors called before Align.
	ErrNotAligned = errors.New("nw: alignment has not been computed")

	// ErrCorruptPath means traceback met a non-origin cell without directions.
	// It signals a defect in the fill and must not be retried.
	ErrCorruptPath = errors.New("nw: corrupt traceback path")

	// ErrMalformedPath means a move path cannot be replayed over the sequences.
	ErrMalformedPath = errors.New("nw: malformed alignment path")

	// ErrLengthMismatch is returned when aligned rows differ in length.
	ErrLengthMismatch = errors.New("nw: aligned sequences differ in length")
)
