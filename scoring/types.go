// SPDX-License-Identifier: MIT

package scoring

import "errors"

var (
	// ErrUnsupportedMode is returned when an alignment mode has no scoring strategy.
	ErrUnsupportedMode = errors.New("scoring: unsupported alignment mode")

	// ErrUnknownResidue indicates a symbol outside a substitution table's alphabet.
	ErrUnknownResidue = errors.New("scoring: residue not in substitution alphabet")

	// ErrUnknownMatrix indicates a substitution table name that is not registered.
	ErrUnknownMatrix = errors.New("scoring: unknown substitution matrix")
)

// Scorer scores one aligned column.
//
// Pair is called for columns without gaps; GapPenalty is charged once for
// every column that carries a gap on either side (linear gap model).
type Scorer interface {
	Pair(x, y byte) int
	GapPenalty() int
}

// Validator is implemented by scorers with a closed alphabet. The aligner
// calls Validate on both sequences before allocating the matrix.
type Validator interface {
	Validate(seq []byte) error
}

// Scheme is the fixed match/mismatch/gap triple used for nucleotides.
//
// Mismatch and Gap are conventionally negative. Values are expected within
// ±MaxAbsScore so that grid scores cannot overflow int; config enforces it.
type Scheme struct {
	Match    int `yaml:"match" validate:"min=-1048576,max=1048576"`
	Mismatch int `yaml:"mismatch" validate:"min=-1048576,max=1048576"`
	Gap      int `yaml:"gap" validate:"min=-1048576,max=1048576"`
}

// MaxAbsScore bounds the magnitude of Scheme values accepted from
// configuration.
const MaxAbsScore = 1 << 20

// Default scheme values.
const (
	DefaultMatch    = 1
	DefaultMismatch = -1
	DefaultGap      = -2
)

var _ Scorer = Scheme{}

// DefaultScheme returns (match=1, mismatch=-1, gap=-2).
func DefaultScheme() Scheme {
	return Scheme{Match: DefaultMatch, Mismatch: DefaultMismatch, Gap: DefaultGap}
}

// Pair returns Match when x == y (byte equality, case-sensitive), else Mismatch.
func (s Scheme) Pair(x, y byte) int {
	if x == y {
		return s.Match
	}

	return s.Mismatch
}

// GapPenalty returns the per-indel score.
func (s Scheme) GapPenalty() int { return s.Gap }
