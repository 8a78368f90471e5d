// SPDX-License-Identifier: MIT

package scoring

import (
	"fmt"
	"strings"
)

// Mode selects the scoring strategy of an alignment run.
//
//   - Nucleotide — fixed Scheme (match / mismatch / gap).
//   - Protein    — named substitution table, gap taken from the Scheme.
//
// The zero value is not a valid mode.
type Mode int

const (
	// Nucleotide aligns DNA/RNA with a fixed Scheme.
	Nucleotide Mode = iota + 1

	// Protein aligns amino acids with a substitution table.
	Protein
)

// DefaultMatrix is the substitution table used by Protein when none is named.
const DefaultMatrix = "BLOSUM62"

// String returns the lower-case mode name.
func (m Mode) String() string {
	switch m {
	case Nucleotide:
		return "nucleotide"
	case Protein:
		return "protein"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode accepts "nucleotide"/"nuc"/"dna" and "protein"/"pro"/"aa".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nucleotide", "nuc", "dna", "rna":
		return Nucleotide, nil
	case "protein", "pro", "aa", "peptide":
		return Protein, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnsupportedMode)
	}
}

// Scorer returns the scoring strategy for m.
//
// Nucleotide ignores matrix and returns scheme itself. Protein looks up the
// named substitution table (DefaultMatrix when empty) and charges scheme.Gap
// per indel; scheme.Match and scheme.Mismatch are unused.
func (m Mode) Scorer(scheme Scheme, matrix string) (Scorer, error) {
	switch m {
	case Nucleotide:
		return scheme, nil
	case Protein:
		if matrix == "" {
			matrix = DefaultMatrix
		}
		sub, err := Lookup(matrix, scheme.Gap)
		if err != nil {
			return nil, err
		}

		return sub, nil
	default:
		return nil, fmt.Errorf("%s: %w", m, ErrUnsupportedMode)
	}
}
