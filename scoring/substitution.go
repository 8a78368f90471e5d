// SPDX-License-Identifier: MIT

package scoring

import (
	"fmt"
	"sort"
	"strings"
)

// Substitution scores residue pairs from a square lookup table.
//
// Table[i][j] is the score of aligning Alphabet[i] against Alphabet[j].
// Lookups are case-sensitive; the standard tables use upper-case letters.
type Substitution struct {
	Name     string
	Alphabet string
	Table    [][]int
	Gap      int

	index [256]int16 // residue byte -> row; -1 when absent
}

var (
	_ Scorer    = (*Substitution)(nil)
	_ Validator = (*Substitution)(nil)
)

// NewSubstitution builds a Substitution and its residue index.
// It panics when the table is not len(alphabet)×len(alphabet) or the alphabet
// repeats a residue; both are programmer errors in a static table.
func NewSubstitution(name, alphabet string, table [][]int, gap int) *Substitution {
	if len(table) != len(alphabet) {
		panic(fmt.Sprintf("scoring: %s: %d rows for %d residues", name, len(table), len(alphabet)))
	}
	s := &Substitution{Name: name, Alphabet: alphabet, Table: table, Gap: gap}
	for i := range s.index {
		s.index[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		if len(table[i]) != len(alphabet) {
			panic(fmt.Sprintf("scoring: %s: row %c has %d columns", name, alphabet[i], len(table[i])))
		}
		if s.index[alphabet[i]] != -1 {
			panic(fmt.Sprintf("scoring: %s: duplicate residue %c", name, alphabet[i]))
		}
		s.index[alphabet[i]] = int16(i)
	}

	return s
}

// Pair returns Table[x][y]. Residues outside the alphabet must be rejected
// by Validate first; here they score as the table's minimum.
func (s *Substitution) Pair(x, y byte) int {
	i, j := s.index[x], s.index[y]
	if i < 0 || j < 0 {
		return s.floor()
	}

	return s.Table[i][j]
}

// GapPenalty returns the per-indel score.
func (s *Substitution) GapPenalty() int { return s.Gap }

// Validate reports the first residue of seq that is not in the alphabet.
func (s *Substitution) Validate(seq []byte) error {
	for pos, r := range seq {
		if s.index[r] < 0 {
			return fmt.Errorf("%s: %q at position %d: %w", s.Name, r, pos, ErrUnknownResidue)
		}
	}

	return nil
}

func (s *Substitution) floor() int {
	lo := 0
	for _, row := range s.Table {
		for _, v := range row {
			if v < lo {
				lo = v
			}
		}
	}

	return lo
}

// matrixFactory builds a named table with the supplied gap penalty.
type matrixFactory func(gap int) *Substitution

var registry = map[string]matrixFactory{
	"BLOSUM62": BLOSUM62,
}

// Lookup returns the substitution table registered under name
// (case-insensitive) with the given gap penalty.
func Lookup(name string, gap int) (*Substitution, error) {
	f, ok := registry[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownMatrix)
	}

	return f(gap), nil
}

// Names lists registered substitution tables in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
