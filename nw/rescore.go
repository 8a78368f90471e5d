// SPDX-License-Identifier: MIT

package nw

import (
	"fmt"

	"github.com/katalvlaran/nwalign/scoring"
)

// Rescore recomputes the score of an aligned pair column by column: a column
// with a gap on either side costs sc.GapPenalty(), any other column costs
// sc.Pair. For a pair produced by Align it equals BestScore.
//
// Errors:
//   - ErrNilScorer when sc is nil.
//   - ErrLengthMismatch when the rows differ in length.
//   - ErrMalformedPath when a column is gap against gap.
func Rescore(p Pair, sc scoring.Scorer, gap byte) (int, error) {
	if sc == nil {
		return 0, ErrNilScorer
	}
	if len(p.A) != len(p.B) {
		return 0, fmt.Errorf("%d vs %d: %w", len(p.A), len(p.B), ErrLengthMismatch)
	}

	total := 0
	for k := 0; k < len(p.A); k++ {
		x, y := p.A[k], p.B[k]
		switch {
		case x == gap && y == gap:
			return 0, fmt.Errorf("column %d is gap against gap: %w", k, ErrMalformedPath)
		case x == gap || y == gap:
			total += sc.GapPenalty()
		default:
			total += sc.Pair(x, y)
		}
	}

	return total, nil
}
