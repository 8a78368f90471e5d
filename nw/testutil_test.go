// SPDX-License-Identifier: MIT

package nw_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nwalign/nw"
	"github.com/katalvlaran/nwalign/scoring"
)

const dna = "ACGT"

// newRand returns a deterministic generator for reproducible inputs.
func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// randomSeq draws n symbols from alphabet.
func randomSeq(r *rand.Rand, n int, alphabet string) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = alphabet[r.IntN(len(alphabet))]
	}

	return out
}

// stripGaps removes every gap marker from s.
func stripGaps(s string, gap byte) string {
	return strings.ReplaceAll(s, string(gap), "")
}

// bruteBest scores the best global alignment of a and b by plain recursion
// over prefixes. Exponential; keep inputs tiny.
func bruteBest(a, b []byte, sc scoring.Scorer) int {
	switch {
	case len(a) == 0:
		return len(b) * sc.GapPenalty()
	case len(b) == 0:
		return len(a) * sc.GapPenalty()
	}
	n, m := len(a), len(b)
	diag := bruteBest(a[:n-1], b[:m-1], sc) + sc.Pair(a[n-1], b[m-1])
	up := bruteBest(a, b[:m-1], sc) + sc.GapPenalty()
	left := bruteBest(a[:n-1], b, sc) + sc.GapPenalty()

	return max(diag, up, left)
}

// mustAlign runs a full alignment and fails the test on error.
func mustAlign(t *testing.T, a, b string, sc scoring.Scorer, opts ...nw.Option) nw.Result {
	t.Helper()
	res, err := nw.Align([]byte(a), []byte(b), sc, opts...)
	require.NoError(t, err)

	return res
}
