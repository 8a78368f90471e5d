// SPDX-License-Identifier: MIT

package nw_test

import (
	"testing"

	"github.com/katalvlaran/nwalign/nw"
	"github.com/katalvlaran/nwalign/scoring"
)

// benchmarkAlign aligns two random DNA sequences of lengths n and m.
func benchmarkAlign(b *testing.B, n, m int, opts ...nw.Option) {
	r := newRand(1)
	x := randomSeq(r, n, dna)
	y := randomSeq(r, m, dna)
	sc := scoring.DefaultScheme()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := nw.Align(x, y, sc, opts...); err != nil {
			b.Fatalf("Align failed: %v", err)
		}
	}
}

// BenchmarkAlign_Small benchmarks the sequential fill on 100×100.
func BenchmarkAlign_Small(b *testing.B) { benchmarkAlign(b, 100, 100) }

// BenchmarkAlign_Medium benchmarks the sequential fill on 1000×1000.
func BenchmarkAlign_Medium(b *testing.B) { benchmarkAlign(b, 1000, 1000) }

// BenchmarkAlign_MediumParallel benchmarks anti-diagonal fill on 1000×1000.
func BenchmarkAlign_MediumParallel(b *testing.B) { benchmarkAlign(b, 1000, 1000, nw.WithWorkers(4)) }

// BenchmarkAlign_Protein benchmarks BLOSUM62 scoring on 500×500.
func BenchmarkAlign_Protein(b *testing.B) {
	r := newRand(2)
	x := randomSeq(r, 500, "ARNDCQEGHILKMFPSTWYV")
	y := randomSeq(r, 500, "ARNDCQEGHILKMFPSTWYV")
	sc := scoring.BLOSUM62(-8)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := nw.Align(x, y, sc); err != nil {
			b.Fatalf("Align failed: %v", err)
		}
	}
}
