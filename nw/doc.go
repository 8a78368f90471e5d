// SPDX-License-Identifier: MIT

// Package nw computes optimal global alignments of two sequences with the
// Needleman–Wunsch dynamic programme under a linear gap penalty.
//
// 🚀 What is Needleman–Wunsch?
//
//	Given sequences A and B and a scorer (match/mismatch/gap or a
//	substitution table), NW pads both sequences with gap markers to equal
//	length so that the column scores sum to the maximum possible value.
//
// Pipeline (data flows strictly forward):
//
//	fill      → (len(B)+1)×(len(A)+1) grid of {score, direction set}
//	traceback → one optimal move path, priority Diagonal > Up > Left
//	Render    → two gapped sequences replayed from the path
//
// Algorithm Outline:
//  1. rows = len(B)+1 (row i ↔ B[i-1]), cols = len(A)+1 (column j ↔ A[j-1]).
//  2. Boundaries: S[0][0] = 0, S[0][j] = j·gap (Left), S[i][0] = i·gap (Up).
//  3. For every interior cell:
//     diag = S[i-1][j-1] + pair(A[j-1], B[i-1])
//     up   = S[i-1][j]   + gap
//     left = S[i][j-1]   + gap
//     S[i][j] = max(diag, up, left); every move reaching the max is recorded.
//  4. Walk from (rows-1, cols-1) to (0,0) taking the first recorded move in
//     priority order; reverse once.
//  5. Replay the path: Diagonal emits (A,B), Up emits (gap,B), Left emits (A,gap).
//
// Ties are all recorded in the grid, but exactly one path is walked; alternate
// optimal alignments are not enumerated.
//
// ⚙️ Usage:
//
//	al, err := nw.New([]byte("GATTACA"), []byte("GCATGCU"), scoring.DefaultScheme())
//	if err != nil { ... }
//	if err := al.Align(); err != nil { ... }
//	score, _ := al.BestScore()
//	pair, _ := al.AlignedPair()
//	fmt.Println(pair.A, pair.B, score)
//
// Anti-diagonal parallel fill (WithWorkers) produces a grid identical to the
// sequential row-major fill.
//
// Complexity:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M)
package nw
