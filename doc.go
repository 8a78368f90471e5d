// SPDX-License-Identifier: MIT

// Package nwalign is a pairwise global sequence aligner built around the
// Needleman–Wunsch dynamic programme.
//
// 🚀 What is nwalign?
//
//	A small, deterministic toolkit that brings together:
//		• nw/       — grid fill, single-path traceback, gapped rendering, rescoring
//		• scoring/  — match/mismatch/gap schemes, BLOSUM62, nucleotide/protein modes
//		• fasta/    — multi-record parsing and first-two pair selection
//		• config/   — YAML settings with validation
//		• metrics/  — Prometheus instrumentation and textfile export
//		• cmd/pwa/  — the command-line front end
//
// ✨ Guarantees:
//
//   - Both aligned rows have equal length; stripping gaps restores the inputs.
//   - The rendered alignment rescored column by column equals the best score.
//   - Ties are broken Diagonal > Up > Left, so output is reproducible.
//   - Parallel anti-diagonal fill yields the same grid as the sequential fill.
//
// Quick ASCII example (match=1, mismatch=-1, gap=-2):
//
//	A: AC        score = -1
//	B: A-
//
//	go install github.com/katalvlaran/nwalign/cmd/pwa@latest
package nwalign
