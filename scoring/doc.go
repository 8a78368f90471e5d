// SPDX-License-Identifier: MIT

// Package scoring defines how pairs of residues and gaps are scored during
// pairwise alignment.
//
// 🚀 What lives here?
//
//	• Scheme       — fixed (match, mismatch, gap) triple for nucleotides
//	• Substitution — full residue×residue lookup table (BLOSUM62) for proteins
//	• Mode         — closed variant choosing the strategy for an alignment run
//
// Both strategies implement Scorer, which is all the alignment engine in
// package nw ever sees:
//
//	type Scorer interface {
//	  Pair(x, y byte) int // score of aligning x against y
//	  GapPenalty() int    // score charged per indel
//	}
//
// ⚙️ Usage:
//
//	s, err := scoring.Protein.Scorer(scoring.DefaultScheme(), "BLOSUM62")
//	if err != nil {
//	  // ErrUnsupportedMode or ErrUnknownMatrix
//	}
//
// Comparison of nucleotide symbols is case-sensitive; canonicalize upstream
// if "a" and "A" must match.
package scoring
