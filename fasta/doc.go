// SPDX-License-Identifier: MIT

// Package fasta splits FASTA text into records and selects the pair of
// sequences handed to the aligner.
//
// A record is a header line starting with '>' followed by one or more
// sequence lines, which are concatenated. Whitespace inside sequence lines is
// dropped. Sequence text that appears before any header forms a record with
// an empty header.
//
// Only the first two records of an input are aligned; Pair reports how many
// further records were ignored so the caller can warn about them.
package fasta
