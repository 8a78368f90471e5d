// SPDX-License-Identifier: MIT

// Command pwa aligns the first two records of a FASTA input with
// Needleman–Wunsch and prints the gapped sequences and the optimal score.
//
//	pwa align pair.fa
//	printf '>a\nGATTACA\n>b\nGCATGCU\n' | pwa align --match 1 --mismatch -1 --gap -1
//	pwa align --mode protein --matrix BLOSUM62 --gap -8 --pretty prot.fa
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
