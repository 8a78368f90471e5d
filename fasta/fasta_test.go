// SPDX-License-Identifier: MIT

package fasta_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nwalign/fasta"
)

// TestParse_MultiRecord concatenates wrapped sequence lines per record.
func TestParse_MultiRecord(t *testing.T) {
	in := ">seq1 first\nACGT\nAC\n\n>seq2\r\nGG TT\r\n>empty\n"
	recs, err := fasta.Parse(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []fasta.Record{
		{Header: "seq1 first", Sequence: "ACGTAC"},
		{Header: "seq2", Sequence: "GGTT"},
		{Header: "empty", Sequence: ""},
	}, recs)
}

// TestParse_Headerless treats leading sequence text as an unnamed record.
func TestParse_Headerless(t *testing.T) {
	recs, err := fasta.Parse(strings.NewReader("ACGT\n>b\nTT\n"))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, fasta.Record{Sequence: "ACGT"}, recs[0])
	assert.Equal(t, "b", recs[1].Header)
}

// TestParse_Empty yields no records.
func TestParse_Empty(t *testing.T) {
	recs, err := fasta.Parse(strings.NewReader("\n\n"))
	require.NoError(t, err)
	assert.Empty(t, recs)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

// TestParse_ReadError surfaces reader failures.
func TestParse_ReadError(t *testing.T) {
	_, err := fasta.Parse(failingReader{})
	assert.ErrorContains(t, err, "disk on fire")
}

// TestParseString_Escapes expands literal \n as typed at a prompt.
func TestParseString_Escapes(t *testing.T) {
	recs, err := fasta.ParseString(`>a\nAC\n>b\nA`)
	require.NoError(t, err)
	assert.Equal(t, []fasta.Record{{Header: "a", Sequence: "AC"}, {Header: "b", Sequence: "A"}}, recs)
}

// TestStripHeader returns only the sequence.
func TestStripHeader(t *testing.T) {
	assert.Equal(t, "ACGT", fasta.StripHeader(">chr1 test\nAC\nGT"))
	assert.Equal(t, "ACGT", fasta.StripHeader("ACGT"))
	assert.Equal(t, "", fasta.StripHeader(""))
}

// TestPair applies the first-two policy.
func TestPair(t *testing.T) {
	recs := []fasta.Record{{Header: "a"}, {Header: "b"}, {Header: "c"}}
	a, b, extra, err := fasta.Pair(recs)
	require.NoError(t, err)
	assert.Equal(t, "a", a.Header)
	assert.Equal(t, "b", b.Header)
	assert.Equal(t, 1, extra)

	_, _, _, err = fasta.Pair(recs[:1])
	assert.ErrorIs(t, err, fasta.ErrInsufficientInput)

	_, _, _, err = fasta.Pair(nil)
	assert.ErrorIs(t, err, fasta.ErrInsufficientInput)
}
