// SPDX-License-Identifier: MIT

package fasta

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// ErrInsufficientInput is returned when fewer than two records are available.
var ErrInsufficientInput = errors.New("fasta: need at least 2 sequences")

// headerMark starts a header line.
const headerMark = '>'

// maxLine bounds a single input line; genome-scale single-line records fit.
const maxLine = 64 << 20

// Record is one named sequence.
type Record struct {
	Header   string // header text without the leading '>'
	Sequence string
}

// Parse reads every record from r.
//
// Headers without sequence lines produce records with an empty Sequence.
// Blank lines are ignored.
func Parse(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var (
		records []Record
		cur     *Record
		seq     strings.Builder
	)
	flush := func() {
		if cur != nil {
			cur.Sequence = seq.String()
			records = append(records, *cur)
		}
		seq.Reset()
	}

	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if line[0] == headerMark {
			flush()
			cur = &Record{Header: strings.TrimSpace(line[1:])}
			continue
		}
		if cur == nil {
			cur = &Record{}
		}
		for _, c := range line {
			if !unicode.IsSpace(c) {
				seq.WriteRune(c)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta: read: %w", err)
	}
	flush()

	return records, nil
}

// ParseString parses s after expanding literal "\n" escapes, so a whole
// multi-record input pasted on one line parses like a file.
func ParseString(s string) ([]Record, error) {
	return Parse(strings.NewReader(unescape(s)))
}

// unescape turns the two-character sequence `\n` into a newline.
func unescape(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}

// StripHeader returns the sequence of a single raw record, dropping a leading
// header line if present.
func StripHeader(raw string) string {
	recs, err := ParseString(raw)
	if err != nil || len(recs) == 0 {
		return ""
	}

	return recs[0].Sequence
}

// Pair returns the first two records. extra is the number of records after
// them that were ignored.
//
// Errors:
//   - ErrInsufficientInput when len(records) < 2.
func Pair(records []Record) (a, b Record, extra int, err error) {
	if len(records) < 2 {
		return Record{}, Record{}, 0, fmt.Errorf("got %d: %w", len(records), ErrInsufficientInput)
	}

	return records[0], records[1], len(records) - 2, nil
}
