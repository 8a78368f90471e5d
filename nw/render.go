// SPDX-License-Identifier: MIT

package nw

import "fmt"

// Render replays an origin-first path over a and b and returns the gapped
// pair.
//
// Moves are consumed from the end of the path with cursors i (into a) and
// j (into b) starting at the sequence lengths:
//   - Diagonal emits (a[i], b[j]) and decrements both cursors.
//   - Up emits (gap, b[j]) and decrements j.
//   - Left emits (a[i], gap) and decrements i.
//
// Errors:
//   - ErrMalformedPath for an unknown move label, a move that runs a cursor
//     past the start of its sequence, or a path that leaves symbols unconsumed.
func Render(path []Move, a, b []byte, gap byte) (Pair, error) {
	outA := make([]byte, 0, len(path))
	outB := make([]byte, 0, len(path))

	i, j := len(a), len(b)
	for k := len(path) - 1; k >= 0; k-- {
		mv := path[k]
		switch mv {
		case Diagonal:
			if i == 0 || j == 0 {
				return Pair{}, pathErrorf(k, mv, ErrMalformedPath)
			}
			i, j = i-1, j-1
			outA = append(outA, a[i])
			outB = append(outB, b[j])
		case Up:
			if j == 0 {
				return Pair{}, pathErrorf(k, mv, ErrMalformedPath)
			}
			j--
			outA = append(outA, gap)
			outB = append(outB, b[j])
		case Left:
			if i == 0 {
				return Pair{}, pathErrorf(k, mv, ErrMalformedPath)
			}
			i--
			outA = append(outA, a[i])
			outB = append(outB, gap)
		default:
			return Pair{}, pathErrorf(k, mv, ErrMalformedPath)
		}
	}
	if i != 0 || j != 0 {
		return Pair{}, fmt.Errorf("%d symbols of A and %d of B unconsumed: %w", i, j, ErrMalformedPath)
	}

	reverse(outA)
	reverse(outB)

	return Pair{A: string(outA), B: string(outB)}, nil
}

func pathErrorf(pos int, mv Move, err error) error {
	return fmt.Errorf("move %q at %d: %w", byte(mv), pos, err)
}

func reverse(s []byte) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}
