// SPDX-License-Identifier: MIT

package nw

import "fmt"

// traceback walks a filled grid from its terminal cell to the origin,
// choosing the first recorded move in priority order Diagonal > Up > Left.
// Moves are accumulated terminal-first and reversed once in place, so the
// returned path is origin-first.
//
// Errors:
//   - ErrCorruptPath if a non-origin cell has no directions, or a recorded
//     move steps off the grid.
//
// Complexity: O(rows+cols) time, iterative.
func traceback(m *matrix) ([]Move, error) {
	if m.rows == 0 || m.cols == 0 {
		return nil, fmt.Errorf("empty grid: %w", ErrCorruptPath)
	}

	i, j := m.rows-1, m.cols-1
	path := make([]Move, 0, i+j)
	for i > 0 || j > 0 {
		c, err := m.at(i, j)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptPath, err)
		}
		mv, ok := c.Dirs.First()
		if !ok {
			return nil, fmt.Errorf("cell (%d,%d) has no direction: %w", i, j, ErrCorruptPath)
		}
		switch mv {
		case Diagonal:
			i, j = i-1, j-1
		case Up:
			i--
		case Left:
			j--
		}
		if i < 0 || j < 0 {
			return nil, fmt.Errorf("move %s leaves the grid at (%d,%d): %w", mv, i, j, ErrCorruptPath)
		}
		path = append(path, mv)
	}

	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path, nil
}
