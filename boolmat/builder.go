// SPDX-License-Identifier: MIT

// Package boolmat - FromDense: ingest a plain boolean grid into packed form.
package boolmat

// FromDense constructs a packed Matrix from a non-empty, square [][]bool.
// The inverse of (*Matrix).ToDense. The input is read once and never retained,
// so later mutation of values cannot affect the matrix.
// Returns ErrEmptyGrid if values has no rows or no columns, ErrNonRectangular
// if any row length differs from the first, ErrNonSquare if the rectangle is
// not n×n.
// Complexity: O(n²) time, O(⌈n/2⌉²) memory.
func FromDense(values [][]bool) (*Matrix, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	n := len(values)
	for _, row := range values {
		if len(row) != len(values[0]) {
			return nil, ErrNonRectangular
		}
	}
	if len(values[0]) != n {
		return nil, ErrNonSquare
	}

	m, err := New(n)
	if err != nil {
		return nil, err
	}
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			// New starts all-false; only true cells need a transition.
			if values[x][y] {
				// Bounds are valid by construction; SetTrue cannot fail here.
				_ = m.SetTrue(x, y)
			}
		}
	}

	return m, nil
}
