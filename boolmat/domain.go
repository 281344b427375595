// SPDX-License-Identifier: MIT

// Package boolmat - domain partitioner.
//
// locate is the single entry point mapping a logical coordinate onto the
// packed index space. It is a pure function of (x, y) and the two fixed
// dimensions; the only failure mode is the bounds check. Every public cell
// operation goes through it, so the packed store itself never re-checks
// bounds.
package boolmat

import "fmt"

// opErrorf wraps a sentinel with method context and callsite coordinates.
// The sentinel stays matchable via errors.Is.
func opErrorf(op string, x, y int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", op, x, y, err)
}

// locate maps logical (x, y) onto (domain, packed row, packed col).
// Stage 1 (Validate): reject any coordinate outside [0, size) — no
// wraparound, no clamping. When size is odd the last packed row/column has no
// occupant in the far domains; the bounds check makes those positions simply
// unaddressable, so they can never alias into a neighboring packed cell.
// Stage 2 (Partition): pick the quadrant by comparing each axis to packed.
// Stage 3 (Reduce): fold the coordinate into the packed grid by subtracting
// packed from the axis that crossed it.
// Complexity: O(1).
func (m *Matrix) locate(op string, x, y int) (Domain, int, int, error) {
	// Reject anything outside the logical index space.
	if x < 0 || x >= m.size || y < 0 || y >= m.size {
		return 0, 0, 0, opErrorf(op, x, y, ErrOutOfRange)
	}

	// Quadrant selection; packed-coordinate reduction per axis.
	switch {
	case x < m.packed && y < m.packed:
		return DomainTopLeft, x, y, nil
	case y < m.packed: // x ≥ packed
		return DomainBottomLeft, x - m.packed, y, nil
	case x < m.packed: // y ≥ packed
		return DomainTopRight, x, y - m.packed, nil
	default: // x ≥ packed && y ≥ packed
		return DomainBottomRight, x - m.packed, y - m.packed, nil
	}
}

// index maps a packed (i, j) to its row-major offset: i*packed + j.
// Bounds are guaranteed by locate's contract.
// Complexity: O(1).
func (m *Matrix) index(i, j int) int {
	return i*m.packed + j
}
