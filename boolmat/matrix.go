// SPDX-License-Identifier: MIT

// Package boolmat - Matrix facade: construction and the public cell surface.
//
// Every cell operation follows the same pipeline: locate (domain.go) resolves
// the domain and packed coordinate, the packed store is read at that offset,
// and the per-domain table (tables.go) yields the decoded boolean or the next
// packed state to write back. All user-facing failures are sentinel errors;
// nothing here panics on caller input.
package boolmat

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxGet      = "Get"      // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxSetTrue  = "SetTrue"  // method tag used in error wrappers
	ctxSetFalse = "SetFalse" // method tag used in error wrappers
	ctxToggle   = "Toggle"   // method tag used in error wrappers
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New creates an n×n boolean matrix in packed form, all cells false.
// Stage 1 (Validate): size must be positive; else ErrInvalidSize.
// Stage 2 (Prepare): compute packed = ⌈size/2⌉ and allocate the flat store;
// make() zero-fills it, and state 0 decodes to false in every domain.
// Complexity: O(⌈n/2⌉²) time and memory.
func New(size int) (*Matrix, error) {
	// Validate the logical dimension.
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	// ⌈size/2⌉ without floating point.
	packed := (size + 1) / 2

	return &Matrix{
		size:   size,
		packed: packed,
		cells:  make([]uint8, packed*packed),
	}, nil
}

// Size returns the logical dimension n; the matrix is n×n.
// Complexity: O(1).
func (m *Matrix) Size() int {
	return m.size
}

// Len returns the total logical cell count, n².
// Complexity: O(1).
func (m *Matrix) Len() int {
	return m.size * m.size
}

// PackedSize returns ⌈n/2⌉, the dimension of the internal packed grid.
// Complexity: O(1).
func (m *Matrix) PackedSize() int {
	return m.packed
}

// ByteFootprint returns the bytes occupied by the packed representation:
// ⌈n/2⌉² store bytes plus the fixed header. Intended for inspection and
// benchmarking against the naive n² one-byte-per-cell layout.
// Complexity: O(1).
func (m *Matrix) ByteFootprint() int {
	return len(m.cells) + footprintHeaderBytes
}

// Get reports the boolean value of the logical cell (x, y).
// Stage 1 (Partition): resolve domain and packed coordinate.
// Stage 2 (Decode): read the packed state and consult the domain's decode
// table.
// Returns ErrOutOfRange if (x, y) lies outside [0, Size())².
// Complexity: O(1).
func (m *Matrix) Get(x, y int) (bool, error) {
	d, i, j, err := m.locate(ctxGet, x, y)
	if err != nil {
		return false, err
	}

	return decodeTable[d][checkPacked(m.cells[m.index(i, j)])], nil
}

// SetTrue forces the logical cell (x, y) to true, leaving the other three
// cells sharing its packed byte untouched.
// Returns ErrOutOfRange if (x, y) lies outside [0, Size())²; the store is not
// modified on failure.
// Complexity: O(1).
func (m *Matrix) SetTrue(x, y int) error {
	d, i, j, err := m.locate(ctxSetTrue, x, y)
	if err != nil {
		return err
	}
	idx := m.index(i, j)
	m.cells[idx] = setTrueTable[d][checkPacked(m.cells[idx])]

	return nil
}

// SetFalse forces the logical cell (x, y) to false, leaving the other three
// cells sharing its packed byte untouched.
// Returns ErrOutOfRange if (x, y) lies outside [0, Size())²; the store is not
// modified on failure.
// Complexity: O(1).
func (m *Matrix) SetFalse(x, y int) error {
	d, i, j, err := m.locate(ctxSetFalse, x, y)
	if err != nil {
		return err
	}
	idx := m.index(i, j)
	m.cells[idx] = setFalseTable[d][checkPacked(m.cells[idx])]

	return nil
}

// Set assigns v to the logical cell (x, y); sugar over SetTrue/SetFalse.
// Returns ErrOutOfRange if (x, y) lies outside [0, Size())².
// Complexity: O(1).
func (m *Matrix) Set(x, y int, v bool) error {
	d, i, j, err := m.locate(ctxSet, x, y)
	if err != nil {
		return err
	}
	idx := m.index(i, j)
	if v {
		m.cells[idx] = setTrueTable[d][checkPacked(m.cells[idx])]
	} else {
		m.cells[idx] = setFalseTable[d][checkPacked(m.cells[idx])]
	}

	return nil
}

// Toggle flips the logical cell (x, y) to its opposite boolean value.
// One decode plus one transition; not a single table lookup, but still O(1).
// Returns ErrOutOfRange if (x, y) lies outside [0, Size())².
// Complexity: O(1).
func (m *Matrix) Toggle(x, y int) error {
	d, i, j, err := m.locate(ctxToggle, x, y)
	if err != nil {
		return err
	}
	idx := m.index(i, j)
	v := checkPacked(m.cells[idx])
	if decodeTable[d][v] {
		m.cells[idx] = setFalseTable[d][v]
	} else {
		m.cells[idx] = setTrueTable[d][v]
	}

	return nil
}

// Fill sets every logical cell to v in bulk, bypassing per-cell domain logic:
// states 0 and 15 encode "all four domain contributions equal v" uniformly,
// which holds whether or not a boundary quadrant physically exists at a given
// packed coordinate.
// Complexity: O(⌈n/2⌉²).
func (m *Matrix) Fill(v bool) {
	var state uint8
	if v {
		state = numStates - 1
	}
	for k := range m.cells {
		m.cells[k] = state
	}
}

// ToDense expands the packed form into a plain n×n boolean grid, row-major.
// The result is independent of the matrix; mutating it has no effect on the
// packed store.
// Complexity: O(n²) time and memory.
func (m *Matrix) ToDense() [][]bool {
	dense := make([][]bool, m.size)
	for x := 0; x < m.size; x++ {
		row := make([]bool, m.size)
		for y := 0; y < m.size; y++ {
			// Bounds are valid by construction; Get cannot fail here.
			row[y], _ = m.Get(x, y)
		}
		dense[x] = row
	}

	return dense
}

// Equal reports whether both matrices have the same logical dimension and
// agree on every logical cell. Nil receivers/arguments compare equal only to
// nil. Decoded cells are compared, not packed bytes: a boundary packed cell
// of an odd-sized matrix can reach different states for identical logical
// content (Fill writes state 15 where per-cell SetTrue leaves the
// unaddressable domains false), so byte equality would be stricter than cell
// equality.
// Complexity: O(n²).
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.size != other.size {
		return false
	}
	for x := 0; x < m.size; x++ {
		for y := 0; y < m.size; y++ {
			// Bounds are valid by construction; Get cannot fail here.
			a, _ := m.Get(x, y)
			b, _ := other.Get(x, y)
			if a != b {
				return false
			}
		}
	}

	return true
}

// Clone returns a deep copy of the matrix. The copy shares no storage with
// the original.
// Complexity: O(⌈n/2⌉²) time and memory.
func (m *Matrix) Clone() *Matrix {
	cells := make([]uint8, len(m.cells))
	copy(cells, m.cells)

	return &Matrix{size: m.size, packed: m.packed, cells: cells}
}

// String renders the dense form for human inspection: one line per row,
// cells space-separated as "true"/"false". Debug output only — not a
// machine-parseable format and not guaranteed stable across versions.
// Complexity: O(n²).
func (m *Matrix) String() string {
	var sb strings.Builder
	for x := 0; x < m.size; x++ {
		for y := 0; y < m.size; y++ {
			if y > 0 {
				sb.WriteByte(' ')
			}
			v, _ := m.Get(x, y)
			sb.WriteString(strconv.FormatBool(v))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
