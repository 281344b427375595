// SPDX-License-Identifier: MIT

// Package boolmat: domain types and the packed-state case table.
// This file contains ONLY domain-facing types and the single source of truth
// for the 16-state encoding; errors live in errors.go and the derived
// transition tables in tables.go, per the package conventions.
package boolmat

// Domain identifies one of the four quadrants of the logical matrix.
// The four logical cells sharing a relative position within their quadrants
// are jointly encoded in a single packed value.
type Domain uint8

const (
	// DomainTopLeft covers x < packed, y < packed.
	DomainTopLeft Domain = iota
	// DomainBottomLeft covers x ≥ packed, y < packed.
	DomainBottomLeft
	// DomainTopRight covers x < packed, y ≥ packed.
	DomainTopRight
	// DomainBottomRight covers x ≥ packed, y ≥ packed.
	DomainBottomRight
)

const (
	// numDomains is the quadrant count of a square's 2×2 decomposition.
	numDomains = 4

	// numStates is the number of truth-assignments of four booleans; every
	// packed value lies in [0, numStates). Anything else is corruption.
	numStates = 16

	// footprintHeaderBytes models the fixed per-matrix header reported by
	// ByteFootprint: two 32-bit dimension fields alongside the packed store.
	footprintHeaderBytes = 8
)

// caseAssignments is the canonical bijection between packed values 0–15 and
// the 16 possible combinations of the four domains' boolean contributions,
// indexed as caseAssignments[state][domain]. It is a fixed, versioned
// constant: the decode and transition tables in tables.go are transcriptions
// of this table and MUST be regenerated together with it, never edited in
// isolation (tables_test.go re-derives all twelve tables from here).
var caseAssignments = [numStates][numDomains]bool{
	0:  {false, false, false, false},
	1:  {true, false, false, false},
	2:  {false, true, false, false},
	3:  {false, false, true, false},
	4:  {false, false, false, true},
	5:  {true, true, false, false},
	6:  {true, false, true, false},
	7:  {true, false, false, true},
	8:  {false, true, true, false},
	9:  {false, true, false, true},
	10: {false, false, true, true},
	11: {true, true, true, false},
	12: {true, true, false, true},
	13: {true, false, true, true},
	14: {false, true, true, true},
	15: {true, true, true, true},
}

// Matrix is a square boolean matrix held in quadrant-packed form.
// size is the logical dimension n; packed is ⌈n/2⌉; cells is a flat row-major
// buffer of packed×packed nibble values (offset = i*packed + j), each jointly
// encoding up to four logical cells. Both dimensions are fixed for the
// lifetime of the matrix; there is no resize operation.
type Matrix struct {
	size   int     // logical dimension n (matrix is n×n)
	packed int     // ⌈n/2⌉, dimension of the packed grid
	cells  []uint8 // packed store, len == packed*packed, values in [0,16)
}
