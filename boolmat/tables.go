// SPDX-License-Identifier: MIT

// Package boolmat - per-domain state tables for the packed encoding.
//
// A packed value is NOT a bit-order encoding of the four domain booleans: it
// is the arbitrary bijection fixed in caseAssignments (types.go). Because of
// that, a domain's read or write cannot be computed with bit arithmetic; each
// operation is resolved through a fixed 16-entry lookup indexed by the current
// packed value. Three operations × four domains gives the twelve tables below,
// all transcribed from caseAssignments:
//
//   - decodeTable[d][v]   — the boolean contributed by domain d in state v.
//   - setTrueTable[d][v]  — the state reached from v after forcing domain d's
//     contribution to true, leaving the other three domains untouched.
//   - setFalseTable[d][v] — the symmetric transition forcing d to false.
//
// All lookups are total over [0,16); an out-of-range packed value can only
// mean upstream memory corruption and is a fatal invariant violation, never a
// recoverable error (checkPacked panics). Picking a different bijection
// without regenerating every table together is the one mistranscription this
// layout cannot survive; tables_test.go re-derives all twelve tables from
// caseAssignments and fails on any drift.
package boolmat

// panicCorruptPacked is the invariant-violation message raised when a packed
// value outside [0,16) reaches a table lookup.
const panicCorruptPacked = "boolmat: corrupt packed value outside [0,15]"

// decodeTable yields the logical boolean contributed by each domain per state.
var decodeTable = [numDomains][numStates]bool{
	DomainTopLeft: {
		false, true, false, false,
		false, true, true, true,
		false, false, false, true,
		true, true, false, true,
	},
	DomainBottomLeft: {
		false, false, true, false,
		false, true, false, false,
		true, true, false, true,
		true, false, true, true,
	},
	DomainTopRight: {
		false, false, false, true,
		false, false, true, false,
		true, false, true, true,
		false, true, true, true,
	},
	DomainBottomRight: {
		false, false, false, false,
		true, false, false, true,
		false, true, true, false,
		true, true, true, true,
	},
}

// setTrueTable maps each state to the state with the domain's bit forced true.
var setTrueTable = [numDomains][numStates]uint8{
	DomainTopLeft: {
		1, 1, 5, 6,
		7, 5, 6, 7,
		11, 12, 13, 11,
		12, 13, 15, 15,
	},
	DomainBottomLeft: {
		2, 5, 2, 8,
		9, 5, 11, 12,
		8, 9, 14, 11,
		12, 15, 14, 15,
	},
	DomainTopRight: {
		3, 6, 8, 3,
		10, 11, 6, 13,
		8, 14, 10, 11,
		15, 13, 14, 15,
	},
	DomainBottomRight: {
		4, 7, 9, 10,
		4, 12, 13, 7,
		14, 9, 10, 15,
		12, 13, 14, 15,
	},
}

// setFalseTable maps each state to the state with the domain's bit forced false.
var setFalseTable = [numDomains][numStates]uint8{
	DomainTopLeft: {
		0, 0, 2, 3,
		4, 2, 3, 4,
		8, 9, 10, 8,
		9, 10, 14, 14,
	},
	DomainBottomLeft: {
		0, 1, 0, 3,
		4, 1, 6, 7,
		3, 4, 10, 6,
		7, 13, 10, 13,
	},
	DomainTopRight: {
		0, 1, 2, 0,
		4, 5, 1, 7,
		2, 9, 4, 5,
		12, 7, 9, 12,
	},
	DomainBottomRight: {
		0, 1, 2, 3,
		0, 5, 6, 1,
		8, 2, 3, 11,
		5, 6, 8, 11,
	},
}

// checkPacked guards every table lookup: a packed value outside [0,16) cannot
// be produced by any public operation and indicates the backing store has been
// corrupted, so the only safe response is to stop.
// Complexity: O(1).
func checkPacked(v uint8) uint8 {
	if v >= numStates {
		panic(panicCorruptPacked)
	}

	return v
}
