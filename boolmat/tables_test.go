// SPDX-License-Identifier: MIT

// White-box verification that the twelve hard-coded tables in tables.go are
// faithful transcriptions of the caseAssignments bijection. Any mistranscribed
// entry, or a bijection change without regenerating every table, fails here.
package boolmat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// caseIndexOf returns the packed state whose domain assignment equals want.
// caseAssignments is a bijection, so exactly one state matches.
func caseIndexOf(t *testing.T, want [numDomains]bool) uint8 {
	t.Helper()
	for v := 0; v < numStates; v++ {
		if caseAssignments[v] == want {
			return uint8(v)
		}
	}
	t.Fatalf("no packed state encodes assignment %v", want)

	return 0 // unreachable
}

// TestCaseAssignments_Bijection verifies all 16 assignments are distinct,
// i.e. caseAssignments really is a bijection onto the 4-boolean truth table.
func TestCaseAssignments_Bijection(t *testing.T) {
	seen := make(map[[numDomains]bool]int, numStates)
	for v := 0; v < numStates; v++ {
		prev, dup := seen[caseAssignments[v]]
		require.Falsef(t, dup, "states %d and %d share assignment %v", prev, v, caseAssignments[v])
		seen[caseAssignments[v]] = v
	}
	require.Len(t, seen, numStates)
}

// TestDecodeTable_MatchesBijection re-derives every decode entry from
// caseAssignments.
func TestDecodeTable_MatchesBijection(t *testing.T) {
	for d := 0; d < numDomains; d++ {
		for v := 0; v < numStates; v++ {
			require.Equalf(t, caseAssignments[v][d], decodeTable[d][v],
				"decodeTable[%d][%d]", d, v)
		}
	}
}

// TestSetTrueTable_MatchesBijection re-derives every set-true transition:
// from state v, forcing domain d true must land on the unique state whose
// assignment is caseAssignments[v] with slot d set.
func TestSetTrueTable_MatchesBijection(t *testing.T) {
	for d := 0; d < numDomains; d++ {
		for v := 0; v < numStates; v++ {
			want := caseAssignments[v]
			want[d] = true
			require.Equalf(t, caseIndexOf(t, want), setTrueTable[d][v],
				"setTrueTable[%d][%d]", d, v)
		}
	}
}

// TestSetFalseTable_MatchesBijection is the symmetric check for set-false.
func TestSetFalseTable_MatchesBijection(t *testing.T) {
	for d := 0; d < numDomains; d++ {
		for v := 0; v < numStates; v++ {
			want := caseAssignments[v]
			want[d] = false
			require.Equalf(t, caseIndexOf(t, want), setFalseTable[d][v],
				"setFalseTable[%d][%d]", d, v)
		}
	}
}

// TestCheckPacked_PanicsOnCorruption verifies the corruption guard: values in
// range pass through, anything ≥ 16 is a fatal invariant violation.
func TestCheckPacked_PanicsOnCorruption(t *testing.T) {
	for v := uint8(0); v < numStates; v++ {
		require.Equal(t, v, checkPacked(v))
	}
	require.PanicsWithValue(t, panicCorruptPacked, func() { checkPacked(numStates) })
	require.PanicsWithValue(t, panicCorruptPacked, func() { checkPacked(255) })
}
