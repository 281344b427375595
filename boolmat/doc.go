// Package boolmat stores a square boolean matrix in roughly a quarter of the
// memory a naive one-byte-per-cell grid would take, while keeping O(1) reads
// and writes per cell.
//
// What:
//
//   - Matrix packs an n×n boolean grid into a ⌈n/2⌉×⌈n/2⌉ grid of nibble
//     values (0–15), exploiting the quadrant decomposition of the square:
//     the four logical cells sharing the same relative position in the four
//     quadrants (their "domains") are jointly encoded in one packed byte.
//   - Each public operation maps a logical coordinate to its domain and packed
//     coordinate, then resolves the read or state transition through fixed
//     16-entry lookup tables — one table per domain per operation.
//   - ToDense / FromDense convert between the packed form and a plain
//     [][]bool, and String renders a human-readable dump.
//
// Why:
//
//   - Adjacency and visibility grids: large, mostly static boolean matrices
//     where a 4× memory reduction matters and per-cell access stays O(1).
//   - Reachability snapshots: hold many n×n relations in memory at once.
//
// Complexity:
//
//   - Get / SetTrue / SetFalse / Set / Toggle: O(1), Memory: O(1).
//   - Fill: O(⌈n/2⌉²). ToDense / FromDense / Equal / String: O(n²).
//   - Storage: ⌈n/2⌉² bytes plus a fixed header (see ByteFootprint).
//
// Errors:
//
//   - ErrInvalidSize: construction with non-positive dimension.
//   - ErrOutOfRange: coordinate outside [0, n) on any cell operation.
//   - ErrEmptyGrid, ErrNonRectangular, ErrNonSquare: FromDense input shape.
//
// Concurrency:
//
//	Matrix carries no internal synchronization. One packed byte holds the
//	state of up to four logical cells, so writes to logically distinct cells
//	may still target the same byte; concurrent mutation must be serialized
//	externally (whole-matrix or per-packed-cell lock).
package boolmat
