// Package quadbool packs large square boolean matrices into a quarter of
// their naive memory while keeping every cell read and write O(1).
//
// What is quadbool?
//
//	A small, dependency-light library built around one idea: split an n×n
//	boolean grid into its four quadrants and let the four cells sharing a
//	relative position inside their quadrants live together in a single
//	nibble-valued byte. Sixteen states cover every combination of the four
//	booleans; fixed per-quadrant lookup tables decode a cell or step the
//	byte to its next state without ever inspecting the other three cells.
//
// Why choose quadbool?
//
//   - ~4× memory reduction over [][]bool or []byte grids
//   - O(1) Get/Set/Toggle per cell, no bit twiddling at the call site
//   - Sentinel errors, no panics on caller input
//   - Pure Go — no cgo, no hidden deps
//
// Everything lives in one subpackage:
//
//	boolmat/ — the packed Matrix type, dense converters and debug rendering
//
// Quick sketch (n=5, packed 3×3 — the four quadrants share the 3×3 store):
//
//	0 1 2 | 3 4          top-left / top-right
//	------+----    →     bottom-left / bottom-right
//	3 4   |              all folded onto one 3×3 byte grid
//
// See boolmat's package documentation and examples for usage patterns.
//
//	go get github.com/katalvlaran/quadbool
package quadbool
