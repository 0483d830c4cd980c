// SPDX-License-Identifier: MIT

// Package matrix provides the packed storage used by every search component:
// a symmetric cost table of order N+1 with no diagonal, kept as its strict
// lower triangle in one flat arena.
//
// Layout
//
//	row 1: (1,0)
//	row 2: (2,0) (2,1)
//	row 3: (3,0) (3,1) (3,2)
//	...
//
// Cell (row, col) with col < row lives at offset TriangularIndex(row, col) =
// row*(row-1)/2 + col. The table therefore holds N(N+1)/2 values, half of a
// dense matrix, and matches the problem's symmetry: cost(i,j) = cost(j,i) and
// there are no self-loops.
//
// Surfaces:
//   - NewTriangular / FromValues / Parse build tables (zero-filled, from a flat
//     slice, or from the whitespace-separated text format).
//   - At / Set / AtUnordered are O(1) bounds-checked accessors returning sentinels.
//   - Triples yields every stored (row, col, value) in row-major order.
//   - Min / Max / Range summarise stored values.
//
// Errors are sentinels from errors.go; nothing in this package panics on user input.
package matrix
