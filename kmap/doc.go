// Package kmap places boolean-function terms on a Karnaugh-map grid and
// assembles the full cell matrix with Gray-ordered axis labels.
//
// What:
//
//   - Coordinate maps a term index to its grid cell for n ∈ {2,3,4}
//     variables; the mapping is a bijection onto the rows×cols space.
//   - AxisLabels returns the row/column label sequences in placement
//     order, plus how many variables each axis consumes.
//   - Assemble builds the complete Grid ("0"/"1"/"X" cells, labels and
//     the row/column variable split) from a parsed Function.
//
// Why:
//
//   - The whole point of a Karnaugh map is that geometric neighbors are
//     logical neighbors. The 2-bit axes therefore use the Gray
//     permutation 00,01,11,10 — not natural binary order — so that every
//     grid-adjacent cell pair, wrap-around included, differs in exactly
//     one bit.
//
// Layout per variable count:
//
//   - n=2 → 2×2: 1 row bit, 1 column bit, both plain binary.
//   - n=3 → 2×4: MSB to rows (plain binary), 2 bits to Gray columns.
//   - n=4 → 4×4: top 2 bits to Gray rows, bottom 2 to Gray columns.
//
// Errors:
//
//   - ErrVariableCount: variable count outside 2..4.
//   - ErrTermRange: term or don't-care outside [0, 2^n−1].
//
// Complexity:
//
//   - Coordinate, AxisLabels, Dims: O(1).
//   - Assemble: O(2^n) time and memory.
package kmap
