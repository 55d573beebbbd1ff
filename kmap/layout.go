package kmap

import "fmt"

// Coordinate maps term t to its grid cell for n variables.
//
// The top rowBits of t select the row and the remaining colBits the
// column, each pushed through its axis' Gray permutation. For fixed n
// the mapping is a bijection onto the full rows×cols space.
// Returns ErrVariableCount or ErrTermRange on invalid input.
// Complexity: O(1).
func Coordinate(t, n int) (Coord, error) {
	l, ok := layouts[n]
	if !ok {
		return Coord{}, fmt.Errorf("%w: got %d", ErrVariableCount, n)
	}
	if t < 0 || t >= 1<<n {
		return Coord{}, fmt.Errorf("%w: term %d with %d variables", ErrTermRange, t, n)
	}
	rowVal := t >> l.col.bits
	colVal := t & (1<<l.col.bits - 1)

	return Coord{Row: l.row.positions[rowVal], Col: l.col.positions[colVal]}, nil
}

// AxisLabels returns both axes' label sequences in the same permuted
// order Coordinate uses for placement, so labels and cells can never
// drift apart. Returned slices are fresh copies.
// Complexity: O(1).
func AxisLabels(n int) (Labels, error) {
	l, ok := layouts[n]
	if !ok {
		return Labels{}, fmt.Errorf("%w: got %d", ErrVariableCount, n)
	}

	return Labels{
		RowLabels:   append([]string(nil), l.row.labels...),
		ColLabels:   append([]string(nil), l.col.labels...),
		RowVarCount: l.row.bits,
		ColVarCount: l.col.bits,
	}, nil
}

// Dims returns the grid dimensions for n variables:
// n=2 → 2×2, n=3 → 2×4, n=4 → 4×4.
// Complexity: O(1).
func Dims(n int) (rows, cols int, err error) {
	l, ok := layouts[n]
	if !ok {
		return 0, 0, fmt.Errorf("%w: got %d", ErrVariableCount, n)
	}

	return len(l.row.labels), len(l.col.labels), nil
}
