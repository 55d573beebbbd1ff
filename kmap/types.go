// Package kmap defines grid types, axis layouts, and sentinel errors for
// Karnaugh-map geometry.
package kmap

import "errors"

// Sentinel errors for kmap operations.
var (
	// ErrVariableCount indicates a variable count outside the supported 2..4 range.
	ErrVariableCount = errors.New("kmap: variable count must be between 2 and 4")
	// ErrTermRange indicates a term index outside [0, 2^n-1] for n variables.
	ErrTermRange = errors.New("kmap: term out of range for variable count")
)

// Cell values stored in Grid.Cells.
const (
	// CellZero marks an input combination where the function is 0.
	CellZero = "0"
	// CellOne marks a minterm.
	CellOne = "1"
	// CellDontCare marks an unconstrained input combination.
	CellDontCare = "X"
)

// Coord addresses a single map cell. Row and Col are zero-based; valid
// ranges depend on the variable count (2×2, 2×4 or 4×4).
type Coord struct {
	Row, Col int
}

// Labels describes both axes of a map: label sequences in placement
// order and the number of variables consumed by each axis.
type Labels struct {
	// RowLabels holds the row bit-group values top to bottom, e.g. "00","01","11","10".
	RowLabels []string
	// ColLabels holds the column bit-group values left to right.
	ColLabels []string
	// RowVarCount is how many leading variables the row axis consumes.
	RowVarCount int
	// ColVarCount is how many trailing variables the column axis consumes.
	ColVarCount int
}

// Grid is a fully assembled Karnaugh map. It is a plain value: Assemble
// returns a fresh Grid on every call and nothing mutates it afterwards.
type Grid struct {
	// Name is the function's output name.
	Name string
	// Cells[row][col] is CellZero, CellOne or CellDontCare.
	Cells [][]string
	// RowLabels / ColLabels mirror Labels for this grid's variable count.
	RowLabels []string
	ColLabels []string
	// RowVars / ColVars split the variable list between the axes,
	// preserving declaration order (leading names to rows).
	RowVars []string
	ColVars []string
}

// Rows returns the number of grid rows. Complexity: O(1).
func (g *Grid) Rows() int { return len(g.Cells) }

// Cols returns the number of grid columns. Complexity: O(1).
func (g *Grid) Cols() int {
	if len(g.Cells) == 0 {
		return 0
	}

	return len(g.Cells[0])
}

// axis captures one side of the map: bit width, the value→position Gray
// permutation, and the labels in position order.
type axis struct {
	bits      int
	positions []int
	labels    []string
}

// The 1-bit axis needs no reflection (two positions are trivially Gray);
// the 2-bit axis uses the mandatory permutation 00→0, 01→1, 11→2, 10→3.
var (
	axis1 = axis{bits: 1, positions: []int{0, 1}, labels: []string{"0", "1"}}
	axis2 = axis{bits: 2, positions: []int{0, 1, 3, 2}, labels: []string{"00", "01", "11", "10"}}
)

// layouts is the immutable configuration table keyed by variable count.
// Extending beyond 4 variables means adding an entry here, not touching
// any placement code.
var layouts = map[int]struct{ row, col axis }{
	2: {row: axis1, col: axis1},
	3: {row: axis1, col: axis2},
	4: {row: axis2, col: axis2},
}
