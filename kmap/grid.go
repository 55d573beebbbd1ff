package kmap

import (
	"fmt"

	"github.com/katalvlaran/veitch/notation"
)

// Assemble builds the complete map for fn, marking don't-care cells from
// dontcares. Every term in [0, 2^n−1] is placed via Coordinate; a term
// present in both the minterm and don't-care sets renders as a minterm
// (membership is checked minterms-first — a tolerated inconsistency the
// caller may want to flag, not an error).
//
// Returns ErrVariableCount for unsupported widths and ErrTermRange if a
// minterm or don't-care falls outside the universe. Deterministic: equal
// inputs always produce structurally identical grids.
// Complexity: O(2^n) time and memory.
func Assemble(fn notation.Function, dontcares []int) (*Grid, error) {
	n := len(fn.Variables)
	labels, err := AxisLabels(n)
	if err != nil {
		return nil, err
	}

	ones, err := termSet(fn.Minterms, n)
	if err != nil {
		return nil, err
	}
	free, err := termSet(dontcares, n)
	if err != nil {
		return nil, err
	}

	rows, cols, _ := Dims(n)
	cells := make([][]string, rows)
	for r := range cells {
		cells[r] = make([]string, cols)
	}
	for t := 0; t < 1<<n; t++ {
		c, _ := Coordinate(t, n) // t and n already validated
		switch {
		case ones[t]:
			cells[c.Row][c.Col] = CellOne
		case free[t]:
			cells[c.Row][c.Col] = CellDontCare
		default:
			cells[c.Row][c.Col] = CellZero
		}
	}

	return &Grid{
		Name:      fn.Name,
		Cells:     cells,
		RowLabels: labels.RowLabels,
		ColLabels: labels.ColLabels,
		RowVars:   append([]string(nil), fn.Variables[:labels.RowVarCount]...),
		ColVars:   append([]string(nil), fn.Variables[labels.RowVarCount:]...),
	}, nil
}

// termSet builds a membership set, rejecting terms outside the universe.
func termSet(terms []int, n int) (map[int]bool, error) {
	set := make(map[int]bool, len(terms))
	for _, t := range terms {
		if t < 0 || t >= 1<<n {
			return nil, fmt.Errorf("%w: term %d with %d variables", ErrTermRange, t, n)
		}
		set[t] = true
	}

	return set, nil
}
