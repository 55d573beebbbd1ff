package groups

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/veitch/notation"
)

// AlgebraicTerm derives the simplified algebraic term a group stands
// for. A variable survives when its bit is constant across every member;
// the literal is primed or plain depending on the bit value and the
// normal form (in SOP a constant 1 reads "a", in POS a constant 0 does).
//
// Examples over a,b,c,d: SOP group [4,5,6,7] → "a'b";
// POS group [0,1] → "(a + b + c)".
// A group covering the whole universe reduces to "1". An empty group
// yields "".
// Complexity: O(|group|·n).
func AlgebraicTerm(group []int, vars []string, form notation.Form) string {
	if len(group) == 0 {
		return ""
	}

	n := len(vars)
	literals := make([]string, 0, n)
	for i := 0; i < n; i++ {
		shift := n - 1 - i // vars[0] is the most significant bit
		bit := group[0] >> shift & 1
		constant := true
		for _, m := range group[1:] {
			if m>>shift&1 != bit {
				constant = false
				break
			}
		}
		if !constant {
			continue
		}
		lit := vars[i] + "'"
		if (form == notation.FormSOP && bit == 1) || (form == notation.FormPOS && bit == 0) {
			lit = vars[i]
		}
		literals = append(literals, lit)
	}

	if len(literals) == 0 {
		return "1"
	}
	if form == notation.FormSOP {
		return strings.Join(literals, "")
	}

	return "(" + strings.Join(literals, " + ") + ")"
}

// Explain renders the per-group teaching sentence: which cells the group
// gathers and what it simplifies to. relevant filters the positions shown
// to actual minterms/maxterms (don't-cares inside a group are covered but
// not announced); pass nil to show every member.
func Explain(group []int, relevant []int, vars []string, form notation.Form) string {
	cells := group
	if relevant != nil {
		keep := make(map[int]bool, len(relevant))
		for _, t := range relevant {
			keep[t] = true
		}
		cells = make([]int, 0, len(group))
		for _, t := range group {
			if keep[t] {
				cells = append(cells, t)
			}
		}
	}
	cells = append([]int(nil), cells...)
	sort.Ints(cells)

	kind := "1s"
	if form == notation.FormPOS {
		kind = "0s"
	}

	return fmt.Sprintf("A group is formed around the %s at positions %v. This simplifies to the term %s.",
		kind, cells, AlgebraicTerm(group, vars, form))
}
