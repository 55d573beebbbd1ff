package render

import (
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/veitch/groups"
	"github.com/katalvlaran/veitch/notation"
)

// Summary tabulates the groups covering fn: member cells, the algebraic
// term each group stands for, and its teaching explanation. Don't-cares
// swallowed by a group are covered but not announced, matching Explain.
// Groups that only cover don't-cares are skipped.
func (r *Renderer) Summary(grps [][]int, fn notation.Function, dontcares []int) string {
	relevant := relevantTerms(fn, dontcares)

	w := table.NewWriter()
	w.SetStyle(table.StyleLight)
	w.AppendHeader(table.Row{"#", "Cells", "Term", "Explanation"})
	for i, g := range grps {
		cells := intersect(g, relevant)
		if len(cells) == 0 {
			continue
		}
		w.AppendRow(table.Row{
			i + 1,
			fmt.Sprintf("%v", cells),
			groups.AlgebraicTerm(g, fn.Variables, fn.Form),
			groups.Explain(g, relevant, fn.Variables, fn.Form),
		})
	}

	return w.Render()
}

// relevantTerms returns the cells a group explanation should announce:
// the function's 1s for SOP, its 0s for POS, don't-cares excluded.
func relevantTerms(fn notation.Function, dontcares []int) []int {
	skip := make(map[int]bool, len(fn.Minterms)+len(dontcares))
	for _, t := range dontcares {
		skip[t] = true
	}

	if fn.Form == notation.FormSOP {
		out := make([]int, 0, len(fn.Minterms))
		for _, t := range fn.Minterms {
			if !skip[t] {
				out = append(out, t)
			}
		}

		return out
	}

	for _, t := range fn.Minterms {
		skip[t] = true
	}
	out := make([]int, 0, fn.Universe())
	for t := 0; t < fn.Universe(); t++ {
		if !skip[t] {
			out = append(out, t)
		}
	}

	return out
}

// intersect returns the sorted members of group that appear in keep.
func intersect(group, keep []int) []int {
	set := make(map[int]bool, len(keep))
	for _, t := range keep {
		set[t] = true
	}
	out := make([]int, 0, len(group))
	for _, t := range group {
		if set[t] {
			out = append(out, t)
		}
	}
	sort.Ints(out)

	return out
}
