package groups

import "github.com/katalvlaran/veitch/kmap"

// Borders computes boundary annotations for every group over the n-variable
// grid. Groups are processed independently and in order; within a group,
// annotations follow member order (duplicate members are collapsed), so
// output is fully deterministic.
//
// For an occupied cell (r,c) the four toroidal neighbors are
// ((r±1) mod rows, c) and (r, (c±1) mod cols); an edge is a boundary
// exactly when the neighbor on that side is not occupied by the same
// group. Group shape is never validated — that is the minimizer's job.
//
// Complexity: O(Σ|group|) time and memory.
func Borders(grps [][]int, n int) ([]Border, error) {
	rows, cols, err := kmap.Dims(n)
	if err != nil {
		return nil, err
	}

	out := make([]Border, 0, len(grps)*4)
	for gi, grp := range grps {
		occupied := make(map[kmap.Coord]bool, len(grp))
		order := make([]kmap.Coord, 0, len(grp))
		for _, term := range grp {
			c, err := kmap.Coordinate(term, n)
			if err != nil {
				return nil, err
			}
			if !occupied[c] {
				occupied[c] = true
				order = append(order, c)
			}
		}

		for _, c := range order {
			var edges Edge
			if !occupied[kmap.Coord{Row: (c.Row - 1 + rows) % rows, Col: c.Col}] {
				edges |= Top
			}
			if !occupied[kmap.Coord{Row: (c.Row + 1) % rows, Col: c.Col}] {
				edges |= Bottom
			}
			if !occupied[kmap.Coord{Row: c.Row, Col: (c.Col - 1 + cols) % cols}] {
				edges |= Left
			}
			if !occupied[kmap.Coord{Row: c.Row, Col: (c.Col + 1) % cols}] {
				edges |= Right
			}
			out = append(out, Border{
				Row:   c.Row,
				Col:   c.Col,
				Edges: edges,
				Group: gi,
				Color: gi % len(Palette),
			})
		}
	}

	return out, nil
}
