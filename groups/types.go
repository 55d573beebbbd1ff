// Package groups defines border annotations, the edge bitmask and the
// shared color palette.
package groups

// Edge is a bitmask over the four sides of a cell.
type Edge uint8

const (
	// Top marks the upper edge of a cell.
	Top Edge = 1 << iota
	// Bottom marks the lower edge.
	Bottom
	// Left marks the left edge.
	Left
	// Right marks the right edge.
	Right
)

// Has reports whether every edge in mask is set. Complexity: O(1).
func (e Edge) Has(mask Edge) bool { return e&mask == mask }

// Border annotates one occupied cell of one group: which edges to draw
// and with which palette color. A cell shared by overlapping groups
// appears once per group; marks accumulate, they never suppress each
// other.
type Border struct {
	// Row, Col locate the cell on the grid.
	Row, Col int
	// Edges holds the boundary sides for this cell within its group.
	Edges Edge
	// Group is the zero-based index of the group this annotation belongs to.
	Group int
	// Color indexes Palette: Group mod len(Palette).
	Color int
}

// Palette is the fixed ordered color list shared with the render layer.
// Hex values render well on both dark and light terminals.
var Palette = []string{
	"#E74C3C", // red
	"#3498DB", // blue
	"#2ECC71", // green
	"#F39C12", // orange
	"#9B59B6", // purple
	"#1ABC9C", // teal
	"#E67E22", // amber
	"#FD79A8", // pink
}
