package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/veitch/groups"
	"github.com/katalvlaran/veitch/kmap"
)

const cellWidth = 3 // content columns inside each cell box

// Options configures a Renderer.
type Options struct {
	// Marker replaces the don't-care cell value on screen. Empty keeps "X".
	Marker string
	// NoColor drops all color while keeping layout and glyphs.
	NoColor bool
}

// DefaultOptions returns Options with marker "X" and color enabled.
func DefaultOptions() Options {
	return Options{Marker: kmap.CellDontCare}
}

// Renderer draws grids and summaries. It keeps the last grid/borders
// pair it drew — displayed state lives here and nowhere else. Not safe
// for concurrent use; drive it from one goroutine like any other screen.
type Renderer struct {
	styles Styles
	marker string

	lastGrid    *kmap.Grid
	lastBorders []groups.Border
}

// New builds a Renderer from opts.
func New(opts Options) *Renderer {
	marker := opts.Marker
	if marker == "" {
		marker = kmap.CellDontCare
	}

	return &Renderer{styles: NewStyles(opts.NoColor), marker: marker}
}

// Last returns the most recently rendered grid/borders pair, nil before
// the first Map call. Callers use it to leave the screen untouched when
// new input fails to parse.
func (r *Renderer) Last() (*kmap.Grid, []groups.Border) {
	return r.lastGrid, r.lastBorders
}

// cellMark is the merged outline state of one cell.
type cellMark struct {
	edges   groups.Edge
	color   int
	claimed bool
}

// Map draws the grid with its axis labels and group outlines and records
// the pair as last-rendered. Boundary edges render thick in the group's
// palette color; open edges stay thin. Overlapping groups merge their
// edge marks per the accumulate-don't-suppress rule; the box color comes
// from the first claiming group.
func (r *Renderer) Map(g *kmap.Grid, borders []groups.Border) string {
	marks := make(map[kmap.Coord]cellMark, len(borders))
	for _, b := range borders {
		at := kmap.Coord{Row: b.Row, Col: b.Col}
		m, ok := marks[at]
		if !ok {
			m = cellMark{color: b.Color, claimed: true}
		}
		m.edges |= b.Edges
		marks[at] = m
	}

	labelWidth := 0
	for _, l := range g.RowLabels {
		if len(l) > labelWidth {
			labelWidth = len(l)
		}
	}
	corner := strings.Join(g.RowVars, "") + `\` + strings.Join(g.ColVars, "")
	if len(corner) > labelWidth {
		labelWidth = len(corner)
	}
	labelWidth += 2 // breathing room before the boxes

	head := make([]string, 0, len(g.ColLabels)+1)
	head = append(head, r.styles.Corner.Width(labelWidth).Render(corner))
	for _, cl := range g.ColLabels {
		head = append(head, r.styles.Label.Width(cellWidth+2).Align(lipgloss.Center).Render(cl))
	}

	lines := make([]string, 0, g.Rows()+1)
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Bottom, head...))
	for ri, rl := range g.RowLabels {
		row := make([]string, 0, g.Cols()+1)
		row = append(row, r.styles.Label.Width(labelWidth).Render(rl))
		for ci := range g.ColLabels {
			row = append(row, r.renderCell(g.Cells[ri][ci], marks[kmap.Coord{Row: ri, Col: ci}]))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Center, row...))
	}

	r.lastGrid, r.lastBorders = g, borders

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderCell draws one boxed cell, thickening the edges its group owns.
func (r *Renderer) renderCell(value string, m cellMark) string {
	if value == kmap.CellDontCare {
		value = r.marker
	}

	box := lipgloss.NormalBorder()
	if m.edges.Has(groups.Top) {
		box.Top = "━"
	}
	if m.edges.Has(groups.Bottom) {
		box.Bottom = "━"
	}
	if m.edges.Has(groups.Left) {
		box.Left = "┃"
	}
	if m.edges.Has(groups.Right) {
		box.Right = "┃"
	}

	border := r.styles.Grid
	if m.claimed {
		border = r.styles.Group[m.color%len(r.styles.Group)]
	}

	return r.styles.cell(value, r.marker).
		Border(box).
		BorderForeground(border).
		Width(cellWidth).
		Align(lipgloss.Center).
		Render(value)
}
