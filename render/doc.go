// Package render draws assembled Karnaugh maps and their group outlines
// on a terminal.
//
// What:
//
//   - Renderer.Map draws the cell matrix with Gray-ordered axis labels;
//     group boundary edges are drawn thick and in the group's palette
//     color, open (in-group) edges stay thin.
//   - Renderer.Summary tabulates the groups: member cells, the derived
//     algebraic term, and the teaching explanation.
//   - The Renderer owns the last-rendered grid/borders pair — the only
//     state in the whole system — so a caller can re-draw or diff
//     without recomputing.
//
// Why:
//
//   - The geometry core stays pure; presentation concerns (colors,
//     don't-care marker, box glyphs) all live here. Styling goes through
//     lipgloss and degrades to plain glyphs when color is disabled.
//
// A cell claimed by several overlapping groups keeps every group's
// boundary edges; the box is tinted with the first claiming group's
// color, since a single box has one color on a terminal.
package render
