// Package groups turns minimizer-provided groups of minterms into
// renderable border annotations, and derives each group's simplified
// algebraic term.
//
// What:
//
//   - Borders computes, for every cell a group occupies, which of its
//     four edges are group boundaries under toroidal adjacency. An edge
//     is a boundary exactly when the wrap-around neighbor on that side
//     is not occupied by the same group — this yields a closed outline
//     around any contiguous block, wrap-around blocks included, with no
//     geometric path construction.
//   - AlgebraicTerm reduces a group to its product (SOP) or sum (POS)
//     term by keeping the variables whose bit is constant across all
//     members.
//   - Explain produces a one-sentence teaching note per group.
//
// Why:
//
//   - Prime-implicant discovery belongs to an external minimizer; this
//     package only maps its answers to geometry and algebra. Groups are
//     therefore taken on faith: a non-rectangular group still renders
//     every true external edge, it is never validated or repaired here.
//     Overlapping groups are expected and each contributes its own
//     marks.
//
// Colors:
//
//   - Palette is a fixed ordered list; group i gets Palette[i mod len].
//
// Errors:
//
//   - kmap.ErrVariableCount / kmap.ErrTermRange, surfaced unchanged from
//     coordinate mapping.
//
// Complexity: Borders is O(Σ|group|) time and memory.
package groups
