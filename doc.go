// Package veitch is a toolkit for Karnaugh-map geometry: parsing Σ/Π
// boolean-function notation, Gray-code cell placement, and group-border
// computation for 2–4 variable maps.
//
// 🚀 What is veitch?
//
//	A small library that brings together:
//		• notation/ — Σm(...)/ΠM(...) parsing into variable lists and minterm sets
//		• kmap/     — Gray-code coordinate mapping, axis labels and grid assembly
//		• groups/   — toroidal group-border computation and algebraic term derivation
//		• solver/   — the wire contract for an external minimizer, with stale-response guarding
//		• render/   — lipgloss terminal rendering of maps and group outlines
//
// ✨ Why choose veitch?
//
//   - Exact geometry – every grid-adjacent cell pair differs in exactly one bit,
//     wrap-around included
//   - Pure functions – grids and borders are recomputed from their inputs,
//     no hidden state between calls
//   - Honest errors – package-prefixed sentinels, errors.Is-friendly
//
// Quick ASCII example, F(a,b,c) = Σm(1,2,5):
//
//	   bc: 00  01  11  10
//	a=0  [ 0 ][ 1 ][ 0 ][ 1 ]
//	a=1  [ 0 ][ 1 ][ 0 ][ 0 ]
//
// The minimizer itself is an external collaborator: veitch turns its
// answers into geometry, it never decides groupings on its own.
//
//	go get github.com/katalvlaran/veitch
package veitch
