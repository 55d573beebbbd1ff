// Package solver defines the wire contract between the map core and the
// external boolean minimizer, plus stale-response guarding for callers
// that fire requests faster than answers return.
//
// What:
//
//   - Request / Response / KMap mirror the collaborator's JSON payloads
//     exactly: variables joined as text, terms as decimal strings, and
//     the kmap object carrying cells, labels, groups and explanations.
//   - Solver is the single-method transport interface; Func adapts a
//     bare function. Transport itself (HTTP or otherwise) is the
//     caller's concern and deliberately absent here.
//   - Sequencer hands out monotonically increasing request tokens and
//     accepts only responses that are newer than anything already
//     applied, so out-of-order completions from rapid edits can never
//     overwrite fresher state.
//
// Why:
//
//   - Minimization is remote and asynchronous; everything else in veitch
//     is pure and synchronous. Keeping the boundary to a typed contract
//     plus a token guard means the geometry core never has to know about
//     cancellation, retries or timeouts.
//
// Errors:
//
//   - ErrUnavailable: the collaborator could not be reached at all.
//   - RemoteError: the collaborator answered with an error payload; the
//     message passes through opaque. Either way the caller renders an
//     empty state — no grid, no groups — rather than guessing.
package solver
