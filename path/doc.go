// Package path reconstructs shortest paths from a distance table.
//
// Reconstruct walks the predecessor links backward from a target vertex
// until it reaches a start vertex, then reverses the collected sequence,
// pairing each vertex with its cumulative distance from the start set. The
// table is never mutated and paths are never cached: each call recomputes
// the walk, so repeated calls against one table are independent and
// idempotent.
//
// An unreachable target is always a reported failure — the function never
// returns a partial or shortened path. A walk that fails to reach a start
// vertex within Order steps indicates a corrupted predecessor chain and is
// reported the same way; it cannot occur while the engine's settle
// invariant holds.
//
// Errors (sentinel):
//
//   - ErrNilResult   — nil distance table.
//   - ErrBadTarget   — target outside [0, Order).
//   - ErrUnreachable — target unreached, or malformed predecessor chain.
package path
