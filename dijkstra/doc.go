// Package dijkstra implements a multi-source Dijkstra shortest-path search
// over an index-arena adjacency with non-negative float weights.
//
// Overview:
//
//   - ShortestPaths settles every vertex reachable from the start set in
//     non-decreasing distance order, using a min-heap priority queue with
//     the lazy decrease-key strategy: improved distances push duplicate
//     entries, stale entries are skipped on pop.
//   - All start vertices are seeded at distance 0 with no predecessor, so a
//     multi-vertex start set behaves as a single merged source.
//   - WithMaxDistance bounds exploration: a candidate distance is accepted
//     only while cand <= max, so a vertex lying exactly at the radius is
//     still settled. Non-positive or non-finite values leave the search
//     unbounded, with the exception of 0, which is a valid (degenerate)
//     radius that settles only the start set.
//   - Cancellation is cooperative: the context is checked at every heap pop
//     and the search aborts with the context's error.
//
// The result is a tagged per-vertex table: each entry is either Settled,
// carrying a final distance and an optional predecessor, or Unreached. No
// infinity sentinel leaks into the public surface; accessors return
// (value, ok) pairs instead.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) — O(V) for the result arena, O(E) worst-case heap
//     entries under lazy decrease-key.
//
// Errors (sentinel):
//
//   - ErrNilAdjacency      — nil adjacency.
//   - ErrNoSource          — empty start-vertex list.
//   - ErrSourceOutOfRange  — a start vertex outside [0, order).
//   - ErrNegativeWeight    — a negative edge weight detected by the O(E)
//     pre-scan (Euclidean builds cannot produce one, hand-built arenas can).
package dijkstra
