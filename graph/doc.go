// Package graph builds an undirected weighted adjacency structure from
// normalized geometry.
//
// A 3-column connectivity record (a,b,c) contributes the three undirected
// edges (a,b), (b,c), (c,a); a 2-column record contributes a single edge.
// Each edge is weighted by the Euclidean distance between its endpoint
// positions. Duplicate unordered pairs — shared triangle edges, or repeated
// edge-list rows — collapse to the minimum observed weight, never a sum.
// Self-loops produced by degenerate records are skipped. Isolated vertices
// are retained with empty neighbor lists.
//
// The adjacency is an index arena: vertex count is fixed at construction and
// neighbors are stored as (index, weight) arcs in both directions. Once
// built it is never mutated by searches, so it may be shared read-only
// across concurrent shortest-path runs.
package graph
