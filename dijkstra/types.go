// Package dijkstra defines the options, sentinel errors, and the tagged
// result table produced by the shortest-path search.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by ShortestPaths.
var (
	// ErrNilAdjacency indicates a nil *graph.Adjacency was supplied.
	ErrNilAdjacency = errors.New("dijkstra: adjacency is nil")

	// ErrNoSource indicates an empty start-vertex list.
	ErrNoSource = errors.New("dijkstra: at least one start vertex is required")

	// ErrSourceOutOfRange indicates a start vertex outside [0, order).
	ErrSourceOutOfRange = errors.New("dijkstra: start vertex out of range")

	// ErrNegativeWeight indicates a negative edge weight in the adjacency.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// State tags a result entry: a vertex is either settled with a final
// distance, or was never reached within the configured radius.
type State uint8

const (
	// Unreached marks a vertex with no finalized distance.
	Unreached State = iota

	// Settled marks a vertex whose minimal distance is final.
	Settled
)

// noPredecessor marks a settled vertex with no incoming shortest-path arc,
// i.e. a start vertex.
const noPredecessor = -1

// entry is one tagged record of the distance table.
type entry struct {
	dist  float64
	pred  int
	state State
}

// Result is the immutable distance table of one search: for every vertex,
// the minimal distance from the start set and the predecessor on one
// shortest path, or the Unreached tag. The predecessor links form a tree
// rooted at the start set, encoded as indices into the same arena.
type Result struct {
	entries []entry
	sources []int
	settled []int // vertices in settle order
}

// Order returns the vertex count of the table.
func (r *Result) Order() int { return len(r.entries) }

// Reached reports whether v was settled.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.entries) && r.entries[v].state == Settled
}

// Dist returns the final distance of v and whether v was settled.
func (r *Result) Dist(v int) (float64, bool) {
	if !r.Reached(v) {
		return 0, false
	}

	return r.entries[v].dist, true
}

// Predecessor returns the predecessor of v on one shortest path. The second
// return is false for unreached vertices and for start vertices, which have
// no predecessor.
func (r *Result) Predecessor(v int) (int, bool) {
	if !r.Reached(v) || r.entries[v].pred == noPredecessor {
		return 0, false
	}

	return r.entries[v].pred, true
}

// IsSource reports whether v belongs to the start set of this search.
func (r *Result) IsSource(v int) bool {
	if !r.Reached(v) {
		return false
	}

	return r.entries[v].pred == noPredecessor
}

// Sources returns a copy of the start-vertex set used by the search.
func (r *Result) Sources() []int {
	out := make([]int, len(r.sources))
	copy(out, r.sources)

	return out
}

// SettleOrder returns a copy of the vertices in the order they were settled.
// The sequence is non-decreasing in distance; tests rely on this invariant.
func (r *Result) SettleOrder() []int {
	out := make([]int, len(r.settled))
	copy(out, r.settled)

	return out
}

// Options configures the shortest-path search.
//
// MaxDistance — radius bounding the search; candidates above it are not
// relaxed. Zero is a valid radius (only the start set settles). Negative or
// non-finite values mean unbounded.
type Options struct {
	MaxDistance float64
}

// Option represents a functional option for configuring ShortestPaths.
type Option func(*Options)

// WithMaxDistance bounds the search radius. A vertex whose distance equals
// max exactly is still settled. Negative, NaN, or infinite values disable
// the bound.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) || math.IsInf(max, 0) {
			o.MaxDistance = math.Inf(1)

			return
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns the unbounded search configuration.
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}
