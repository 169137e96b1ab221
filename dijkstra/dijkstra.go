package dijkstra

import (
	"container/heap"
	"context"
	"fmt"
	"math"

	"github.com/kervanta/geodesic/graph"
)

// ShortestPaths computes minimal distances from the start set to every
// vertex reachable within the configured radius.
//
// Preconditions and validation (in order):
//  1. adj must be non-nil (ErrNilAdjacency).
//  2. sources must be non-empty (ErrNoSource).
//  3. Every source must lie in [0, adj.Order()) (ErrSourceOutOfRange).
//  4. No arc may carry a negative weight (ErrNegativeWeight, O(E) pre-scan).
//
// The context is checked at each heap pop; a canceled context aborts the
// search and returns ctx.Err(). A nil context is treated as background.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func ShortestPaths(ctx context.Context, adj *graph.Adjacency, sources []int, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// 1) Validate inputs.
	if adj == nil {
		return nil, ErrNilAdjacency
	}
	if len(sources) == 0 {
		return nil, ErrNoSource
	}
	n := adj.Order()
	for _, s := range sources {
		if s < 0 || s >= n {
			return nil, fmt.Errorf("%w: vertex %d with order %d", ErrSourceOutOfRange, s, n)
		}
	}

	// 2) Pre-scan arcs to fail fast on negative weights.
	for u := 0; u < n; u++ {
		for _, arc := range adj.Neighbors(u) {
			if arc.Weight < 0 {
				return nil, fmt.Errorf("%w: edge %d—%d weight=%g", ErrNegativeWeight, u, arc.To, arc.Weight)
			}
		}
	}

	// 3) Initialize the runner and execute the search.
	r := &runner{
		adj:     adj,
		maxDist: cfg.MaxDistance,
		dist:    make([]float64, n),
		pred:    make([]int, n),
		result: &Result{
			entries: make([]entry, n),
			sources: append([]int(nil), sources...),
		},
		pq: make(itemHeap, 0, n),
	}
	r.init(sources)
	if err := r.process(ctx); err != nil {
		return nil, err
	}

	return r.result, nil
}

// runner holds the mutable state of a single search. dist and pred are the
// tentative arrays; settled values are frozen into result entries.
type runner struct {
	adj     *graph.Adjacency
	maxDist float64
	dist    []float64
	pred    []int
	result  *Result
	pq      itemHeap
}

// init seeds tentative state and pushes every start vertex at distance 0.
func (r *runner) init(sources []int) {
	for v := range r.dist {
		r.dist[v] = math.Inf(1)
		r.pred[v] = noPredecessor
	}
	heap.Init(&r.pq)
	for _, s := range sources {
		r.dist[s] = 0
		heap.Push(&r.pq, item{vertex: s, dist: 0})
	}
}

// process runs the main loop: pop the closest frontier vertex, skip stale
// entries, settle, relax. Each vertex settles exactly once, in
// non-decreasing distance order.
func (r *runner) process(ctx context.Context) error {
	for r.pq.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		it := heap.Pop(&r.pq).(item)
		u := it.vertex
		if r.result.entries[u].state == Settled {
			continue // stale lazy-decrease-key entry
		}

		r.result.entries[u] = entry{dist: it.dist, pred: r.pred[u], state: Settled}
		r.result.settled = append(r.result.settled, u)
		r.relax(u, it.dist)
	}

	return nil
}

// relax attempts to improve each neighbor of the freshly settled vertex u.
// Candidates beyond the radius are not pushed; equality with the radius is
// accepted, so the boundary is inclusive.
func (r *runner) relax(u int, du float64) {
	for _, arc := range r.adj.Neighbors(u) {
		v := arc.To
		if r.result.entries[v].state == Settled {
			continue
		}
		cand := du + arc.Weight
		if cand > r.maxDist {
			continue
		}
		if cand < r.dist[v] {
			r.dist[v] = cand
			r.pred[v] = u
			heap.Push(&r.pq, item{vertex: v, dist: cand})
		}
	}
}

// item is one frontier candidate: a vertex and its tentative distance.
type item struct {
	vertex int
	dist   float64
}

// itemHeap is a min-heap of frontier candidates ordered by distance.
// Stale duplicates from the lazy decrease-key strategy are filtered on pop.
type itemHeap []item

func (h itemHeap) Len() int            { return len(h) }
func (h itemHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h itemHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *itemHeap) Push(x interface{}) { *h = append(*h, x.(item)) }

func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}
