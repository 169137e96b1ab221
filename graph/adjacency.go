// Package graph declares the Adjacency arena and its low-level mutators.
package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors for adjacency construction.
var (
	// ErrBadOrder indicates a non-positive vertex count.
	ErrBadOrder = errors.New("graph: vertex count must be positive")

	// ErrVertexRange indicates an endpoint outside [0, order).
	ErrVertexRange = errors.New("graph: vertex index out of range")

	// ErrNegativeWeight indicates a negative edge weight.
	ErrNegativeWeight = errors.New("graph: negative edge weight")

	// ErrNilGeometry indicates a nil normalized-geometry input.
	ErrNilGeometry = errors.New("graph: normalized geometry is nil")
)

// Arc is one half of an undirected edge: the neighbor index and the weight.
type Arc struct {
	To     int
	Weight float64
}

// Adjacency maps each vertex index to its incident arcs. Undirected edges
// are stored as two mirrored arcs. The structure is an arena: the vertex
// count is fixed by NewAdjacency and only edges may be added.
type Adjacency struct {
	arcs  [][]Arc
	edges int // undirected pair count
}

// NewAdjacency allocates an adjacency for order vertices and no edges.
// Complexity: O(order).
func NewAdjacency(order int) (*Adjacency, error) {
	if order <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadOrder, order)
	}

	return &Adjacency{arcs: make([][]Arc, order)}, nil
}

// Order returns the vertex count.
func (a *Adjacency) Order() int { return len(a.arcs) }

// EdgeCount returns the number of distinct undirected edges.
func (a *Adjacency) EdgeCount() int { return a.edges }

// Neighbors returns the arcs incident to u. The returned slice is owned by
// the adjacency and must not be modified.
func (a *Adjacency) Neighbors(u int) []Arc { return a.arcs[u] }

// AddEdge records the undirected edge u—v with weight w. A duplicate pair
// keeps the minimum weight seen so far. Self-loops are ignored.
// Complexity: O(deg(u)) per call due to the duplicate scan.
func (a *Adjacency) AddEdge(u, v int, w float64) error {
	n := len(a.arcs)
	if u < 0 || u >= n || v < 0 || v >= n {
		return fmt.Errorf("%w: edge %d—%d with order %d", ErrVertexRange, u, v, n)
	}
	if w < 0 {
		return fmt.Errorf("%w: edge %d—%d weight=%g", ErrNegativeWeight, u, v, w)
	}
	if u == v {
		return nil
	}

	// Duplicate pair: take the minimum, updating both directions.
	for i, arc := range a.arcs[u] {
		if arc.To == v {
			if w < arc.Weight {
				a.arcs[u][i].Weight = w
				for j, back := range a.arcs[v] {
					if back.To == u {
						a.arcs[v][j].Weight = w
						break
					}
				}
			}

			return nil
		}
	}

	a.arcs[u] = append(a.arcs[u], Arc{To: v, Weight: w})
	a.arcs[v] = append(a.arcs[v], Arc{To: u, Weight: w})
	a.edges++

	return nil
}
