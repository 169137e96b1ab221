package graph

import (
	"math"

	"github.com/kervanta/geodesic/geom"
)

// Build converts normalized geometry into an undirected weighted adjacency.
// Triangles contribute their three boundary edges, edge records contribute
// one edge each; every weight is the Euclidean distance between the two
// endpoint positions. See the package documentation for dedup semantics.
//
// Complexity: O(N + M·deg) time, O(N + E) memory.
func Build(n *geom.Normalized) (*Adjacency, error) {
	if n == nil {
		return nil, ErrNilGeometry
	}

	adj, err := NewAdjacency(n.Order())
	if err != nil {
		return nil, err
	}

	for _, rec := range n.Records {
		switch len(rec) {
		case geom.FaceWidth:
			a, b, c := rec[0], rec[1], rec[2]
			if err = addEuclidean(adj, n, a, b); err != nil {
				return nil, err
			}
			if err = addEuclidean(adj, n, b, c); err != nil {
				return nil, err
			}
			if err = addEuclidean(adj, n, c, a); err != nil {
				return nil, err
			}
		default: // geom.EdgeWidth; other widths are rejected by Normalize
			if err = addEuclidean(adj, n, rec[0], rec[1]); err != nil {
				return nil, err
			}
		}
	}

	return adj, nil
}

// addEuclidean adds the edge u—v weighted by endpoint distance.
func addEuclidean(adj *Adjacency, n *geom.Normalized, u, v int) error {
	return adj.AddEdge(u, v, Distance(n.Positions[u], n.Positions[v]))
}

// Distance returns the Euclidean distance between two 3D points.
func Distance(p, q [3]float64) float64 {
	dx, dy, dz := p[0]-q[0], p[1]-q[1], p[2]-q[2]

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
