package geodesic

import (
	"context"
	"math"

	"github.com/google/uuid"

	"github.com/kervanta/geodesic/dijkstra"
	"github.com/kervanta/geodesic/geom"
	"github.com/kervanta/geodesic/graph"
	"github.com/kervanta/geodesic/path"
)

// RunConfig configures one Distances run.
//
// Starts is required and uses the same index origin as the connectivity
// table. IndexOrigin overrides origin inference when non-nil. MaxDistance
// bounds the search radius when positive and finite; zero (the zero value)
// or any other value leaves the search unbounded. Ctx enables cooperative
// cancellation and may be nil.
type RunConfig struct {
	Starts      []int
	IndexOrigin *int
	MaxDistance float64
	Ctx         context.Context
}

// Record is the per-vertex output row of a run. Vertex and Predecessor are
// 1-indexed; Predecessor is 0 for start vertices and for unreached vertices.
// Distance is meaningful only when Reached is true.
type Record struct {
	Vertex      int
	Predecessor int
	Distance    float64
	Reached     bool
}

// RunMeta describes how a run was performed.
type RunMeta struct {
	RunID       string
	Starts      []int // normalized, reported 1-indexed
	OriginUsed  int
	MaxDistance float64 // +Inf when unbounded
	Vertices    int
	Edges       int
	Dropped     []geom.DroppedRecord
}

// Report is the outcome of one Distances run: one Record per vertex plus
// run metadata. It retains the internal distance table for PathTo.
type Report struct {
	Records []Record
	Meta    RunMeta

	result *dijkstra.Result
}

// PathNode is one node of a reconstructed path at the boundary: a 1-indexed
// vertex and the cumulative distance from the start set.
type PathNode struct {
	Vertex   int
	Distance float64
}

// Distances normalizes the raw tables, builds the weighted adjacency, and
// runs the shortest-path search, returning the full distance report.
//
// Errors surface from the stage that detects them: geom sentinel errors for
// invalid input, graph errors for adjacency construction, dijkstra errors
// for the search itself. No partial report is ever returned.
func Distances(positions [][]float64, connectivity [][]int, cfg RunConfig) (*Report, error) {
	opts := []geom.Option{geom.WithStartVertices(cfg.Starts)}
	if cfg.IndexOrigin != nil {
		opts = append(opts, geom.WithIndexOrigin(*cfg.IndexOrigin))
	}

	norm, err := geom.Normalize(positions, connectivity, opts...)
	if err != nil {
		return nil, err
	}

	adj, err := graph.Build(norm)
	if err != nil {
		return nil, err
	}

	radius := math.Inf(1)
	var searchOpts []dijkstra.Option
	if cfg.MaxDistance > 0 && !math.IsInf(cfg.MaxDistance, 0) {
		radius = cfg.MaxDistance
		searchOpts = append(searchOpts, dijkstra.WithMaxDistance(radius))
	}

	res, err := dijkstra.ShortestPaths(cfg.Ctx, adj, norm.Starts, searchOpts...)
	if err != nil {
		return nil, err
	}

	records := make([]Record, res.Order())
	for v := range records {
		rec := Record{Vertex: v + 1}
		if d, ok := res.Dist(v); ok {
			rec.Distance = d
			rec.Reached = true
		}
		if p, ok := res.Predecessor(v); ok {
			rec.Predecessor = p + 1
		}
		records[v] = rec
	}

	starts := make([]int, len(norm.Starts))
	for i, s := range norm.Starts {
		starts[i] = s + 1
	}

	return &Report{
		Records: records,
		Meta: RunMeta{
			RunID:       uuid.NewString(),
			Starts:      starts,
			OriginUsed:  norm.OriginUsed,
			MaxDistance: radius,
			Vertices:    adj.Order(),
			Edges:       adj.EdgeCount(),
			Dropped:     norm.Dropped,
		},
		result: res,
	}, nil
}

// PathTo reconstructs the start→target path from a previously computed
// report. The target is 1-indexed; path.ErrBadTarget and
// path.ErrUnreachable surface unchanged.
func PathTo(rep *Report, target int) ([]PathNode, error) {
	if rep == nil {
		return nil, path.ErrNilResult
	}

	steps, err := path.Reconstruct(rep.result, target-1)
	if err != nil {
		return nil, err
	}

	nodes := make([]PathNode, len(steps))
	for i, s := range steps {
		nodes[i] = PathNode{Vertex: s.Vertex + 1, Distance: s.Dist}
	}

	return nodes, nil
}
