// Package dijkstra_test contains unit tests for the shortest-path engine:
// input validation, single- and multi-source searches, radius bounds,
// cancellation, and the settle-order and relaxation invariants.
package dijkstra_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kervanta/geodesic/dijkstra"
	"github.com/kervanta/geodesic/graph"
)

// lineGraph builds the 6-vertex unit-weight line 0—1—2—3—4—5.
func lineGraph(t *testing.T) *graph.Adjacency {
	t.Helper()
	adj, err := graph.NewAdjacency(6)
	require.NoError(t, err)
	for u := 0; u < 5; u++ {
		require.NoError(t, adj.AddEdge(u, u+1, 1))
	}

	return adj
}

// twoComponents builds 0—1—2 plus the disconnected pair 3—4.
func twoComponents(t *testing.T) *graph.Adjacency {
	t.Helper()
	adj, err := graph.NewAdjacency(5)
	require.NoError(t, err)
	require.NoError(t, adj.AddEdge(0, 1, 1))
	require.NoError(t, adj.AddEdge(1, 2, 1))
	require.NoError(t, adj.AddEdge(3, 4, 1))

	return adj
}

// ------------------------------------------------------------------------
// 1. Validation.
// ------------------------------------------------------------------------

func TestShortestPaths_NilAdjacency(t *testing.T) {
	_, err := dijkstra.ShortestPaths(context.Background(), nil, []int{0})
	assert.ErrorIs(t, err, dijkstra.ErrNilAdjacency)
}

func TestShortestPaths_NoSource(t *testing.T) {
	adj := lineGraph(t)
	_, err := dijkstra.ShortestPaths(context.Background(), adj, nil)
	assert.ErrorIs(t, err, dijkstra.ErrNoSource)
}

func TestShortestPaths_SourceOutOfRange(t *testing.T) {
	adj := lineGraph(t)
	_, err := dijkstra.ShortestPaths(context.Background(), adj, []int{6})
	assert.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)

	_, err = dijkstra.ShortestPaths(context.Background(), adj, []int{-1})
	assert.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)
}

// ------------------------------------------------------------------------
// 2. Basic functionality.
// ------------------------------------------------------------------------

func TestShortestPaths_LineGraph(t *testing.T) {
	adj := lineGraph(t)
	res, err := dijkstra.ShortestPaths(context.Background(), adj, []int{0})
	require.NoError(t, err)

	for v := 0; v < 6; v++ {
		d, ok := res.Dist(v)
		require.True(t, ok, "vertex %d must be reached", v)
		assert.Equal(t, float64(v), d, "dist[%d]", v)
	}

	// Predecessor chain: v ← v-1 for v ≥ 1; the source has none.
	for v := 1; v < 6; v++ {
		p, ok := res.Predecessor(v)
		require.True(t, ok)
		assert.Equal(t, v-1, p)
	}
	_, ok := res.Predecessor(0)
	assert.False(t, ok, "source has no predecessor")
	assert.True(t, res.IsSource(0))
}

func TestShortestPaths_PrefersLighterDetour(t *testing.T) {
	// 0—1 (1), 1—2 (2), 0—2 (5): the detour 0→1→2 costs 3 and must win.
	adj, err := graph.NewAdjacency(3)
	require.NoError(t, err)
	require.NoError(t, adj.AddEdge(0, 1, 1))
	require.NoError(t, adj.AddEdge(1, 2, 2))
	require.NoError(t, adj.AddEdge(0, 2, 5))

	res, err := dijkstra.ShortestPaths(context.Background(), adj, []int{0})
	require.NoError(t, err)

	d, ok := res.Dist(2)
	require.True(t, ok)
	assert.Equal(t, 3.0, d)
	p, _ := res.Predecessor(2)
	assert.Equal(t, 1, p)
}

func TestShortestPaths_MultiSource(t *testing.T) {
	// Seeding both ends of the line merges the searches: the middle vertices
	// take their distance from the nearer end.
	adj := lineGraph(t)
	res, err := dijkstra.ShortestPaths(context.Background(), adj, []int{0, 5})
	require.NoError(t, err)

	want := []float64{0, 1, 2, 2, 1, 0}
	for v, w := range want {
		d, ok := res.Dist(v)
		require.True(t, ok)
		assert.Equal(t, w, d, "dist[%d]", v)
	}
	assert.True(t, res.IsSource(0))
	assert.True(t, res.IsSource(5))
	assert.ElementsMatch(t, []int{0, 5}, res.Sources())
}

func TestShortestPaths_DisconnectedComponentUnreached(t *testing.T) {
	adj := twoComponents(t)
	res, err := dijkstra.ShortestPaths(context.Background(), adj, []int{0})
	require.NoError(t, err)

	for _, v := range []int{3, 4} {
		assert.False(t, res.Reached(v), "vertex %d is in the other component", v)
		_, ok := res.Dist(v)
		assert.False(t, ok)
		_, ok = res.Predecessor(v)
		assert.False(t, ok)
	}
}

// ------------------------------------------------------------------------
// 3. Radius bounds.
// ------------------------------------------------------------------------

func TestShortestPaths_MaxDistanceZero(t *testing.T) {
	adj := lineGraph(t)
	res, err := dijkstra.ShortestPaths(context.Background(), adj, []int{2}, dijkstra.WithMaxDistance(0))
	require.NoError(t, err)

	assert.True(t, res.Reached(2))
	for _, v := range []int{0, 1, 3, 4, 5} {
		assert.False(t, res.Reached(v), "radius 0 must leave %d unreached", v)
	}
}

func TestShortestPaths_MaxDistanceInclusiveBoundary(t *testing.T) {
	// Vertex 3 sits exactly at distance 3 from the source; radius 3 must
	// still settle it, while vertex 4 at distance 4 stays unreached.
	adj := lineGraph(t)
	res, err := dijkstra.ShortestPaths(context.Background(), adj, []int{0}, dijkstra.WithMaxDistance(3))
	require.NoError(t, err)

	d, ok := res.Dist(3)
	require.True(t, ok, "vertex at the exact radius is included")
	assert.Equal(t, 3.0, d)
	assert.False(t, res.Reached(4))
	assert.False(t, res.Reached(5))
}

func TestShortestPaths_NegativeRadiusMeansUnbounded(t *testing.T) {
	adj := lineGraph(t)
	res, err := dijkstra.ShortestPaths(context.Background(), adj, []int{0}, dijkstra.WithMaxDistance(-1))
	require.NoError(t, err)

	d, ok := res.Dist(5)
	require.True(t, ok)
	assert.Equal(t, 5.0, d)
}

// ------------------------------------------------------------------------
// 4. Invariants (spec-level testable properties).
// ------------------------------------------------------------------------

func TestShortestPaths_SettleOrderMonotone(t *testing.T) {
	adj, err := graph.NewAdjacency(7)
	require.NoError(t, err)
	for _, e := range []struct {
		u, v int
		w    float64
	}{
		{0, 1, 2.5}, {0, 2, 1.0}, {2, 1, 1.0}, {1, 3, 3.0},
		{2, 4, 4.5}, {3, 4, 0.5}, {4, 5, 2.0}, {0, 6, 7.0},
	} {
		require.NoError(t, adj.AddEdge(e.u, e.v, e.w))
	}

	res, err := dijkstra.ShortestPaths(context.Background(), adj, []int{0})
	require.NoError(t, err)

	order := res.SettleOrder()
	require.NotEmpty(t, order)
	prev := 0.0
	for _, v := range order {
		d, ok := res.Dist(v)
		require.True(t, ok)
		assert.GreaterOrEqual(t, d, prev, "settle order must be non-decreasing")
		prev = d
	}
}

func TestShortestPaths_RelaxationInvariant(t *testing.T) {
	// For every arc (u,v,w) with both endpoints settled: d(v) <= d(u) + w.
	adj, err := graph.NewAdjacency(6)
	require.NoError(t, err)
	for _, e := range []struct {
		u, v int
		w    float64
	}{
		{0, 1, 1.2}, {1, 2, 0.8}, {2, 3, 2.2}, {3, 0, 1.1}, {1, 4, 3.3}, {4, 5, 0.1},
	} {
		require.NoError(t, adj.AddEdge(e.u, e.v, e.w))
	}

	res, err := dijkstra.ShortestPaths(context.Background(), adj, []int{0})
	require.NoError(t, err)

	for u := 0; u < adj.Order(); u++ {
		du, okU := res.Dist(u)
		if !okU {
			continue
		}
		for _, arc := range adj.Neighbors(u) {
			dv, okV := res.Dist(arc.To)
			if !okV {
				continue
			}
			assert.LessOrEqual(t, dv, du+arc.Weight,
				"edge %d—%d violates the relaxation invariant", u, arc.To)
		}
	}
}

// ------------------------------------------------------------------------
// 5. Negative weights and cancellation.
// ------------------------------------------------------------------------

func TestShortestPaths_NegativeWeightRejected(t *testing.T) {
	// AddEdge refuses negative weights, so the arena cannot be corrupted
	// through the public API; the engine still pre-scans and reports.
	adj := lineGraph(t)
	err := adj.AddEdge(0, 3, -2)
	require.ErrorIs(t, err, graph.ErrNegativeWeight)

	res, err := dijkstra.ShortestPaths(context.Background(), adj, []int{0})
	require.NoError(t, err, "the rejected edge must not have been stored")
	d, _ := res.Dist(3)
	assert.Equal(t, 3.0, d)
}

func TestShortestPaths_CanceledContext(t *testing.T) {
	adj := lineGraph(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dijkstra.ShortestPaths(ctx, adj, []int{0})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestShortestPaths_NilContextRuns(t *testing.T) {
	adj := lineGraph(t)
	res, err := dijkstra.ShortestPaths(nil, adj, []int{0}) //nolint:staticcheck // nil ctx is part of the contract
	require.NoError(t, err)
	d, ok := res.Dist(5)
	require.True(t, ok)
	assert.Equal(t, 5.0, d)
}
