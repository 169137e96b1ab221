package path

import (
	"errors"
	"fmt"

	"github.com/kervanta/geodesic/dijkstra"
)

// Sentinel errors for path reconstruction.
var (
	// ErrNilResult indicates a nil distance table.
	ErrNilResult = errors.New("path: distance table is nil")

	// ErrBadTarget indicates a target vertex outside [0, Order).
	ErrBadTarget = errors.New("path: target vertex out of range")

	// ErrUnreachable indicates the target was not settled, or its
	// predecessor chain does not terminate at a start vertex.
	ErrUnreachable = errors.New("path: target not reachable from the start set")
)

// Step is one node of a reconstructed path: a vertex and the cumulative
// distance from the start set along the path up to that vertex.
type Step struct {
	Vertex int
	Dist   float64
}

// Reconstruct returns the start→target vertex sequence, inclusive on both
// ends. A target in the start set yields a single step at distance 0.
//
// Complexity: O(path length) time and memory.
func Reconstruct(res *dijkstra.Result, target int) ([]Step, error) {
	if res == nil {
		return nil, ErrNilResult
	}
	n := res.Order()
	if target < 0 || target >= n {
		return nil, fmt.Errorf("%w: vertex %d with order %d", ErrBadTarget, target, n)
	}
	if !res.Reached(target) {
		return nil, fmt.Errorf("%w: vertex %d", ErrUnreachable, target)
	}

	// Walk predecessor links backward; the guard bounds the walk at n steps
	// so a cyclic chain surfaces as an error instead of an endless loop.
	steps := make([]Step, 0, 8)
	v := target
	for hops := 0; ; hops++ {
		if hops >= n {
			return nil, fmt.Errorf("%w: predecessor chain exceeds %d vertices", ErrUnreachable, n)
		}
		d, _ := res.Dist(v)
		steps = append(steps, Step{Vertex: v, Dist: d})
		if res.IsSource(v) {
			break
		}
		p, ok := res.Predecessor(v)
		if !ok {
			return nil, fmt.Errorf("%w: vertex %d has no predecessor and is not a start vertex", ErrUnreachable, v)
		}
		v = p
	}

	// Reverse in place: the walk collected target→start.
	for l, r := 0, len(steps)-1; l < r; l, r = l+1, r-1 {
		steps[l], steps[r] = steps[r], steps[l]
	}

	return steps, nil
}
