// Package geodesic computes single-source (or merged multi-start) shortest
// path distances over an arbitrary graph or a triangulated 3D surface mesh,
// and reconstructs minimal-cost paths to arbitrary targets.
//
// The pipeline is: raw position/connectivity tables → geom.Normalize →
// graph.Build → dijkstra.ShortestPaths → path.Reconstruct. This package is
// the external boundary over that pipeline: indices are 1-based here and
// converted internally, and each run returns a Report carrying the
// per-vertex distance records plus run metadata (run ID, origin used, start
// set, radius, vertex/edge counts, and any connectivity records dropped
// during normalization).
//
// A Report retains its internal distance table, so PathTo may be called any
// number of times against one computed table without re-running the search.
//
// Subpackages:
//
//   - geom     — input validation and canonicalization
//   - graph    — undirected weighted adjacency construction
//   - dijkstra — the priority-queue shortest-path engine
//   - path     — predecessor-chain path reconstruction
//
// A command-line front end lives under cmd/geodesic.
package geodesic
