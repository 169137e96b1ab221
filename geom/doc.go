// Package geom validates and canonicalizes raw vertex-position and
// connectivity input before a graph is built from it.
//
// Input arrives as two rectangular tables: vertex positions with 1–3 numeric
// columns, and connectivity records with 2 columns (graph edges) or 3 columns
// (mesh triangles). Normalize turns them into a single immutable form:
//
//   - positions are promoted to 3 coordinates, missing dimensions zero-filled;
//   - connectivity indices are shifted to 0-based using an index origin that
//     is either caller-supplied or inferred as the minimum raw index;
//   - records referencing vertices outside [0, N-1] after the shift are
//     dropped and recorded as warnings rather than failing the run;
//   - optional start vertices are shifted by the same origin and
//     range-checked strictly.
//
// Validation is fatal at this boundary: no downstream graph is built from
// input that fails shape, emptiness, or value checks.
//
// Errors (sentinel):
//
//   - ErrShape                — ragged table, or column count outside the
//     accepted widths ({1,2,3} for positions, {2,3} for connectivity).
//   - ErrEmptyInput           — zero vertices or zero connectivity records.
//   - ErrInvalidValue         — NaN/Inf coordinate, or a start vertex that is
//     missing or out of range after normalization.
//   - ErrNoValidConnectivity  — every connectivity record was dropped by the
//     range filter.
package geom
