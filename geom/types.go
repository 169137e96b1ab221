// Package geom defines the normalized-geometry types, options, and sentinel
// errors shared by the normalization entry point.
package geom

import "errors"

// Sentinel errors for geometry normalization.
var (
	// ErrShape indicates a ragged input table or an unsupported column count.
	ErrShape = errors.New("geom: input table has invalid shape")

	// ErrEmptyInput indicates an empty vertex set or empty connectivity set.
	ErrEmptyInput = errors.New("geom: positions and connectivity must be non-empty")

	// ErrInvalidValue indicates a NaN/Inf coordinate or an invalid start vertex.
	ErrInvalidValue = errors.New("geom: invalid coordinate or vertex value")

	// ErrNoValidConnectivity indicates that every connectivity record was
	// dropped by the index-range filter.
	ErrNoValidConnectivity = errors.New("geom: no valid connectivity records remain")
)

// Connectivity record widths accepted by Normalize.
const (
	// EdgeWidth marks a 2-column record: one undirected graph edge.
	EdgeWidth = 2

	// FaceWidth marks a 3-column record: one mesh triangle, implying three
	// undirected edges.
	FaceWidth = 3
)

// DroppedRecord describes one connectivity record removed by the range
// filter. Row is the position of the record in the raw input, before origin
// normalization.
type DroppedRecord struct {
	Row    int
	Reason string
}

// Normalized is the canonical form of one geometry input. It is immutable
// once returned by Normalize: positions are 3D, connectivity indices are
// 0-based and in range, and Starts (if any were supplied) are validated.
type Normalized struct {
	// Positions holds one 3D point per vertex; widths 1 and 2 are zero-padded.
	Positions [][3]float64

	// Records holds the surviving connectivity records, 0-based.
	// Every record has Width entries.
	Records [][]int

	// Width is the connectivity width: EdgeWidth or FaceWidth.
	Width int

	// OriginUsed is the index origin subtracted from all raw indices.
	OriginUsed int

	// Starts holds the normalized start vertices, or nil if none were given.
	Starts []int

	// Dropped records the out-of-range connectivity records removed by the
	// range filter, in input order.
	Dropped []DroppedRecord
}

// Order returns the number of vertices.
func (n *Normalized) Order() int { return len(n.Positions) }

// options collects the optional inputs to Normalize.
type options struct {
	origin    int
	hasOrigin bool
	starts    []int
	hasStarts bool
}

// Option configures Normalize.
type Option func(*options)

// WithIndexOrigin supplies the index origin explicitly instead of inferring
// it from the minimum raw connectivity index.
func WithIndexOrigin(origin int) Option {
	return func(o *options) {
		o.origin = origin
		o.hasOrigin = true
	}
}

// WithStartVertices supplies raw start vertices using the same index origin
// as the connectivity table. They are normalized and strictly range-checked;
// an empty list is rejected with ErrInvalidValue.
func WithStartVertices(starts []int) Option {
	return func(o *options) {
		o.starts = starts
		o.hasStarts = true
	}
}
