package geom

import (
	"fmt"
	"math"
)

// Normalize validates the raw position and connectivity tables and produces
// their canonical form. See the package documentation for the full contract.
//
// Validation order:
//  1. Emptiness of either table (ErrEmptyInput).
//  2. Rectangularity and column widths (ErrShape).
//  3. Coordinate finiteness (ErrInvalidValue).
//  4. Origin resolution: caller-supplied, else minimum raw index.
//  5. Origin subtraction and range filtering; dropped records are recorded,
//     an empty survivor set fails with ErrNoValidConnectivity.
//  6. Start-vertex normalization and strict range checks (ErrInvalidValue).
//
// Complexity: O(N + M·w) time, O(N + M·w) memory, where N = vertices,
// M = connectivity records, w = connectivity width.
func Normalize(positions [][]float64, connectivity [][]int, opts ...Option) (*Normalized, error) {
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Emptiness.
	if len(positions) == 0 || len(connectivity) == 0 {
		return nil, ErrEmptyInput
	}

	// 2) Position shape: uniform width in {1,2,3}.
	posWidth := len(positions[0])
	if posWidth < 1 || posWidth > 3 {
		return nil, fmt.Errorf("%w: position width %d, want 1..3", ErrShape, posWidth)
	}
	for i, row := range positions {
		if len(row) != posWidth {
			return nil, fmt.Errorf("%w: position row %d has %d columns, want %d", ErrShape, i, len(row), posWidth)
		}
	}

	//    Connectivity shape: uniform width in {2,3}.
	connWidth := len(connectivity[0])
	if connWidth != EdgeWidth && connWidth != FaceWidth {
		return nil, fmt.Errorf("%w: connectivity width %d, want 2 or 3", ErrShape, connWidth)
	}
	for i, rec := range connectivity {
		if len(rec) != connWidth {
			return nil, fmt.Errorf("%w: connectivity row %d has %d columns, want %d", ErrShape, i, len(rec), connWidth)
		}
	}

	// 3) Coordinates must be finite; pad to 3D while copying.
	pts := make([][3]float64, len(positions))
	for i, row := range positions {
		for j, c := range row {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return nil, fmt.Errorf("%w: position[%d][%d] is not finite", ErrInvalidValue, i, j)
			}
			pts[i][j] = c
		}
	}

	// 4) Resolve the index origin.
	origin := cfg.origin
	if !cfg.hasOrigin {
		origin = connectivity[0][0]
		for _, rec := range connectivity {
			for _, idx := range rec {
				if idx < origin {
					origin = idx
				}
			}
		}
	}

	// 5) Shift to 0-based and filter out-of-range records.
	n := len(pts)
	records := make([][]int, 0, len(connectivity))
	var dropped []DroppedRecord
	for i, rec := range connectivity {
		shifted := make([]int, connWidth)
		ok := true
		for j, idx := range rec {
			shifted[j] = idx - origin
			if shifted[j] < 0 || shifted[j] >= n {
				dropped = append(dropped, DroppedRecord{
					Row:    i,
					Reason: fmt.Sprintf("index %d out of range [0,%d] after origin %d", shifted[j], n-1, origin),
				})
				ok = false
				break
			}
		}
		if ok {
			records = append(records, shifted)
		}
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: all %d records dropped", ErrNoValidConnectivity, len(connectivity))
	}

	// 6) Normalize start vertices, if supplied.
	var starts []int
	if cfg.hasStarts {
		if len(cfg.starts) == 0 {
			return nil, fmt.Errorf("%w: start vertex list is empty", ErrInvalidValue)
		}
		starts = make([]int, len(cfg.starts))
		for i, s := range cfg.starts {
			starts[i] = s - origin
			if starts[i] < 0 || starts[i] >= n {
				return nil, fmt.Errorf("%w: start vertex %d out of range [0,%d] after origin %d", ErrInvalidValue, starts[i], n-1, origin)
			}
		}
	}

	return &Normalized{
		Positions:  pts,
		Records:    records,
		Width:      connWidth,
		OriginUsed: origin,
		Starts:     starts,
		Dropped:    dropped,
	}, nil
}
