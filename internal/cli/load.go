package cli

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrBadInput indicates an input file the loaders could not parse.
var ErrBadInput = errors.New("cli: malformed input file")

// loadOBJ parses a Wavefront OBJ stream into raw position and face tables.
// Only "v" and "f" records are consumed; face indices are kept 1-based as
// written, so origin inference in the normalizer resolves them. Faces must
// be triangles; "a/b/c" style vertex references use the leading index.
func loadOBJ(r io.Reader) (positions [][]float64, faces [][]int, err error) {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		t := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(t, "v "):
			fields := strings.Fields(t)[1:]
			if len(fields) < 3 {
				return nil, nil, fmt.Errorf("%w: line %d: vertex needs 3 coordinates", ErrBadInput, line)
			}
			row := make([]float64, 3)
			for i := 0; i < 3; i++ {
				row[i], err = strconv.ParseFloat(fields[i], 64)
				if err != nil {
					return nil, nil, fmt.Errorf("%w: line %d: %v", ErrBadInput, line, err)
				}
			}
			positions = append(positions, row)
		case strings.HasPrefix(t, "f "):
			fields := strings.Fields(t)[1:]
			if len(fields) != 3 {
				return nil, nil, fmt.Errorf("%w: line %d: only triangular faces are supported", ErrBadInput, line)
			}
			face := make([]int, 3)
			for i, f := range fields {
				// Vertex references may carry /texture/normal suffixes.
				idx := strings.SplitN(f, "/", 2)[0]
				face[i], err = strconv.Atoi(idx)
				if err != nil {
					return nil, nil, fmt.Errorf("%w: line %d: %v", ErrBadInput, line, err)
				}
			}
			faces = append(faces, face)
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, nil, err
	}

	return positions, faces, nil
}

// loadPositionsCSV parses a headerless CSV of 1–3 numeric columns per row.
func loadPositionsCSV(r io.Reader) ([][]float64, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadInput, err)
	}
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = make([]float64, len(row))
		for j, cell := range row {
			out[i][j], err = strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: %v", ErrBadInput, i+1, err)
			}
		}
	}

	return out, nil
}

// loadConnectivityCSV parses a headerless CSV of 2 or 3 integer columns.
func loadConnectivityCSV(r io.Reader) ([][]int, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadInput, err)
	}
	out := make([][]int, len(rows))
	for i, row := range rows {
		out[i] = make([]int, len(row))
		for j, cell := range row {
			out[i][j], err = strconv.Atoi(strings.TrimSpace(cell))
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: %v", ErrBadInput, i+1, err)
			}
		}
	}

	return out, nil
}

// inputFlags are the shared geometry-source flags of dist and path.
type inputFlags struct {
	obj          string
	positions    string
	connectivity string
}

// loadGeometry reads the raw tables from either an OBJ file or the CSV pair.
func loadGeometry(f inputFlags) ([][]float64, [][]int, error) {
	if f.obj != "" {
		file, err := os.Open(f.obj)
		if err != nil {
			return nil, nil, err
		}
		defer file.Close()

		return loadOBJ(file)
	}
	if f.positions == "" || f.connectivity == "" {
		return nil, nil, fmt.Errorf("%w: provide --obj, or both --positions and --connectivity", ErrBadInput)
	}

	pf, err := os.Open(f.positions)
	if err != nil {
		return nil, nil, err
	}
	defer pf.Close()
	positions, err := loadPositionsCSV(pf)
	if err != nil {
		return nil, nil, err
	}

	cf, err := os.Open(f.connectivity)
	if err != nil {
		return nil, nil, err
	}
	defer cf.Close()
	connectivity, err := loadConnectivityCSV(cf)
	if err != nil {
		return nil, nil, err
	}

	return positions, connectivity, nil
}
