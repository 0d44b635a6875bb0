// SPDX-License-Identifier: MIT

// Package instance decodes VRP problem instances from YAML.
//
// An instance carries either an explicit distance table or planar node
// coordinates (turned into a Euclidean table), plus optional demands and a
// vehicle capacity:
//
//	name: toy
//	capacity: 10
//	symmetric: true
//	coordinates: [[0, 0], [3, 4], [6, 8]]
//	demands: [0, 4, 5]
//
// Node 0 is the depot; its demand must be 0.
package instance

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/vrpkit/matrix"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoTable is returned when neither distances nor coordinates are given.
	ErrNoTable = errors.New("instance: no distances or coordinates")

	// ErrAmbiguousTable is returned when both distances and coordinates are given.
	ErrAmbiguousTable = errors.New("instance: both distances and coordinates given")

	// ErrBadDemands is returned when demands do not match the node count,
	// are negative, or assign a demand to the depot.
	ErrBadDemands = errors.New("instance: invalid demands")

	// ErrBadCoordinates is returned for a coordinate that is not an (x, y) pair.
	ErrBadCoordinates = errors.New("instance: invalid coordinates")
)

// symTol is the tolerance used to verify tables declared symmetric.
const symTol = 1e-9

// Instance is a decoded, validated problem instance.
type Instance struct {
	Name      string
	Capacity  float64
	Symmetric bool
	Demands   []float64 // nil when the instance has no demands

	table *matrix.Dense
}

// document mirrors the YAML layout.
type document struct {
	Name        string      `yaml:"name"`
	Capacity    float64     `yaml:"capacity"`
	Symmetric   *bool       `yaml:"symmetric"`
	Distances   [][]float64 `yaml:"distances"`
	Coordinates [][]float64 `yaml:"coordinates"`
	Demands     []float64   `yaml:"demands"`
}

// Size returns the number of nodes, depot included.
func (in *Instance) Size() int { return in.table.Rows() }

// Table returns the distance table. Callers must not mutate it; Clone it
// first if needed.
func (in *Instance) Table() *matrix.Dense { return in.table }

// Load reads and decodes the instance file at path.
func Load(path string) (*Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("instance: read %s: %w", path, err)
	}
	in, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return in, nil
}

// Decode parses one YAML instance from r and validates it.
func Decode(r io.Reader) (*Instance, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("instance: decode: %w", err)
	}

	return build(doc)
}

// build turns a raw document into an Instance.
func build(doc document) (*Instance, error) {
	var (
		table *matrix.Dense
		err   error
	)
	switch {
	case doc.Distances != nil && doc.Coordinates != nil:
		return nil, ErrAmbiguousTable
	case doc.Distances != nil:
		table, err = matrix.NewDenseFromRows(doc.Distances)
	case doc.Coordinates != nil:
		table, err = euclidean(doc.Coordinates)
	default:
		return nil, ErrNoTable
	}
	if err != nil {
		return nil, fmt.Errorf("instance: table: %w", err)
	}
	if err = matrix.ValidateSquare(table); err != nil {
		return nil, fmt.Errorf("instance: table: %w", err)
	}
	if err = matrix.ValidateFinite(table); err != nil {
		return nil, fmt.Errorf("instance: table: %w", err)
	}

	symmetric := true
	if doc.Symmetric != nil {
		symmetric = *doc.Symmetric
	}
	if symmetric {
		if err = matrix.ValidateSymmetric(table, symTol); err != nil {
			return nil, fmt.Errorf("instance: table: %w", err)
		}
	}

	if err = validateDemands(doc.Demands, table.Rows()); err != nil {
		return nil, err
	}

	return &Instance{
		Name:      doc.Name,
		Capacity:  doc.Capacity,
		Symmetric: symmetric,
		Demands:   doc.Demands,
		table:     table,
	}, nil
}

// euclidean builds the Euclidean distance table of planar points.
func euclidean(pts [][]float64) (*matrix.Dense, error) {
	for i, p := range pts {
		if len(p) != 2 {
			return nil, fmt.Errorf("node %d has %d coordinates: %w", i, len(p), ErrBadCoordinates)
		}
	}
	n := len(pts)
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d := math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])
			_ = m.Set(i, j, d) // indices are in range by construction
			_ = m.Set(j, i, d)
		}
	}

	return m, nil
}

// validateDemands accepts nil, or one non-negative demand per node with a
// zero depot demand.
func validateDemands(d []float64, n int) error {
	if d == nil {
		return nil
	}
	if len(d) != n {
		return fmt.Errorf("%d demands for %d nodes: %w", len(d), n, ErrBadDemands)
	}
	if d[0] != 0 {
		return fmt.Errorf("depot demand %g: %w", d[0], ErrBadDemands)
	}
	for i, q := range d {
		if q < 0 || math.IsNaN(q) || math.IsInf(q, 0) {
			return fmt.Errorf("node %d demand %g: %w", i, q, ErrBadDemands)
		}
	}

	return nil
}
