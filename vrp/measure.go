// SPDX-License-Identifier: MIT

// Package vrp — objective and demand measures.
//
// Design:
//   - Objective walks adjacent pairs only; it never closes the sequence back
//     to its start, since solutions and routes already carry both depot visits.
//   - No rounding: comparisons downstream are exact, so callers that need
//     numeric stability quantise upstream.
//
// Complexity:
//   - O(len(seq)) time, O(1) extra space.
package vrp

import (
	"fmt"

	"github.com/katalvlaran/vrpkit/matrix"
	"golang.org/x/exp/constraints"
)

// Number is the element type accepted for demand vectors.
type Number interface {
	constraints.Integer | constraints.Float
}

// Objective returns the travel cost of seq: the sum of dist(seq[i-1], seq[i])
// for i in 1..len(seq)-1. A sequence shorter than two nodes costs 0.
//
// seq may be a whole Solution or a single Route.
// Returns ErrInvalidInput when dist is nil or rejects an index.
func Objective(dist matrix.Matrix, seq []int) (float64, error) {
	if dist == nil {
		return 0, fmt.Errorf("Objective: %w: %w", ErrInvalidInput, matrix.ErrNilMatrix)
	}

	var (
		sum float64
		w   float64
		err error
	)
	for i := 1; i < len(seq); i++ {
		if w, err = dist.At(seq[i-1], seq[i]); err != nil {
			return 0, fmt.Errorf("Objective: edge %d→%d: %w: %w", seq[i-1], seq[i], ErrInvalidInput, err)
		}
		sum += w
	}

	return sum, nil
}

// TotalDemand returns the summed demand of the nodes in seq.
// A nil or empty demand vector means the problem has no demands: the result
// is 0 for any seq.
// Returns ErrInvalidInput when a node has no entry in demand.
func TotalDemand[D Number](seq []int, demand []D) (D, error) {
	var total D
	if len(demand) == 0 {
		return total, nil
	}
	for i, v := range seq {
		if v < 0 || v >= len(demand) {
			return 0, fmt.Errorf("TotalDemand: node %d at position %d has no demand entry: %w", v, i, ErrInvalidInput)
		}
		total += demand[v]
	}

	return total, nil
}

// RouteObjectives returns the cost of every route of sol, in route order.
// Their sum equals Objective(dist, sol) once empty routes are removed.
func RouteObjectives(dist matrix.Matrix, sol Solution) ([]float64, error) {
	routes := SolutionToRoutes(sol)
	out := make([]float64, len(routes))
	for i, r := range routes {
		f, err := Objective(dist, r)
		if err != nil {
			return nil, fmt.Errorf("RouteObjectives: route %d: %w", i, err)
		}
		out[i] = f
	}

	return out, nil
}

// RouteDemands returns the load of every route of sol, in route order.
func RouteDemands[D Number](sol Solution, demand []D) ([]D, error) {
	routes := SolutionToRoutes(sol)
	out := make([]D, len(routes))
	for i, r := range routes {
		q, err := TotalDemand(r, demand)
		if err != nil {
			return nil, fmt.Errorf("RouteDemands: route %d: %w", i, err)
		}
		out[i] = q
	}

	return out, nil
}

// Evaluate measures sol into a Score: its objective and vehicle count.
func Evaluate(dist matrix.Matrix, sol Solution) (Score, error) {
	f, err := Objective(dist, sol)
	if err != nil {
		return NoScore, err
	}

	return NewScore(f, VehicleCount(sol)), nil
}
