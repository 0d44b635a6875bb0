// SPDX-License-Identifier: MIT

package vrp

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/vrpkit/matrix"
)

// Neighbor is one entry of a NeighborIndex row.
type Neighbor struct {
	ID   int
	Dist float64
}

// NeighborIndex holds, for every node i, all nodes sorted by ascending
// distance from i. Entry i includes i itself.
type NeighborIndex [][]Neighbor

// BuildNeighborIndex precomputes the nearest-neighbour lists of dist.
//
// Row i lists every node j with Dist = dist(i, j), sorted ascending by a
// stable sort, so equal distances keep ascending id order.
//
// Returns ErrInvalidInput (wrapping the matrix sentinel) when dist is nil or
// not square.
//
// Complexity: O(n² log n) time, O(n²) space.
func BuildNeighborIndex(dist matrix.Matrix) (NeighborIndex, error) {
	if err := matrix.ValidateSquareNonNil(dist); err != nil {
		return nil, fmt.Errorf("BuildNeighborIndex: %w: %w", ErrInvalidInput, err)
	}

	var (
		n    = dist.Rows()
		idx  = make(NeighborIndex, n)
		i, j int
		w    float64
		err  error
	)
	for i = 0; i < n; i++ {
		row := make([]Neighbor, n)
		for j = 0; j < n; j++ {
			if w, err = dist.At(i, j); err != nil {
				return nil, fmt.Errorf("BuildNeighborIndex: %w: %w", ErrInvalidInput, err)
			}
			row[j] = Neighbor{ID: j, Dist: w}
		}
		slices.SortStableFunc(row, func(a, b Neighbor) int {
			return cmp.Compare(a.Dist, b.Dist)
		})
		idx[i] = row
	}

	return idx, nil
}

// Nearest returns up to k nearest neighbours of i, excluding i itself.
// Returns nil when i is out of range or k ≤ 0.
func (x NeighborIndex) Nearest(i, k int) []Neighbor {
	if i < 0 || i >= len(x) || k <= 0 {
		return nil
	}
	out := make([]Neighbor, 0, min(k, len(x[i])))
	for _, nb := range x[i] {
		if len(out) == k {
			break
		}
		if nb.ID != i {
			out = append(out, nb)
		}
	}

	return out
}

// NearestFunc returns the nearest neighbour of i, other than i, for which
// accept returns true. Typical use is picking the nearest unrouted customer.
func (x NeighborIndex) NearestFunc(i int, accept func(id int) bool) (Neighbor, bool) {
	if i < 0 || i >= len(x) {
		return Neighbor{}, false
	}
	for _, nb := range x[i] {
		if nb.ID != i && accept(nb.ID) {
			return nb, true
		}
	}

	return Neighbor{}, false
}
