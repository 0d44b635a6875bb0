// SPDX-License-Identifier: MIT

package vrp

import (
	"cmp"
	"slices"
)

// SolutionToEdgeSet collects the edges traversed by sol.
//
// With symmetric == true a pair (a,b) with a > b is stored as (b,a), so the
// two traversal directions of a route map to the same edges. Otherwise
// direction is kept as encountered.
//
// The result is lossy: route boundaries are not recoverable. Use it to compare
// solution topology, not to rebuild solutions.
//
// Complexity: O(len(sol)).
func SolutionToEdgeSet(sol Solution, symmetric bool) EdgeSet {
	edges := make(EdgeSet, len(sol))
	var a, b int
	for i := 0; i+1 < len(sol); i++ {
		a, b = sol[i], sol[i+1]
		if symmetric && a > b {
			a, b = b, a
		}
		edges[Edge{From: a, To: b}] = struct{}{}
	}

	return edges
}

// Has reports whether e is in the set. The caller canonicalises e for
// symmetric sets.
func (s EdgeSet) Has(e Edge) bool {
	_, ok := s[e]
	return ok
}

// Sorted returns the edges ordered by (From, To).
func (s EdgeSet) Sorted() []Edge {
	out := make([]Edge, 0, len(s))
	for e := range s {
		out = append(out, e)
	}
	slices.SortFunc(out, func(x, y Edge) int {
		if c := cmp.Compare(x.From, y.From); c != 0 {
			return c
		}
		return cmp.Compare(x.To, y.To)
	})

	return out
}

// EdgeSetDistance returns the size of the symmetric difference of a and b:
// the number of edges present in exactly one of the two solutions.
// Zero means both solutions share the same topology.
func EdgeSetDistance(a, b EdgeSet) int {
	var d int
	for e := range a {
		if !b.Has(e) {
			d++
		}
	}
	for e := range b {
		if !a.Has(e) {
			d++
		}
	}

	return d
}
