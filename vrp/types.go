// SPDX-License-Identifier: MIT

package vrp

import "errors"

// Depot is the node id of the fixed start/end location of every route.
const Depot = 0

// ErrInvalidInput is returned for structural violations: a non-square or nil
// distance table, an index the table rejects, or a solution that is not
// depot-bounded.
var ErrInvalidInput = errors.New("vrp: invalid input")

// Solution is a giant tour: Solution[0] == Solution[len-1] == Depot and
// interior depot visits delimit consecutive routes.
type Solution []int

// Route is one vehicle's depot-to-depot sequence, canonically including both
// bounding depot ids.
type Route []int

// Edge is an adjacency between two nodes of a solution.
// In symmetric mode From <= To always holds.
type Edge struct {
	From int
	To   int
}

// EdgeSet is the set of edges traversed by a solution.
type EdgeSet map[Edge]struct{}

// Clone returns an independent copy of s. A nil Solution clones to nil.
func (s Solution) Clone() Solution {
	if s == nil {
		return nil
	}
	out := make(Solution, len(s))
	copy(out, s)

	return out
}

// Customers returns the non-depot nodes of r in visiting order.
func (r Route) Customers() []int {
	out := make([]int, 0, len(r))
	for _, v := range r {
		if v != Depot {
			out = append(out, v)
		}
	}

	return out
}

// Empty reports whether r visits no customer.
func (r Route) Empty() bool {
	for _, v := range r {
		if v != Depot {
			return false
		}
	}

	return true
}
