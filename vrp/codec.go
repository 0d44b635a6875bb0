// SPDX-License-Identifier: MIT

// Package vrp — conversions between the giant-tour and route-list encodings.
//
// Provided helpers:
//   - RoutesToSolution: concatenate routes into one depot-delimited sequence.
//   - SolutionToRoutes: split a giant tour on depot visits.
//   - WithoutEmptyRoutes: normalisation that collapses adjacent duplicates.
//   - VehicleCount: number of non-empty routes.
//   - Solution.Validate: depot-bounded structure and customer uniqueness.
//
// Design:
//   - No logging, no panics on user input.
//   - O(n) time; results never alias inputs.
package vrp

import "fmt"

// RoutesToSolution concatenates routes into a giant tour.
//
// Routes may or may not carry their depot visits. For each non-empty route a
// leading depot is dropped (the running sequence already ends in one) and a
// depot is appended unless the route already ends in one. Empty routes are
// skipped.
//
// Returns ok == false when no routes are supplied at all: "no solution" is
// distinct from a solution with no customers, which assembles to [0].
//
// Complexity: O(total route length).
func RoutesToSolution(routes []Route) (Solution, bool) {
	if len(routes) == 0 {
		return nil, false
	}

	sol := Solution{Depot}
	for _, r := range routes {
		if len(r) == 0 {
			continue
		}
		if r[0] == Depot {
			sol = append(sol, r[1:]...)
		} else {
			sol = append(sol, r...)
		}
		if sol[len(sol)-1] != Depot {
			sol = append(sol, Depot)
		}
	}

	return sol, true
}

// SolutionToRoutes splits a giant tour into depot-bounded routes.
//
// Maximal runs of customers between depot visits become routes wrapped as
// [0 … 0]; zero-length partitions (adjacent depot visits) are discarded, so
// [0 0 4 0] yields [[0 4 0]]. A solution of length ≤ 2 has no customers and
// yields an empty list.
//
// Repeated adjacent customer ids inside a run are kept as they are; only
// WithoutEmptyRoutes collapses them.
//
// Complexity: O(len(sol)).
func SolutionToRoutes(sol Solution) []Route {
	routes := []Route{}
	if len(sol) <= 2 {
		return routes
	}

	var (
		start = -1 // index of the first customer of the open run
		i     int
	)
	for i = 0; i <= len(sol); i++ {
		if i < len(sol) && sol[i] != Depot {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			r := make(Route, 0, i-start+2)
			r = append(r, Depot)
			r = append(r, sol[start:i]...)
			r = append(r, Depot)
			routes = append(routes, r)
			start = -1
		}
	}

	return routes
}

// WithoutEmptyRoutes removes empty routes from sol by collapsing every run of
// equal adjacent values to a single value.
//
// WARNING: this collapses any adjacent duplicate, not only [0 0]. A solution
// that legitimately visits the same customer twice in a row loses the second
// visit; callers with such solutions must pre-filter.
//
// Complexity: O(len(sol)).
func WithoutEmptyRoutes(sol Solution) Solution {
	if sol == nil {
		return nil
	}
	out := make(Solution, 0, len(sol))
	for i, v := range sol {
		if i > 0 && v == sol[i-1] {
			continue
		}
		out = append(out, v)
	}

	return out
}

// VehicleCount returns the number of non-empty routes in sol.
//
// Complexity: O(len(sol)), no allocation.
func VehicleCount(sol Solution) int {
	var (
		k    int
		prev = Depot
	)
	for _, v := range sol {
		if v != Depot && prev == Depot {
			k++
		}
		prev = v
	}

	return k
}

// Validate checks that s is a well-formed solution over nodes [0..n-1]:
// non-empty, starts and ends at the depot, every id in range and no customer
// visited twice. Adjacent depot visits are tolerated.
//
// Returns ErrInvalidInput (wrapped with the offending position) on violation.
//
// Complexity: O(len(s)) time, O(n) space.
func (s Solution) Validate(n int) error {
	if n <= 0 {
		return fmt.Errorf("Validate: node count %d: %w", n, ErrInvalidInput)
	}
	if len(s) == 0 {
		return fmt.Errorf("Validate: empty solution: %w", ErrInvalidInput)
	}
	if s[0] != Depot || s[len(s)-1] != Depot {
		return fmt.Errorf("Validate: solution must start and end at the depot: %w", ErrInvalidInput)
	}

	seen := make([]bool, n)
	for i, v := range s {
		if v < 0 || v >= n {
			return fmt.Errorf("Validate: node %d at position %d out of range [0,%d): %w", v, i, n, ErrInvalidInput)
		}
		if v == Depot {
			continue
		}
		if seen[v] {
			return fmt.Errorf("Validate: customer %d visited twice (position %d): %w", v, i, ErrInvalidInput)
		}
		seen[v] = true
	}

	return nil
}
