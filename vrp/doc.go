// SPDX-License-Identifier: MIT

// Package vrp is the solution-representation layer shared by vehicle-routing
// heuristics: it converts, measures and compares candidate solutions.
//
// Representations:
//
//   - Solution (giant tour): one flat sequence that starts and ends at the
//     depot (node 0); interior depot visits separate routes.
//     Example: [0 3 5 0 2 0].
//
//   - []Route (route list): each route is bounded by depot visits.
//     Example: [[0 3 5 0] [0 2 0]].
//
//   - EdgeSet: which nodes are adjacent in the solution. Lossy: route
//     boundaries cannot be recovered from it, so it is only meant for
//     comparing solution topology.
//
// Operations:
//
//   - RoutesToSolution / SolutionToRoutes / SolutionToEdgeSet / WithoutEmptyRoutes
//   - Objective / TotalDemand / RouteObjectives / RouteDemands / Evaluate
//   - IsBetter on Score values under a Criterion
//   - BuildNeighborIndex: per-node neighbours sorted by distance
//
// "No solution" is not an error here: RoutesToSolution reports it through its
// ok result and IsBetter through NoScore. Structural violations (non-square
// tables, malformed solutions) return ErrInvalidInput.
//
// Every function is pure and safe for concurrent use; inputs are never
// mutated and results never alias inputs.
package vrp
