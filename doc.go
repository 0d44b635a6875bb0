// Package vrpkit is the shared substrate beneath vehicle-routing heuristics:
// the pieces every construction or improvement heuristic needs, and nothing
// heuristic-specific.
//
// 🚀 What is inside?
//
//	• matrix     — distance tables: Matrix interface, Dense, validators
//	• vrp        — giant tour ⇄ route list ⇄ edge set conversions,
//	               objective & demand measures, incumbent/candidate comparator,
//	               nearest-neighbour index
//	• orderedset — insertion-ordered set with O(1) add/remove and a lazily
//	               rebuilt positional index, for pools of unrouted customers
//	• instance   — YAML problem instances (distance table or coordinates)
//	• cmd/vrpstat — inspect a solution against an instance
//
// ✨ Conventions
//
//   - Node 0 is the depot; a solution starts and ends there.
//   - Sentinel errors per package, matched with errors.Is; no panics on user input.
//   - "No solution" is a value (ok=false, vrp.NoScore), not an error.
//   - Pure functions everywhere except orderedset.Set, which is single-owner.
//
// Quick start:
//
//	sol, ok := vrp.RoutesToSolution([]vrp.Route{{0, 3, 5, 0}, {0, 2, 0}})
//	score, err := vrp.Evaluate(dist, sol)
//	if vrp.IsBetter(best, score, vrp.MinimizeVehicles) { best = score }
package vrpkit
