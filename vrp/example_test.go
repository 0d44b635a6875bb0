// SPDX-License-Identifier: MIT
package vrp_test

import (
	"fmt"

	"github.com/katalvlaran/vrpkit/matrix"
	"github.com/katalvlaran/vrpkit/vrp"
)

// ExampleRoutesToSolution assembles a route list into a giant tour and
// splits it back.
func ExampleRoutesToSolution() {
	sol, ok := vrp.RoutesToSolution([]vrp.Route{{0, 3, 5, 0}, {0, 2, 0}})
	fmt.Println(sol, ok)
	fmt.Println(vrp.SolutionToRoutes(sol))

	_, ok = vrp.RoutesToSolution(nil)
	fmt.Println("no routes:", ok)
	// Output:
	// [0 3 5 0 2 0] true
	// [[0 3 5 0] [0 2 0]]
	// no routes: false
}

// ExampleIsBetter shows that fewer vehicles dominate a higher cost when
// vehicles are the primary criterion.
func ExampleIsBetter() {
	incumbent := vrp.NewScore(100, 3)
	candidate := vrp.NewScore(150, 2)

	fmt.Println(vrp.IsBetter(incumbent, candidate, vrp.MinimizeVehicles))
	fmt.Println(vrp.IsBetter(incumbent, candidate, vrp.MinimizeCost))
	fmt.Println(vrp.IsBetter(vrp.NoScore, candidate, vrp.MinimizeCost))
	// Output:
	// true
	// false
	// true
}

// ExampleBuildNeighborIndex picks the nearest customers of the depot.
func ExampleBuildNeighborIndex() {
	d, _ := matrix.NewDenseFromRows([][]float64{
		{0, 4, 1, 3},
		{4, 0, 2, 6},
		{1, 2, 0, 5},
		{3, 6, 5, 0},
	})
	idx, err := vrp.BuildNeighborIndex(d)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, nb := range idx.Nearest(vrp.Depot, 2) {
		fmt.Printf("node %d at %g\n", nb.ID, nb.Dist)
	}

	f, _ := vrp.Objective(d, vrp.Solution{0, 2, 1, 0, 3, 0})
	fmt.Println("objective:", f)
	// Output:
	// node 2 at 1
	// node 3 at 3
	// objective: 13
}
