// SPDX-License-Identifier: MIT

package vrp

import "fmt"

// Criterion selects the primary optimisation target of IsBetter.
type Criterion int

const (
	// MinimizeCost compares objective values only; vehicle count is ignored.
	MinimizeCost Criterion = iota

	// MinimizeVehicles compares lexicographically on (vehicle count, objective).
	MinimizeVehicles
)

// String implements fmt.Stringer.
func (c Criterion) String() string {
	switch c {
	case MinimizeCost:
		return "MinimizeCost"
	case MinimizeVehicles:
		return "MinimizeVehicles"
	default:
		return fmt.Sprintf("Criterion(%d)", int(c))
	}
}

// Score characterises a solution by its objective value and vehicle count.
// The zero value is NoScore: no valid solution.
type Score struct {
	Cost     float64
	Vehicles int

	defined bool
}

// NoScore marks the absence of a solution, e.g. an incumbent before the
// first feasible solution is found.
var NoScore = Score{}

// NewScore returns a defined Score.
func NewScore(cost float64, vehicles int) Score {
	return Score{Cost: cost, Vehicles: vehicles, defined: true}
}

// Defined reports whether s describes an actual solution.
func (s Score) Defined() bool { return s.defined }

// String implements fmt.Stringer.
func (s Score) String() string {
	if !s.defined {
		return "<no solution>"
	}
	return fmt.Sprintf("f=%g K=%d", s.Cost, s.Vehicles)
}

// IsBetter reports whether candidate is strictly better than incumbent.
//
// Rules, in order:
//   - an undefined candidate never wins;
//   - any defined candidate beats an undefined incumbent;
//   - MinimizeVehicles: fewer vehicles wins, equal vehicles falls back to
//     strictly lower cost;
//   - MinimizeCost: strictly lower cost wins.
//
// Comparison is exact, without tolerance.
func IsBetter(incumbent, candidate Score, crit Criterion) bool {
	if !candidate.defined {
		return false
	}
	if !incumbent.defined {
		return true
	}
	if crit == MinimizeVehicles {
		return candidate.Vehicles < incumbent.Vehicles ||
			(candidate.Vehicles == incumbent.Vehicles && candidate.Cost < incumbent.Cost)
	}

	return candidate.Cost < incumbent.Cost
}
