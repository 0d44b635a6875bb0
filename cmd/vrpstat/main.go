// SPDX-License-Identifier: MIT

// Command vrpstat inspects a VRP solution against an instance file.
//
// Usage:
//
//	vrpstat -instance toy.yaml -solution "0 1 2 0 3 0" [-incumbent "0 1 0 2 3 0"]
//	        [-minimize-vehicles] [-asymmetric] [-v]
//
// It prints the route decomposition, per-route cost and load, the objective
// and the vehicle count, and with -incumbent whether the solution beats it.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/vrpkit/instance"
	"github.com/katalvlaran/vrpkit/vrp"
	"golang.org/x/exp/slog"
)

type options struct {
	instancePath     string
	solution         string
	incumbent        string
	minimizeVehicles bool
	asymmetric       bool
	verbose          bool
}

func main() {
	var opts options
	flag.StringVar(&opts.instancePath, "instance", "", "Path to the YAML instance file")
	flag.StringVar(&opts.solution, "solution", "", "Giant tour to inspect, e.g. \"0 1 2 0 3 0\"")
	flag.StringVar(&opts.incumbent, "incumbent", "", "Optional giant tour to compare against")
	flag.BoolVar(&opts.minimizeVehicles, "minimize-vehicles", false, "Compare on (vehicles, cost) instead of cost only")
	flag.BoolVar(&opts.asymmetric, "asymmetric", false, "Keep edge direction when counting edges")
	flag.BoolVar(&opts.verbose, "v", false, "Debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(os.Stdout, logger, opts); err != nil {
		logger.Error("vrpstat failed", "err", err)
		os.Exit(1)
	}
}

func run(w io.Writer, logger *slog.Logger, opts options) error {
	if opts.instancePath == "" || opts.solution == "" {
		return fmt.Errorf("both -instance and -solution are required")
	}

	in, err := instance.Load(opts.instancePath)
	if err != nil {
		return err
	}
	logger.Debug("instance loaded", "name", in.Name, "nodes", in.Size(), "symmetric", in.Symmetric)

	sol, err := parseTour(opts.solution)
	if err != nil {
		return fmt.Errorf("-solution: %w", err)
	}
	if err = sol.Validate(in.Size()); err != nil {
		return fmt.Errorf("-solution: %w", err)
	}

	score, err := report(w, in, sol, !opts.asymmetric && in.Symmetric)
	if err != nil {
		return err
	}

	if opts.incumbent == "" {
		return nil
	}
	inc, err := parseTour(opts.incumbent)
	if err != nil {
		return fmt.Errorf("-incumbent: %w", err)
	}
	if err = inc.Validate(in.Size()); err != nil {
		return fmt.Errorf("-incumbent: %w", err)
	}
	incScore, err := vrp.Evaluate(in.Table(), inc)
	if err != nil {
		return err
	}

	crit := vrp.MinimizeCost
	if opts.minimizeVehicles {
		crit = vrp.MinimizeVehicles
	}
	logger.Debug("comparing", "criterion", crit, "incumbent", incScore, "candidate", score)
	fmt.Fprintf(w, "incumbent: %v\n", incScore)
	fmt.Fprintf(w, "better:    %t (%v)\n", vrp.IsBetter(incScore, score, crit), crit)
	fmt.Fprintf(w, "edge diff: %d\n", vrp.EdgeSetDistance(
		vrp.SolutionToEdgeSet(inc, !opts.asymmetric && in.Symmetric),
		vrp.SolutionToEdgeSet(sol, !opts.asymmetric && in.Symmetric),
	))

	return nil
}

// report prints the decomposition and measures of sol and returns its Score.
func report(w io.Writer, in *instance.Instance, sol vrp.Solution, symmetric bool) (vrp.Score, error) {
	costs, err := vrp.RouteObjectives(in.Table(), sol)
	if err != nil {
		return vrp.NoScore, err
	}
	loads, err := vrp.RouteDemands(sol, in.Demands)
	if err != nil {
		return vrp.NoScore, err
	}
	score, err := vrp.Evaluate(in.Table(), sol)
	if err != nil {
		return vrp.NoScore, err
	}

	for i, r := range vrp.SolutionToRoutes(sol) {
		fmt.Fprintf(w, "route %d: %v cost=%g load=%g", i+1, r, costs[i], loads[i])
		if in.Capacity > 0 && loads[i] > in.Capacity {
			fmt.Fprint(w, " OVER CAPACITY")
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "solution:  %v\n", score)
	fmt.Fprintf(w, "edges:     %d\n", len(vrp.SolutionToEdgeSet(sol, symmetric)))

	return score, nil
}

// parseTour reads whitespace- or comma-separated node ids.
func parseTour(s string) (vrp.Solution, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	sol := make(vrp.Solution, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", f, vrp.ErrInvalidInput)
		}
		sol = append(sol, v)
	}

	return sol, nil
}
