// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/vrpkit/vrp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

const toyInstance = `
name: toy
capacity: 5
distances:
  - [0, 1, 2, 3]
  - [1, 0, 1, 2]
  - [2, 1, 0, 1]
  - [3, 2, 1, 0]
demands: [0, 2, 3, 4]
`

func writeInstance(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "toy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(toyInstance), 0o600))
	return path
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParseTour(t *testing.T) {
	t.Parallel()

	sol, err := parseTour("0 1, 2\t0")
	require.NoError(t, err)
	assert.Equal(t, vrp.Solution{0, 1, 2, 0}, sol)

	_, err = parseTour("0 x 0")
	require.ErrorIs(t, err, vrp.ErrInvalidInput)
}

func TestRun_Report(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := run(&out, discardLogger(), options{
		instancePath: writeInstance(t),
		solution:     "0 1 2 0 3 0",
	})
	require.NoError(t, err)

	want := "route 1: [0 1 2 0] cost=4 load=5\n" +
		"route 2: [0 3 0] cost=6 load=4\n" +
		"solution:  f=10 K=2\n" +
		"edges:     4\n"
	assert.Equal(t, want, out.String())
}

func TestRun_Compare(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := run(&out, discardLogger(), options{
		instancePath:     writeInstance(t),
		solution:         "0 1 2 3 0",
		incumbent:        "0 1 2 0 3 0",
		minimizeVehicles: true,
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "route 1: [0 1 2 3 0] cost=6 load=9 OVER CAPACITY\n")
	assert.Contains(t, out.String(), "incumbent: f=10 K=2\n")
	assert.Contains(t, out.String(), "better:    true (MinimizeVehicles)\n")
	assert.Contains(t, out.String(), "edge diff: 2\n")
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	path := writeInstance(t)

	err := run(io.Discard, discardLogger(), options{instancePath: path})
	require.Error(t, err)

	err = run(io.Discard, discardLogger(), options{instancePath: path, solution: "0 1 1 0"})
	require.ErrorIs(t, err, vrp.ErrInvalidInput)

	err = run(io.Discard, discardLogger(), options{instancePath: path, solution: "0 1 0", incumbent: "1 0"})
	require.ErrorIs(t, err, vrp.ErrInvalidInput)
}
