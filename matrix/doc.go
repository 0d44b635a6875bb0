// SPDX-License-Identifier: MIT

// Package matrix provides the distance-table abstraction consumed by the
// routing substrate in package vrp.
//
// The matrix package provides:
//
//   - Matrix: a minimal two-dimensional float64 table (Rows, Cols, At, Set, Clone).
//   - Dense: a row-major implementation backed by one flat slice.
//   - Validators: shape, symmetry and numeric-policy checks returning
//     package sentinels (ErrNonSquare, ErrAsymmetry, ErrNaNInf, ...).
//
// A distance table is indexed by (node id, node id); node 0 is the depot.
// Tables may be symmetric or asymmetric, and nothing here assumes either.
//
// Tables are best kept dense: VRP instances handled by construction
// heuristics are small enough that O(n²) memory is acceptable.
package matrix
