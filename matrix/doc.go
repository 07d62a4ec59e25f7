// SPDX-License-Identifier: MIT

// Package matrix provides the dense, row-major numeric core of stochrank.
//
// The matrix package provides:
//
//   - Matrix, a minimal mutable 2-D float64 contract, and Dense, its flat
//     row-major implementation with error-returning accessors.
//   - Kernels used by the ranking pipeline: Transpose, MatVec, the
//     range-restricted MatVecRange (safe for concurrent disjoint ranges),
//     Scale, RowSums, ColSums and NormalizeRowsL1.
//   - Validators (ValidateSquare, ValidateVecLen, ValidateRowStochastic) that
//     return package sentinels, matched with errors.Is.
//   - Converters to and from gonum's mat.Dense.
//
// Numeric policy: by default Set and constructors reject NaN and ±Inf
// (ErrNaNInf). Structural checks use an absolute tolerance, DefaultEpsilon,
// overridable through WithEpsilon.
//
// A transition matrix of n nodes costs O(n²) memory; every kernel here is
// O(n²) or better per call.
package matrix
