// Package linsolve solves the small dense linear systems used to map
// Cartesian points into lattice-vector coordinates.
//
// What:
//
//   - Solver is the capability: x = argmin ‖A·x − b‖ for a rows×cols
//     matrix with rows ≥ cols (an exact solve when A is square).
//   - QR delegates to gonum's mat.QR.
//   - Householder is a self-contained column-pivoted Householder QR.
//
// Matrices are row-major [][]float64; neither solver mutates its inputs.
//
// Errors:
//
//   - ErrShape: empty, ragged, underdetermined, or len(b) != rows.
//   - ErrSingular: rank-deficient or numerically singular matrix.
package linsolve
