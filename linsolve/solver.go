package linsolve

import (
	"errors"
	"fmt"
)

var (
	// ErrShape indicates the system dimensions are unusable.
	ErrShape = errors.New("linsolve: invalid system shape")
	// ErrSingular indicates the matrix is singular within working precision.
	ErrSingular = errors.New("linsolve: singular matrix")
)

// RankTolerance is the relative cutoff below which a diagonal entry of R
// marks the matrix as singular.
const RankTolerance = 1e-10

// Solver solves A·x = b in the least-squares sense.
type Solver interface {
	Solve(a [][]float64, b []float64) ([]float64, error)
}

// SolverFunc adapts a plain function to the Solver interface.
type SolverFunc func(a [][]float64, b []float64) ([]float64, error)

// Solve calls f(a, b).
func (f SolverFunc) Solve(a [][]float64, b []float64) ([]float64, error) {
	return f(a, b)
}

// dims validates the system and returns its shape.
func dims(a [][]float64, b []float64) (rows, cols int, err error) {
	rows = len(a)
	if rows == 0 || len(a[0]) == 0 {
		return 0, 0, fmt.Errorf("empty matrix: %w", ErrShape)
	}
	cols = len(a[0])
	for i, row := range a {
		if len(row) != cols {
			return 0, 0, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), cols, ErrShape)
		}
	}
	if rows < cols {
		return 0, 0, fmt.Errorf("underdetermined %dx%d: %w", rows, cols, ErrShape)
	}
	if len(b) != rows {
		return 0, 0, fmt.Errorf("rhs length %d, want %d: %w", len(b), rows, ErrShape)
	}
	return rows, cols, nil
}
