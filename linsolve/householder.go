package linsolve

import (
	"fmt"
	"math"
)

// Householder solves systems with a column-pivoted Householder QR that is
// applied to the right-hand side on the fly, so Q is never formed.
// The zero value is ready to use.
type Householder struct{}

// Solve returns the least-squares solution of a·x = b.
// Returns ErrSingular when a diagonal entry of R falls below
// RankTolerance·|R₀₀| (R₀₀ is the largest diagonal entry after pivoting).
// Complexity: O(rows·cols²) time, O(rows·cols) memory.
func (Householder) Solve(a [][]float64, b []float64) ([]float64, error) {
	// Stage 1: validate and copy inputs
	rows, cols, err := dims(a, b)
	if err != nil {
		return nil, fmt.Errorf("Householder: %w", err)
	}
	r := make([][]float64, rows)
	for i := range a {
		r[i] = append([]float64(nil), a[i]...)
	}
	y := append([]float64(nil), b...)
	perm := make([]int, cols)
	for j := range perm {
		perm[j] = j
	}
	v := make([]float64, rows)

	// Stage 2: reflections with column pivoting
	var (
		k, i, j       int
		norm, alpha   float64
		beta, tau, s  float64
		pivot         int
		best, current float64
	)
	for k = 0; k < cols; k++ {
		// 2.1: bring the column with the largest trailing norm to position k
		pivot, best = k, trailingNorm(r, k, k)
		for j = k + 1; j < cols; j++ {
			if current = trailingNorm(r, j, k); current > best {
				pivot, best = j, current
			}
		}
		if pivot != k {
			for i = 0; i < rows; i++ {
				r[i][k], r[i][pivot] = r[i][pivot], r[i][k]
			}
			perm[k], perm[pivot] = perm[pivot], perm[k]
		}

		// 2.2: remaining columns are all zero
		norm = math.Sqrt(best)
		if norm == 0 {
			return nil, fmt.Errorf("Householder: rank %d < %d: %w", k, cols, ErrSingular)
		}

		// 2.3: Householder vector v = x - alpha·e_k
		alpha = -math.Copysign(norm, r[k][k])
		for i = k; i < rows; i++ {
			v[i] = r[i][k]
		}
		v[k] -= alpha
		beta = 0
		for i = k; i < rows; i++ {
			beta += v[i] * v[i]
		}
		tau = 2 / beta

		// 2.4: apply to the trailing block of R
		for j = k; j < cols; j++ {
			s = 0
			for i = k; i < rows; i++ {
				s += v[i] * r[i][j]
			}
			for i = k; i < rows; i++ {
				r[i][j] -= tau * v[i] * s
			}
		}

		// 2.5: apply to the right-hand side (y = Qᵀb)
		s = 0
		for i = k; i < rows; i++ {
			s += v[i] * y[i]
		}
		for i = k; i < rows; i++ {
			y[i] -= tau * v[i] * s
		}
	}

	// Stage 3: rank check and back-substitution on the leading cols×cols block
	tol := RankTolerance * math.Abs(r[0][0])
	z := make([]float64, cols)
	for k = cols - 1; k >= 0; k-- {
		if math.Abs(r[k][k]) <= tol {
			return nil, fmt.Errorf("Householder: |R[%d][%d]| = %g: %w", k, k, math.Abs(r[k][k]), ErrSingular)
		}
		s = y[k]
		for j = k + 1; j < cols; j++ {
			s -= r[k][j] * z[j]
		}
		z[k] = s / r[k][k]
	}

	// Stage 4: undo the column permutation
	x := make([]float64, cols)
	for k = 0; k < cols; k++ {
		x[perm[k]] = z[k]
	}
	return x, nil
}

// trailingNorm returns the squared norm of column j below (and including) row k.
func trailingNorm(r [][]float64, j, k int) float64 {
	var sum float64
	for i := k; i < len(r); i++ {
		sum += r[i][j] * r[i][j]
	}
	return sum
}
