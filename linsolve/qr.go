package linsolve

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// QR solves systems with gonum's Householder QR factorization.
// The zero value is ready to use.
type QR struct{}

// Solve returns the least-squares solution of a·x = b.
// Complexity: O(rows·cols²).
func (QR) Solve(a [][]float64, b []float64) ([]float64, error) {
	rows, cols, err := dims(a, b)
	if err != nil {
		return nil, fmt.Errorf("QR: %w", err)
	}

	data := make([]float64, 0, rows*cols)
	for _, row := range a {
		data = append(data, row...)
	}
	rhs := make([]float64, rows)
	copy(rhs, b)

	var qr mat.QR
	qr.Factorize(mat.NewDense(rows, cols, data))

	var r mat.Dense
	qr.RTo(&r)
	var maxDiag float64
	for k := 0; k < cols; k++ {
		maxDiag = math.Max(maxDiag, math.Abs(r.At(k, k)))
	}
	for k := 0; k < cols; k++ {
		if d := math.Abs(r.At(k, k)); d <= RankTolerance*maxDiag {
			return nil, fmt.Errorf("QR: |R[%d][%d]| = %g: %w", k, k, d, ErrSingular)
		}
	}

	var x mat.VecDense
	if err = qr.SolveVecTo(&x, false, mat.NewVecDense(rows, rhs)); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return nil, fmt.Errorf("QR: condition number %g: %w", float64(cond), ErrSingular)
		}
		return nil, fmt.Errorf("QR: %w", err)
	}

	out := make([]float64, cols)
	for i := range out {
		out[i] = x.AtVec(i)
	}
	return out, nil
}
