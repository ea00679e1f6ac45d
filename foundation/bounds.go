package foundation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tightbinding/lattice"
	"github.com/katalvlaran/tightbinding/linsolve"
	"github.com/katalvlaran/tightbinding/shape"
)

// FindBounds returns the integer box [lower, upper] of unit cells that
// contains the shape.
//
// Each vertex p is mapped to lattice-vector coordinates by solving L·v = p,
// where the columns of L are the primitive vectors restricted to the
// lattice's ndim components. v is truncated toward zero, the component-wise
// extremes are kept, and the box is padded by one cell on each side of
// every spanned axis to cover the truncated remainder. Axes beyond ndim
// stay at 0.
//
// Returns ErrNoVertices for a shape without vertices and ErrSingularLattice
// (wrapping the solver error) when L cannot be inverted.
// Complexity: O(V·ndim³) for V vertices.
func FindBounds(s shape.Shape, l *lattice.Lattice, solver linsolve.Solver) (lower, upper lattice.Index3D, err error) {
	vertices := s.Vertices()
	if len(vertices) == 0 {
		return lower, upper, ErrNoVertices
	}

	ndim := l.NDim()
	m := make([][]float64, ndim)
	for row := 0; row < ndim; row++ {
		m[row] = make([]float64, ndim)
		for col := 0; col < ndim; col++ {
			m[row][col] = l.Vector(col)[row]
		}
	}

	lower = lattice.Index3D{math.MaxInt, math.MaxInt, math.MaxInt}
	upper = lattice.Index3D{math.MinInt, math.MinInt, math.MinInt}
	p := make([]float64, ndim)
	for i, vertex := range vertices {
		copy(p, vertex[:ndim])
		x, err := solver.Solve(m, p)
		if err != nil {
			return lattice.Index3D{}, lattice.Index3D{}, fmt.Errorf("FindBounds: vertex %d: %w: %w", i, ErrSingularLattice, err)
		}

		var v lattice.Index3D
		for axis := 0; axis < ndim; axis++ {
			v[axis] = int(x[axis])
		}
		for axis := range v {
			lower[axis] = min(lower[axis], v[axis])
			upper[axis] = max(upper[axis], v[axis])
		}
	}

	for axis := 0; axis < ndim; axis++ {
		lower[axis]--
		upper[axis]++
	}
	return lower, upper, nil
}
