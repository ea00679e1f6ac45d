package lattice

import (
	"fmt"
	"math"
)

// Cartesian is a point or displacement in real space.
type Cartesian [3]float64

// Add returns c + o.
func (c Cartesian) Add(o Cartesian) Cartesian {
	return Cartesian{c[0] + o[0], c[1] + o[1], c[2] + o[2]}
}

// Sub returns c - o.
func (c Cartesian) Sub(o Cartesian) Cartesian {
	return Cartesian{c[0] - o[0], c[1] - o[1], c[2] - o[2]}
}

// Scale returns s·c.
func (c Cartesian) Scale(s float64) Cartesian {
	return Cartesian{s * c[0], s * c[1], s * c[2]}
}

// Dot returns the scalar product of c and o.
func (c Cartesian) Dot(o Cartesian) float64 {
	return c[0]*o[0] + c[1]*o[1] + c[2]*o[2]
}

// Norm returns the Euclidean length of c.
func (c Cartesian) Norm() float64 {
	return math.Sqrt(c.Dot(c))
}

// Index3D addresses a unit cell by its integer coordinate along each
// primitive vector. Unused axes are 0.
type Index3D [3]int

// Add returns i + o component-wise.
func (i Index3D) Add(o Index3D) Index3D {
	return Index3D{i[0] + o[0], i[1] + o[1], i[2] + o[2]}
}

// Sub returns i - o component-wise.
func (i Index3D) Sub(o Index3D) Index3D {
	return Index3D{i[0] - o[0], i[1] - o[1], i[2] - o[2]}
}

// Neg returns -i.
func (i Index3D) Neg() Index3D {
	return Index3D{-i[0], -i[1], -i[2]}
}

// Prod returns the product of the three components.
func (i Index3D) Prod() int {
	return i[0] * i[1] * i[2]
}

// InBox reports whether 0 <= i[k] < size[k] on every axis.
// Complexity: O(1).
func (i Index3D) InBox(size Index3D) bool {
	return i[0] >= 0 && i[0] < size[0] &&
		i[1] >= 0 && i[1] < size[1] &&
		i[2] >= 0 && i[2] < size[2]
}

func (i Index3D) String() string {
	return fmt.Sprintf("(%d, %d, %d)", i[0], i[1], i[2])
}

// Hopping is a directed neighbour relation from the sublattice that owns it
// to sublattice To in the unit cell displaced by RelativeIndex.
type Hopping struct {
	RelativeIndex Index3D
	To            int
	Energy        float64
}

// Sublattice is one site type of the unit cell.
type Sublattice struct {
	Name     string
	Offset   Cartesian
	Onsite   float64
	Hoppings []Hopping
}
