package repository

import (
	"math"

	"github.com/katalvlaran/tightbinding/lattice"
)

// Graphene constants.
const (
	A    = 0.24595        // [nm] unit cell length
	ACC  = 0.142          // [nm] carbon-carbon distance
	T    = -2.8           // [eV] nearest neighbour hopping
	Hbar = 6.58211899e-16 // [eV·s] reduced Planck constant
)

// FermiVelocity returns 3/(2ħ)·|t|·a_cc in nm/s.
func FermiVelocity() float64 {
	return 3 / (2 * Hbar) * math.Abs(T) * ACC
}

// GrapheneMonolayer returns the two-sublattice honeycomb lattice with
// nearest-neighbour hopping T. Sublattice A sits at (0, -a_cc/2) and B at
// (0, a_cc/2); every site has 3 neighbours and MinNeighbours is 2, so
// dangling atoms are trimmed from flake edges.
func GrapheneMonolayer() *lattice.Lattice {
	l := mustNew(
		lattice.Cartesian{A / 2, A / 2 * sqrt3, 0},
		lattice.Cartesian{-A / 2, A / 2 * sqrt3, 0},
	)
	mustSublattice(l, "A", lattice.Cartesian{0, -ACC / 2, 0})
	mustSublattice(l, "B", lattice.Cartesian{0, ACC / 2, 0})
	must(l.AddHopping(lattice.Index3D{0, 0, 0}, "A", "B", T))
	must(l.AddHopping(lattice.Index3D{-1, 0, 0}, "A", "B", T))
	must(l.AddHopping(lattice.Index3D{0, -1, 0}, "A", "B", T))
	must(l.SetMinNeighbours(2))
	return l
}
