// Package repository provides ready-made lattices.
//
// The presets are built from constants and cannot fail; a construction
// error here is a programming error and panics.
package repository

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/tightbinding/lattice"
)

// DefaultHopping is the nearest-neighbour energy of the simple presets.
const DefaultHopping = -1.0

// Chain returns a 1D chain with lattice constant a, one sublattice "A" and
// nearest-neighbour hopping along ±x.
func Chain(a float64) *lattice.Lattice {
	l := mustNew(lattice.Cartesian{a, 0, 0})
	mustSublattice(l, "A", lattice.Cartesian{})
	must(l.AddHopping(lattice.Index3D{1, 0, 0}, "A", "A", DefaultHopping))
	return l
}

// Square returns a 2D square lattice with 4 nearest neighbours per site.
func Square(a float64) *lattice.Lattice {
	l := mustNew(lattice.Cartesian{a, 0, 0}, lattice.Cartesian{0, a, 0})
	mustSublattice(l, "A", lattice.Cartesian{})
	must(l.AddHopping(lattice.Index3D{1, 0, 0}, "A", "A", DefaultHopping))
	must(l.AddHopping(lattice.Index3D{0, 1, 0}, "A", "A", DefaultHopping))
	return l
}

// Cubic returns a simple cubic lattice with 6 nearest neighbours per site.
func Cubic(a float64) *lattice.Lattice {
	l := mustNew(lattice.Cartesian{a, 0, 0}, lattice.Cartesian{0, a, 0}, lattice.Cartesian{0, 0, a})
	mustSublattice(l, "A", lattice.Cartesian{})
	must(l.AddHopping(lattice.Index3D{1, 0, 0}, "A", "A", DefaultHopping))
	must(l.AddHopping(lattice.Index3D{0, 1, 0}, "A", "A", DefaultHopping))
	must(l.AddHopping(lattice.Index3D{0, 0, 1}, "A", "A", DefaultHopping))
	return l
}

func mustNew(vectors ...lattice.Cartesian) *lattice.Lattice {
	l, err := lattice.New(vectors...)
	must(err)
	return l
}

func mustSublattice(l *lattice.Lattice, name string, offset lattice.Cartesian) {
	_, err := l.AddSublattice(name, offset, 0)
	must(err)
}

func must(err error) {
	if err != nil {
		panic("repository: " + err.Error())
	}
}

var sqrt3 = math.Sqrt(3)

// ErrUnknownPreset indicates ByName was given an unregistered name.
var ErrUnknownPreset = errors.New("repository: unknown lattice preset")

// Presets lists the names accepted by ByName.
var Presets = []string{"chain", "square", "cubic", "graphene"}

// ByName returns a preset lattice. constant overrides the lattice constant
// of the simple presets (0 selects 1); graphene ignores it.
func ByName(name string, constant float64) (*lattice.Lattice, error) {
	if constant == 0 {
		constant = 1
	}
	switch name {
	case "chain":
		return Chain(constant), nil
	case "square":
		return Square(constant), nil
	case "cubic":
		return Cubic(constant), nil
	case "graphene":
		return GrapheneMonolayer(), nil
	default:
		return nil, fmt.Errorf("ByName(%q): %w", name, ErrUnknownPreset)
	}
}
