// Package tightbinding builds the site skeleton of tight-binding lattice
// models: the candidate sites of a crystal lattice cut to a region, the
// edge sites trimmed for being under-connected, and the dense index of the
// survivors used to assemble a Hamiltonian.
//
// 🚀 What is in the box?
//
//	• Lattices: primitive vectors, sublattices, hopping rules with conjugates
//	• Shapes: polygon, rectangle, circle, line and free-form regions
//	• Foundation: bounds finding, position generation, containment, trimming
//	• Hamiltonian indices and sublattice ids for downstream matrix assembly
//	• Presets: chain, square, cubic and graphene monolayer
//
// Under the hood, everything is organized under these subpackages:
//
//	lattice/    — Cartesian, Index3D, Lattice, Sublattice and Hopping types
//	shape/      — the Shape interface and its implementations
//	linsolve/   — small dense least-squares solvers (gonum QR, pivoted Householder)
//	foundation/ — Foundation, Site cursors, EdgeTrimmer, HamiltonianIndices
//	repository/ — ready-made lattices
//	cmd/        — the tightbinding command-line tool
//
// Quick ASCII example, a chain cut by a line segment:
//
//	    x───o───o───o───o───o───x
//
//	the padding sites x lie outside the segment. With one required
//	neighbour the five o survive; with two, the end sites drop to a single
//	bond, are trimmed, and the loss cascades along the whole chain.
//
//	go get github.com/katalvlaran/tightbinding
package tightbinding
