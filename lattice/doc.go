// Package lattice describes the periodic structure a tight-binding model is
// built on: up to three primitive vectors, the sublattices of one unit cell
// and the hopping rules connecting them.
//
// What:
//
//   - Cartesian is a point or vector in real space (always 3 components).
//   - Index3D addresses a unit cell along each primitive vector; axes the
//     lattice does not span stay at 0.
//   - Lattice owns the vectors, the ordered sublattices and MinNeighbours,
//     the smallest number of neighbours a site must keep to stay in a model.
//
// Hoppings:
//
//	AddHopping(rel, "A", "B", t) registers A→B at +rel on A and the
//	conjugate B→A at -rel on B, so every rule is mirrored and neighbour
//	counts are symmetric.
//
// Errors:
//
//   - ErrNoVectors / ErrTooManyVectors: vector count outside 1..3.
//   - ErrZeroVector: a primitive vector of zero length.
//   - ErrDuplicateSublattice / ErrUnknownSublattice: name bookkeeping.
//   - ErrSelfHopping / ErrDuplicateHopping: rejected hopping rules.
//   - ErrNegativeMinNeighbours, ErrNoSublattices.
package lattice
