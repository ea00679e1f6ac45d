package lattice

import "errors"

var (
	// ErrNoVectors indicates a lattice was created without primitive vectors.
	ErrNoVectors = errors.New("lattice: at least one primitive vector is required")
	// ErrTooManyVectors indicates more than three primitive vectors were given.
	ErrTooManyVectors = errors.New("lattice: at most three primitive vectors are supported")
	// ErrZeroVector indicates a primitive vector of zero length.
	ErrZeroVector = errors.New("lattice: primitive vector has zero length")
	// ErrDuplicateSublattice indicates a sublattice name is already registered.
	ErrDuplicateSublattice = errors.New("lattice: duplicate sublattice name")
	// ErrUnknownSublattice indicates a referenced sublattice does not exist.
	ErrUnknownSublattice = errors.New("lattice: unknown sublattice")
	// ErrSelfHopping indicates a hopping from a site onto itself.
	ErrSelfHopping = errors.New("lattice: hopping at zero offset onto the same sublattice")
	// ErrDuplicateHopping indicates the same (offset, target) rule was added twice.
	ErrDuplicateHopping = errors.New("lattice: duplicate hopping")
	// ErrNegativeMinNeighbours indicates MinNeighbours < 0.
	ErrNegativeMinNeighbours = errors.New("lattice: min neighbours must be >= 0")
	// ErrNoSublattices indicates a lattice without any sublattice.
	ErrNoSublattices = errors.New("lattice: at least one sublattice is required")
	// ErrIndexDimension indicates a hopping offset along an axis the lattice does not span.
	ErrIndexDimension = errors.New("lattice: relative index exceeds lattice dimensionality")
)
