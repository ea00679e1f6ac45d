package foundation

import "errors"

var (
	// ErrNilLattice indicates a nil *lattice.Lattice was passed.
	ErrNilLattice = errors.New("foundation: lattice is nil")
	// ErrNilShape indicates a nil shape.Shape was passed.
	ErrNilShape = errors.New("foundation: shape is nil")
	// ErrBadSize indicates a primitive size < 1, or > 1 on an axis the lattice does not span.
	ErrBadSize = errors.New("foundation: invalid primitive size")
	// ErrNoVertices indicates a shape without boundary vertices.
	ErrNoVertices = errors.New("foundation: shape has no vertices")
	// ErrSingularLattice indicates the primitive vectors cannot be inverted.
	ErrSingularLattice = errors.New("foundation: lattice vectors are linearly dependent")
	// ErrContainsLength indicates Shape.Contains returned the wrong number of flags.
	ErrContainsLength = errors.New("foundation: contains result length mismatch")
	// ErrSiteOutOfRange indicates a flat site index outside [0, NumSites).
	ErrSiteOutOfRange = errors.New("foundation: site index out of range")
)
