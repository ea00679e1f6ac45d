package foundation

import (
	"fmt"

	"github.com/katalvlaran/tightbinding/lattice"
	"github.com/katalvlaran/tightbinding/shape"
)

// Foundation is the candidate site set of a lattice model: one position and
// one validity flag per site of a box of unit cells.
// Invariant: len(positions) == len(isValid) == NumSites() for its lifetime.
type Foundation struct {
	lattice   *lattice.Lattice
	size      lattice.Index3D
	sizeN     int
	numSites  int
	positions []lattice.Cartesian
	isValid   []bool
	cfg       config
}

func newFoundation(l *lattice.Lattice, size lattice.Index3D, cfg config) *Foundation {
	sizeN := l.NumSublattices()
	return &Foundation{
		lattice:  l,
		size:     size,
		sizeN:    sizeN,
		numSites: size.Prod() * sizeN,
		cfg:      cfg,
	}
}

// NewFromPrimitive builds a periodic block centred on the Cartesian origin.
// Every site is valid and no trimming takes place.
// Returns ErrNilLattice, lattice validation errors, or ErrBadSize.
func NewFromPrimitive(l *lattice.Lattice, p Primitive, opts ...Option) (*Foundation, error) {
	if l == nil {
		return nil, ErrNilLattice
	}
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("NewFromPrimitive: %w", err)
	}
	if err := p.validate(l); err != nil {
		return nil, fmt.Errorf("NewFromPrimitive: %w", err)
	}

	f := newFoundation(l, p.Size, gatherOptions(opts))

	// origin = -½·Σ (size[i]-1)·v[i]
	var width lattice.Cartesian
	for i := 0; i < l.NDim(); i++ {
		width = width.Add(l.Vector(i).Scale(float64(f.size[i] - 1)))
	}
	f.positions = GeneratePositions(width.Scale(-0.5), f.size, l)
	f.isValid = make([]bool, f.numSites)
	for i := range f.isValid {
		f.isValid[i] = true
	}

	f.cfg.logger.Debug("foundation: primitive built", "size", f.size, "num_sites", f.numSites)
	return f, nil
}

// NewFromShape builds the box of cells that bounds s, keeps the sites s
// contains, and trims the sites left with fewer than
// Lattice.MinNeighbours neighbours.
// Returns ErrNilLattice, ErrNilShape, lattice validation errors,
// ErrNoVertices, ErrSingularLattice or ErrContainsLength.
func NewFromShape(l *lattice.Lattice, s shape.Shape, opts ...Option) (*Foundation, error) {
	if l == nil {
		return nil, ErrNilLattice
	}
	if s == nil {
		return nil, ErrNilShape
	}
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("NewFromShape: %w", err)
	}
	cfg := gatherOptions(opts)

	lower, upper, err := FindBounds(s, l, cfg.solver)
	if err != nil {
		return nil, fmt.Errorf("NewFromShape: %w", err)
	}
	f := newFoundation(l, upper.Sub(lower).Add(lattice.Index3D{1, 1, 1}), cfg)
	cfg.logger.Debug("foundation: bounds found", "lower", lower, "upper", upper, "size", f.size)

	origin := s.Offset()
	for i := 0; i < l.NDim(); i++ {
		origin = origin.Add(l.Vector(i).Scale(float64(lower[i])))
	}
	f.positions = GeneratePositions(origin, f.size, l)

	f.isValid = s.Contains(f.positions)
	if len(f.isValid) != f.numSites {
		return nil, fmt.Errorf("NewFromShape: got %d flags for %d sites: %w", len(f.isValid), f.numSites, ErrContainsLength)
	}

	removed := TrimEdges(f)
	cfg.logger.Debug("foundation: shape built",
		"num_sites", f.numSites, "trimmed", removed, "valid", f.CountValid())
	return f, nil
}

// Lattice returns the lattice the foundation was built from.
func (f *Foundation) Lattice() *lattice.Lattice { return f.lattice }

// Size returns the number of unit cells along each axis.
func (f *Foundation) Size() lattice.Index3D { return f.size }

// NumSublattices returns the number of sites per unit cell.
func (f *Foundation) NumSublattices() int { return f.sizeN }

// NumSites returns size.Prod()·NumSublattices().
func (f *Foundation) NumSites() int { return f.numSites }

// Positions returns a copy of all site positions in flat-index order.
func (f *Foundation) Positions() []lattice.Cartesian {
	out := make([]lattice.Cartesian, len(f.positions))
	copy(out, f.positions)
	return out
}

// IsValid returns a copy of all validity flags in flat-index order.
func (f *Foundation) IsValid() []bool {
	out := make([]bool, len(f.isValid))
	copy(out, f.isValid)
	return out
}

// CountValid returns the number of valid sites.
// Complexity: O(N).
func (f *Foundation) CountValid() int {
	n := 0
	for _, v := range f.isValid {
		if v {
			n++
		}
	}
	return n
}

// FlatIndex encodes (index, sublattice) into a flat site index. The
// arguments must lie inside the box; use Index3D.InBox to check.
// Complexity: O(1).
func (f *Foundation) FlatIndex(index lattice.Index3D, sublattice int) int {
	return ((index[0]*f.size[1]+index[1])*f.size[2]+index[2])*f.sizeN + sublattice
}

// Decompose is the inverse of FlatIndex.
// Complexity: O(1).
func (f *Foundation) Decompose(flat int) (index lattice.Index3D, sublattice int) {
	sublattice = flat % f.sizeN
	cell := flat / f.sizeN
	index[2] = cell % f.size[2]
	cell /= f.size[2]
	index[1] = cell % f.size[1]
	index[0] = cell / f.size[1]
	return index, sublattice
}
