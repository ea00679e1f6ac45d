package foundation

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/tightbinding/lattice"
)

// Site is a cursor over one site of a Foundation. It holds no site data of
// its own: reads and SetValid go through the Foundation's arrays, so every
// Site with the same index observes the same state. Two Sites are equal
// when they address the same index of the same Foundation.
type Site struct {
	f   *Foundation
	idx int
}

// Site returns the cursor for flat index idx.
// Returns ErrSiteOutOfRange if idx is outside [0, NumSites).
func (f *Foundation) Site(idx int) (Site, error) {
	if idx < 0 || idx >= f.numSites {
		return Site{}, fmt.Errorf("Site(%d) of %d: %w", idx, f.numSites, ErrSiteOutOfRange)
	}
	return Site{f: f, idx: idx}, nil
}

// Sites yields every site in flat-index order.
func (f *Foundation) Sites() iter.Seq[Site] {
	return func(yield func(Site) bool) {
		for idx := 0; idx < f.numSites; idx++ {
			if !yield(Site{f: f, idx: idx}) {
				return
			}
		}
	}
}

// Slice yields, in flat-index order, every site whose lattice index along
// axis equals i. An axis outside 0..2 or an i outside the box yields nothing.
// Complexity: O(N / size[axis]).
func (f *Foundation) Slice(axis, i int) iter.Seq[Site] {
	return func(yield func(Site) bool) {
		if axis < 0 || axis > 2 || i < 0 || i >= f.size[axis] {
			return
		}
		lo, hi := lattice.Index3D{}, f.size
		lo[axis], hi[axis] = i, i+1
		for a := lo[0]; a < hi[0]; a++ {
			for b := lo[1]; b < hi[1]; b++ {
				for c := lo[2]; c < hi[2]; c++ {
					base := f.FlatIndex(lattice.Index3D{a, b, c}, 0)
					for sub := 0; sub < f.sizeN; sub++ {
						if !yield(Site{f: f, idx: base + sub}) {
							return
						}
					}
				}
			}
		}
	}
}

// Foundation returns the foundation the cursor points into.
func (s Site) Foundation() *Foundation { return s.f }

// Idx returns the flat site index.
func (s Site) Idx() int { return s.idx }

// Index returns the unit-cell index of the site.
func (s Site) Index() lattice.Index3D {
	index, _ := s.f.Decompose(s.idx)
	return index
}

// Sublattice returns the sublattice id of the site.
func (s Site) Sublattice() int { return s.idx % s.f.sizeN }

// Position returns the Cartesian position of the site.
func (s Site) Position() lattice.Cartesian { return s.f.positions[s.idx] }

// IsValid reports whether the site is part of the model.
func (s Site) IsValid() bool { return s.f.isValid[s.idx] }

// SetValid sets the validity flag of the site.
func (s Site) SetValid(valid bool) { s.f.isValid[s.idx] = valid }

// ForEachNeighbour calls fn for every hopping rule of the site's sublattice
// whose target lies inside the box, regardless of the target's validity.
// Targets outside the box are skipped.
func (s Site) ForEachNeighbour(fn func(neighbour Site, hopping lattice.Hopping)) {
	index, sub := s.f.Decompose(s.idx)
	for _, h := range s.f.lattice.Sublattice(sub).Hoppings {
		target := index.Add(h.RelativeIndex)
		if !target.InBox(s.f.size) {
			continue
		}
		fn(Site{f: s.f, idx: s.f.FlatIndex(target, h.To)}, h)
	}
}

// Neighbours returns the in-box neighbours of the site, one per hopping rule.
func (s Site) Neighbours() []Site {
	var out []Site
	s.ForEachNeighbour(func(n Site, _ lattice.Hopping) {
		out = append(out, n)
	})
	return out
}

func (s Site) String() string {
	index, sub := s.f.Decompose(s.idx)
	return fmt.Sprintf("site %d %v sub %d", s.idx, index, sub)
}
