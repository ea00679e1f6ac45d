package foundation

import "github.com/katalvlaran/tightbinding/lattice"

// GeneratePositions returns the Cartesian position of every site in a box
// of size unit cells whose (0,0,0) cell sits at origin. Sites are emitted in
// flat-index order: a, then b, then c, then sublattice.
//
// The partial sums origin + a·v0 and + b·v1 are carried from the outer
// loops into the inner ones instead of being recomputed per site.
// Complexity: O(size.Prod()·n_sub) time and memory.
func GeneratePositions(origin lattice.Cartesian, size lattice.Index3D, l *lattice.Lattice) []lattice.Cartesian {
	nsub := l.NumSublattices()
	positions := make([]lattice.Cartesian, size.Prod()*nsub)

	offsets := make([]lattice.Cartesian, nsub)
	for sub := range offsets {
		offsets[sub] = l.Sublattice(sub).Offset
	}
	v0, v1, v2 := l.Vector(0), l.Vector(1), l.Vector(2)

	idx := 0
	for a := 0; a < size[0]; a++ {
		pa := origin.Add(v0.Scale(float64(a)))
		for b := 0; b < size[1]; b++ {
			pb := pa
			if b != 0 {
				pb = pa.Add(v1.Scale(float64(b)))
			}
			for c := 0; c < size[2]; c++ {
				pc := pb
				if c != 0 {
					pc = pb.Add(v2.Scale(float64(c)))
				}
				for sub := 0; sub < nsub; sub++ {
					positions[idx] = pc.Add(offsets[sub])
					idx++
				}
			}
		}
	}
	return positions
}
