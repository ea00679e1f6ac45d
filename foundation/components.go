package foundation

import "github.com/katalvlaran/tightbinding/lattice"

// Components finds the connected fragments of valid sites, where two valid
// sites are connected when a hopping rule joins them.
// Returns one slice of flat indices per fragment. Fragments are ordered by
// their lowest flat index; sites within a fragment are in breadth-first
// order from that site.
//
// Time:   O(N·h).
// Memory: O(N) for visited flags and output.
func Components(f *Foundation) [][]int {
	seen := make([]bool, f.numSites)
	var comps [][]int

	for i0 := 0; i0 < f.numSites; i0++ {
		if !f.isValid[i0] || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true

		for qi := 0; qi < len(queue); qi++ {
			Site{f: f, idx: queue[qi]}.ForEachNeighbour(func(n Site, _ lattice.Hopping) {
				if n.IsValid() && !seen[n.idx] {
					seen[n.idx] = true
					queue = append(queue, n.idx)
				}
			})
		}
		comps = append(comps, queue)
	}
	return comps
}
