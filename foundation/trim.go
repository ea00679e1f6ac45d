package foundation

import "github.com/katalvlaran/tightbinding/lattice"

// CountNeighbours returns, per site, the number of hopping rules of its
// sublattice whose target cell lies inside the box. Validity is ignored:
// only structurally absent neighbours are discounted.
// Complexity: O(N·h).
func CountNeighbours(f *Foundation) []int {
	counts := make([]int, f.numSites)
	for idx := 0; idx < f.numSites; idx++ {
		index, sub := f.Decompose(idx)
		hoppings := f.lattice.Sublattice(sub).Hoppings
		n := len(hoppings)
		for _, h := range hoppings {
			if !index.Add(h.RelativeIndex).InBox(f.size) {
				n--
			}
		}
		counts[idx] = n
	}
	return counts
}

// TrimEdges invalidates the sites that fall below Lattice.MinNeighbours
// once invalid neighbours are discounted, cascading until nothing changes.
// It returns the number of sites it invalidated. Running it again on a
// trimmed foundation invalidates nothing.
// Complexity: O(N·h).
func TrimEdges(f *Foundation) int {
	t := trimmer{
		f:      f,
		counts: CountNeighbours(f),
		min:    f.lattice.MinNeighbours(),
	}
	for idx := 0; idx < f.numSites; idx++ {
		if !f.isValid[idx] {
			t.clear(idx)
		}
	}
	f.cfg.logger.Debug("foundation: edges trimmed", "removed", t.removed, "min_neighbours", t.min)
	return t.removed
}

// trimmer holds the mutable state of one TrimEdges pass.
type trimmer struct {
	f       *Foundation
	counts  []int
	min     int
	queue   []int
	removed int
}

// clear withdraws the invalid site start from its valid neighbours and
// follows every neighbour that drops below the threshold. A site whose
// count is already 0 has nothing left to withdraw; after processing, a
// site's count is set to 0 so it is never processed twice.
func (t *trimmer) clear(start int) {
	t.queue = append(t.queue[:0], start)
	for head := 0; head < len(t.queue); head++ {
		idx := t.queue[head]
		if t.counts[idx] == 0 {
			continue
		}
		Site{f: t.f, idx: idx}.ForEachNeighbour(func(n Site, _ lattice.Hopping) {
			if !n.IsValid() {
				return
			}
			t.counts[n.idx]--
			if t.counts[n.idx] < t.min {
				n.SetValid(false)
				t.removed++
				t.f.cfg.onInvalidate(n)
				t.queue = append(t.queue, n.idx)
			}
		})
		t.counts[idx] = 0
	}
}
