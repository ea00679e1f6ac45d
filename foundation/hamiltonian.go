package foundation

// InvalidIndex marks a site that has no Hamiltonian row.
const InvalidIndex = -1

// HamiltonianIndices maps flat site indices to dense Hamiltonian indices.
// Valid sites are numbered 0, 1, ... in ascending flat-index order; invalid
// sites map to InvalidIndex. Read-only after construction.
type HamiltonianIndices struct {
	indices       []int
	numValidSites int
}

// NewHamiltonianIndices numbers the valid sites of a trimmed foundation.
// Complexity: O(N).
func NewHamiltonianIndices(f *Foundation) *HamiltonianIndices {
	h := &HamiltonianIndices{indices: make([]int, f.numSites)}
	for i, valid := range f.isValid {
		if valid {
			h.indices[i] = h.numValidSites
			h.numValidSites++
		} else {
			h.indices[i] = InvalidIndex
		}
	}
	return h
}

// Index returns the Hamiltonian index of a flat site, or InvalidIndex for
// invalid sites and indices outside the foundation.
func (h *HamiltonianIndices) Index(site int) int {
	if site < 0 || site >= len(h.indices) {
		return InvalidIndex
	}
	return h.indices[site]
}

// NumValidSites returns the Hamiltonian dimension.
func (h *HamiltonianIndices) NumValidSites() int { return h.numValidSites }

// Indices returns a copy of the full flat → Hamiltonian index map.
func (h *HamiltonianIndices) Indices() []int {
	out := make([]int, len(h.indices))
	copy(out, h.indices)
	return out
}

// SublatticeIDs returns the sublattice id of every site in flat-index
// order: 0, 1, ..., n_sub-1 repeated once per unit cell.
// Complexity: O(N).
func SublatticeIDs(f *Foundation) []int {
	ids := make([]int, f.numSites)
	for i := 0; i < f.numSites; {
		for id := 0; id < f.sizeN; id, i = id+1, i+1 {
			ids[i] = id
		}
	}
	return ids
}
