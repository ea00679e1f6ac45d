package cli

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/katalvlaran/tightbinding/foundation"
	"github.com/katalvlaran/tightbinding/lattice"
)

// Report summarises a built foundation.
type Report struct {
	Preset         string
	NDim           int
	Sublattices    []string
	MinNeighbours  int
	Size           lattice.Index3D
	NumSites       int
	Valid          int
	Trimmed        int
	ValidPerSub    []int
	Components     int
	HamiltonianDim int
}

// NewReport collects the report of f. trimmed is the number of sites
// invalidated by edge trimming.
func NewReport(preset string, f *foundation.Foundation, trimmed int) Report {
	l := f.Lattice()
	r := Report{
		Preset:        preset,
		NDim:          l.NDim(),
		MinNeighbours: l.MinNeighbours(),
		Size:          f.Size(),
		NumSites:      f.NumSites(),
		Valid:         f.CountValid(),
		Trimmed:       trimmed,
		ValidPerSub:   make([]int, l.NumSublattices()),
	}
	for id := 0; id < l.NumSublattices(); id++ {
		r.Sublattices = append(r.Sublattices, l.Sublattice(id).Name)
	}

	valid := f.IsValid()
	for flat, id := range foundation.SublatticeIDs(f) {
		if valid[flat] {
			r.ValidPerSub[id]++
		}
	}
	r.Components = len(foundation.Components(f))
	r.HamiltonianDim = foundation.NewHamiltonianIndices(f).NumValidSites()
	return r
}

// Rows returns the report as property/value rows.
func (r Report) Rows() []table.Row {
	rows := []table.Row{
		{"lattice", r.Preset},
		{"ndim", r.NDim},
		{"sublattices", strings.Join(r.Sublattices, " ")},
		{"min_neighbours", r.MinNeighbours},
		{"size", r.Size.String()},
		{"num_sites", r.NumSites},
		{"valid", r.Valid},
		{"trimmed", r.Trimmed},
	}
	for id, n := range r.ValidPerSub {
		rows = append(rows, table.Row{"valid_" + r.Sublattices[id], n})
	}
	return append(rows,
		table.Row{"components", r.Components},
		table.Row{"hamiltonian_dim", r.HamiltonianDim},
	)
}
