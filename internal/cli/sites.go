package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/katalvlaran/tightbinding/foundation"
	"github.com/spf13/cobra"
)

// DefaultSiteLimit is the number of sites listed when --limit is not set.
const DefaultSiteLimit = 20

// NewSitesCommand creates the sites command.
func NewSitesCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "sites",
		Short: "List the valid sites of a foundation",
		Long: `List the valid sites of the configured foundation in Hamiltonian
order: Hamiltonian index, flat index, lattice index, sublattice and position.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := GetConfig(cmd.Context())
			if cfg == nil {
				return errNoConfig
			}
			f, _, err := buildFoundation(cfg, GetLogger(cmd.Context()))
			if err != nil {
				return err
			}
			rows := siteRows(f, limit)
			return renderTable(cmd.OutOrStdout(), cfg.Output,
				table.Row{"h", "flat", "index", "sublattice", "x", "y", "z"}, rows)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", DefaultSiteLimit, "maximum number of sites to list (0 = all)")
	return cmd
}

// siteRows lists up to limit valid sites; limit <= 0 lists all of them.
func siteRows(f *foundation.Foundation, limit int) []table.Row {
	h := foundation.NewHamiltonianIndices(f)
	l := f.Lattice()

	var rows []table.Row
	for s := range f.Sites() {
		if !s.IsValid() {
			continue
		}
		if limit > 0 && len(rows) == limit {
			break
		}
		p := s.Position()
		rows = append(rows, table.Row{
			h.Index(s.Idx()),
			s.Idx(),
			s.Index().String(),
			l.Sublattice(s.Sublattice()).Name,
			fmt.Sprintf("%.4f", p[0]),
			fmt.Sprintf("%.4f", p[1]),
			fmt.Sprintf("%.4f", p[2]),
		})
	}
	return rows
}
