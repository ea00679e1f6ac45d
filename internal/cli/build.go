package cli

import (
	"errors"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// errNoConfig indicates a command ran without the root pre-run.
var errNoConfig = errors.New("cli: configuration not loaded")

// NewBuildCommand creates the build command.
func NewBuildCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build a foundation and report its site counts",
		Long: `Build the configured lattice over the configured region, trim
under-connected edge sites and report candidate, valid and trimmed site
counts together with the Hamiltonian dimension.`,
		Example: `  tightbinding build --preset graphene --region circle --radius 2
  tightbinding build --preset square --region primitive --size 5,5 -o markdown`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := GetConfig(cmd.Context())
			if cfg == nil {
				return errNoConfig
			}
			f, trimmed, err := buildFoundation(cfg, GetLogger(cmd.Context()))
			if err != nil {
				return err
			}
			report := NewReport(cfg.Lattice.Preset, f, trimmed)
			return renderTable(cmd.OutOrStdout(), cfg.Output, table.Row{"property", "value"}, report.Rows())
		},
	}
}
