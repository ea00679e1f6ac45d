// Package cli provides the command-line interface for tightbinding.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/tightbinding/foundation"
	"github.com/katalvlaran/tightbinding/internal/config"
	"github.com/spf13/cobra"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// configKey is used to store config in context.
type configKey struct{}

// loggerKey is used to store logger in context.
type loggerKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "tightbinding",
		Short: "Build tight-binding lattice foundations",
		Long: `tightbinding cuts a crystal lattice to a region, trims under-connected
edge sites and reports the resulting site set and Hamiltonian indexing.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "version" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: cfg.SlogLevel(),
			}))
			if cfg.File != "" {
				logger.Debug("using config file", "path", cfg.File)
			}

			ctx := context.WithValue(cmd.Context(), configKey{}, cfg)
			ctx = context.WithValue(ctx, loggerKey{}, logger)
			cmd.SetContext(ctx)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./"+config.DefaultConfigFile+")")
	config.BindFlags(rootCmd.PersistentFlags())

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.OutputTable, config.OutputMarkdown, config.OutputCSV}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(NewBuildCommand())
	rootCmd.AddCommand(NewSitesCommand())
	rootCmd.AddCommand(NewVersionCommand(Version))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	return nil
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

// buildFoundation constructs the configured foundation and counts the
// sites trimming removed.
func buildFoundation(cfg *config.Config, logger *slog.Logger) (f *foundation.Foundation, trimmed int, err error) {
	l, err := cfg.NewLattice()
	if err != nil {
		return nil, 0, err
	}
	opts := []foundation.Option{
		foundation.WithLogger(logger),
		foundation.WithSolver(cfg.NewSolver()),
		foundation.WithOnInvalidate(func(s foundation.Site) {
			trimmed++
			logger.Debug("site trimmed", "site", s.Idx(), "index", s.Index(), "sublattice", s.Sublattice())
		}),
	}

	if cfg.Region.IsPrimitive() {
		f, err = foundation.NewFromPrimitive(l, cfg.Region.Primitive(), opts...)
		return f, 0, err
	}
	s, err := cfg.Region.NewShape()
	if err != nil {
		return nil, 0, err
	}
	f, err = foundation.NewFromShape(l, s, opts...)
	return f, trimmed, err
}
