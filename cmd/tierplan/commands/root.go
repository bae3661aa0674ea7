// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/cmd/tierplan/handlers"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/report"
)

// Root returns the root command for the tierplan CLI.
//
// Persistent flags select the configuration file, output format, log
// verbosity and an optional metrics textfile. The logger is attached to the
// command context before any subcommand runs.
func Root() *cobra.Command {
	var (
		opts      handlers.Options
		verbosity int
	)

	cmd := &cobra.Command{
		Use:           "tierplan",
		Short:         "Compile staged workshop infrastructure into deployment plans",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.Validate(); err != nil {
				return err
			}
			logger := report.NewLogger(os.Stderr, verbosity)
			cmd.SetContext(logr.NewContext(cmd.Context(), logger))
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (default: nearest tierplan.yaml)")
	cmd.PersistentFlags().StringVarP(&opts.Format, "output", "o", handlers.FormatText, "Output format: text, json or yaml")
	cmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (repeatable)")
	cmd.PersistentFlags().StringVar(&opts.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile")

	// Core commands
	cmd.AddCommand(Init())
	cmd.AddCommand(Compile(&opts))
	cmd.AddCommand(Validate(&opts))
	cmd.AddCommand(Diff(&opts))
	cmd.AddCommand(Batch(&opts))

	// Utility commands
	cmd.AddCommand(Catalog(&opts))
	cmd.AddCommand(MCPServer(&opts))
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
