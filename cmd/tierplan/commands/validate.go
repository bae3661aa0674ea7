package commands

import (
	"github.com/spf13/cobra"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/cmd/tierplan/handlers"
)

// Validate returns the command that checks configuration and catalog.
func Validate(opts *handlers.Options) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration and catalog",
		Long: `Validate the configuration file, the catalog it refers to and that the
configured stage compiles.

With --strict, dependencies on kinds unlocked at a later stage are errors
and any warning fails validation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Validate(cmd.Context(), *opts, strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Treat warnings as errors")

	return cmd
}
