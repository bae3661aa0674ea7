package commands

import (
	"github.com/spf13/cobra"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/cmd/tierplan/handlers"
)

// Catalog returns the command that lists catalog kinds.
func Catalog(opts *handlers.Options) *cobra.Command {
	var (
		stage  int
		source bool
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the resource kinds in the catalog",
		Long: `List the resource kinds of the configured catalog with their unlock
stage, dependencies, output key and SKU per environment.

Without a configuration file the builtin workshop catalog is listed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("stage") {
				stage = -1
			}
			return handlers.Catalog(cmd.Context(), *opts, stage, source)
		},
	}

	cmd.Flags().IntVarP(&stage, "stage", "s", 0, "Only list kinds unlocked at this stage")
	cmd.Flags().BoolVar(&source, "source", false, "Print the builtin catalog YAML")

	return cmd
}
