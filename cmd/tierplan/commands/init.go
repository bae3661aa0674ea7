package commands

import (
	"github.com/spf13/cobra"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/cmd/tierplan/handlers"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/config"
)

// Init returns the command for interactively creating a configuration.
//
// Flags:
//
//	--file, -f: Path to output file (default "tierplan.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a tierplan.yaml",
		Long: `Interactively create a deployment configuration file.

The wizard asks for:

  - Base name and optional attendee suffix
  - Environment tier (dev, staging or prod)
  - Workshop stage
  - Azure region
  - Whether stage inversions in the catalog are errors`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "file", "f", config.DefaultConfigFilename, "Output file path")

	return cmd
}
