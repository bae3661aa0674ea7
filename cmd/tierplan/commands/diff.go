package commands

import (
	"github.com/spf13/cobra"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/cmd/tierplan/handlers"
)

// Diff returns the command that compares two plans.
func Diff(opts *handlers.Options) *cobra.Command {
	var flags handlers.DiffFlags

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Show what changes between two stages or environments",
		Long: `Compile two plans of the configured deployment and list the resources
that are added, removed, renamed or resized between them.

With --stored the first plan is read from the configured store, so the
diff shows what would change relative to the last saved plan.`,
		Example: `  tierplan diff --from 11 --to 12
  tierplan diff --from 12 --to 12 --from-env dev --to-env prod`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Diff(cmd.Context(), *opts, flags)
		},
	}

	cmd.Flags().IntVar(&flags.FromStage, "from", 0, "Stage of the first plan")
	cmd.Flags().IntVar(&flags.ToStage, "to", 0, "Stage of the second plan")
	cmd.Flags().StringVar(&flags.FromEnv, "from-env", "", "Environment of the first plan (default: configured)")
	cmd.Flags().StringVar(&flags.ToEnv, "to-env", "", "Environment of the second plan (default: configured)")
	cmd.Flags().BoolVar(&flags.Stored, "stored", false, "Read the first plan from the store")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
