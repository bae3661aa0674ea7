package commands

import (
	"github.com/spf13/cobra"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/cmd/tierplan/handlers"
)

// Compile returns the command that compiles one deployment plan.
func Compile(opts *handlers.Options) *cobra.Command {
	var (
		flags handlers.CompileFlags
		stage int
	)

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile the deployment plan for the configured stage",
		Long: `Compile the deployment plan for the configured stage and environment.

The plan lists every catalog resource with its name, sizing, tags and
dependencies. Resources the stage has not unlocked are listed as inactive
and their outputs are absent.

Flags override the configuration file and TIERPLAN_* environment variables.`,
		Example: `  tierplan compile
  tierplan compile --stage 12 -e prod -o json
  tierplan compile --disable openai-account --save`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("stage") {
				flags.Stage = &stage
			}
			return handlers.Compile(cmd.Context(), *opts, flags)
		},
	}

	cmd.Flags().IntVarP(&stage, "stage", "s", 0, "Workshop stage to compile")
	cmd.Flags().StringVarP(&flags.Environment, "environment", "e", "", "Environment tier: dev, staging or prod")
	cmd.Flags().StringVar(&flags.Suffix, "suffix", "", "Name suffix, e.g. attendee initials")
	cmd.Flags().StringSliceVar(&flags.Disabled, "disable", nil, "Kinds to switch off (repeatable)")
	cmd.Flags().BoolVar(&flags.Save, "save", false, "Save the plan to the configured store")

	return cmd
}
