package commands

import (
	"github.com/spf13/cobra"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/cmd/tierplan/handlers"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/compiler"
)

// Batch returns the command that compiles a plan per roster attendee.
func Batch(opts *handlers.Options) *cobra.Command {
	var flags handlers.BatchFlags

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Compile one plan per attendee and check names are unique",
		Long: `Compile one plan per attendee listed in a roster file. Attendees inherit
every field of the configuration they do not set themselves.

The command fails if two attendees would get a resource with the same name,
for example because their suffixes collide after truncation.`,
		Example: `  tierplan batch --roster attendees.yaml
  tierplan batch --roster attendees.yaml --save -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Batch(cmd.Context(), *opts, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.RosterPath, "roster", "r", "", "Path to the roster file")
	cmd.Flags().IntVarP(&flags.Parallel, "parallel", "p", compiler.DefaultBatchLimit, "Maximum concurrent compilations")
	cmd.Flags().BoolVar(&flags.Save, "save", false, "Save every plan to the configured store")
	_ = cmd.MarkFlagRequired("roster")

	return cmd
}
