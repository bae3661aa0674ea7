package commands

import (
	"github.com/spf13/cobra"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/cmd/tierplan/handlers"
)

// MCPServer returns the command that serves the compiler over MCP.
func MCPServer(opts *handlers.Options) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "mcp-server",
		Short: "Serve plan compilation to MCP clients over stdio",
		Long: `Start a Model Context Protocol server on stdin and stdout.

Tools:
  compile_plan   compile a plan for a stage, environment and base name
  list_catalog   list catalog kinds, optionally only those unlocked at a stage

Resources:
  tierplan://catalog   the loaded catalog as JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.MCPServer(cmd.Context(), *opts, version, save)
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Save compiled plans to the configured store")

	return cmd
}
