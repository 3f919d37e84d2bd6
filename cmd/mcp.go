package cmd

import (
	"github.com/oreops/haulstat/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp [data-dir]",
	Short: "Start the Haulstat MCP server",
	Long:  `Launch an MCP server that allows AI agents to query haulage statistics via standard tools.`,
	Args:  cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Keep stdout clean for the protocol; setup logs go to stderr only.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, engine)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
