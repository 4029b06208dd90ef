package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/haste-cli/internal/adapters/driving/mcp"
	"github.com/custodia-labs/haste-cli/internal/core/ports/driving"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can publish
and read pastes.

By default, the server communicates over stdio using JSON-RPC.
Use --port to start an HTTP server instead.

Examples:
  # Stdio mode (default)
  haste mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  haste mcp serve --port 8080

Assistant configuration:
  {
    "mcpServers": {
      "haste": {
        "command": "/path/to/haste",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	server, err := mcp.NewServer(mcpPorts())
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}

// mcpPorts adapts the command services to the MCP server.
func mcpPorts() *mcp.Ports {
	ports := &mcp.Ports{
		Settings: settingsService,
		History:  historyService,
	}
	if sessions != nil {
		factory := sessions
		ports.Sessions = func() driving.SessionController {
			session, _ := factory(nil, nil)
			return session
		}
	}
	return ports
}
