package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oldgaffers/fetch-doc/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server exposing the fetch_document
tool for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC.
Use --port to start an HTTP server instead.

Examples:
  # Stdio mode (default)
  fetchdoc mcp

  # HTTP mode
  fetchdoc mcp --port 8081`,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	app, err := buildApplication(cmd.Context())
	if err != nil {
		return err
	}
	defer app.Close()

	server, err := mcp.NewServer(app.document)
	if err != nil {
		return err
	}

	if port > 0 {
		return server.RunHTTP(cmd.Context(), fmt.Sprintf(":%d", port))
	}
	return server.Run(cmd.Context())
}
