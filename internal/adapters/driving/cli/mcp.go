package cli

import (
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/belmqadem/Image-Resizer/internal/adapters/driving/mcp"
)

var mcpPort int

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Expose imageshrink to MCP clients",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve resize tools over MCP",
	Long: `Serve the resize_image, image_info, output_directory and
open_output_folder tools to a Model Context Protocol client.

Without --port the server speaks JSON-RPC on stdin/stdout, which is what
desktop clients expect when they launch "imageshrink mcp serve" themselves.
With --port it listens for streamable HTTP on localhost.`,
	Example: `  imageshrink mcp serve
  imageshrink mcp serve -p 8080`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntVarP(&mcpPort, "port", "p", 0, "listen for HTTP on this port instead of stdio")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	server, err := mcp.NewServer(&mcp.Ports{
		Coordinator: coordinator,
		Preview:     previewService,
		Settings:    settingsService,
	})
	if err != nil {
		return err
	}

	if mcpPort <= 0 {
		return server.Run(cmd.Context())
	}

	addr := net.JoinHostPort("localhost", strconv.Itoa(mcpPort))
	fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://%s\n", addr)
	return server.RunHTTP(cmd.Context(), addr)
}
