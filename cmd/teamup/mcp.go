// ABOUTME: MCP server command implementation
// ABOUTME: Starts the TeamUp MCP server in stdio mode

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Aditya-web3/hack-team-up-now/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server (stdio mode)",
	Long: `Start the Model Context Protocol server for AI agent integration.

The MCP server communicates via stdio, allowing AI agents to search
teammates and send messages on behalf of the acting user.`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	server, err := mcp.NewServer(svc, currentUser())
	if err != nil {
		return err
	}

	logger.Info("mcp server starting", "user", currentUser())
	return server.Serve(ctx)
}
