package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kmills/causalpath/internal/mcp"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server over stdio",
		Long: `Start a Model Context Protocol server exposing the simulator as tools:
causal_effect, causal_simulate, causal_fit, and causal_graph. Blocks until
the client disconnects.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _ := cmd.Flags().GetString("root")

			server, err := mcp.NewServer(&mcp.Config{
				Name:    "causalpath",
				Version: version,
				Root:    root,
			})
			if err != nil {
				return fmt.Errorf("create MCP server: %w", err)
			}

			return server.Run(context.Background())
		},
	}
}
