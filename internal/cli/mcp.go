package cli

import (
	"context"

	"github.com/spf13/cobra"

	mcpserver "rustmap/internal/mcp"
)

var mcpCacheCapacity int

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server exposing the rust_outline tool on stdio",
	Long: `Mcp starts an MCP (Model Context Protocol) server on stdio. It exposes a
single rust_outline tool that takes Rust source text and returns the
extracted symbol outline as JSON. Results are cached in memory by content
hash; extraction is a pure function of the source and options, so cached
results never go stale.`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().IntVar(&mcpCacheCapacity, "cache-capacity", 256, "In-memory result cache capacity (entries)")
}

func runMCP(cmd *cobra.Command, args []string) error {
	srv, err := mcpserver.NewServer(mcpCacheCapacity)
	if err != nil {
		return err
	}
	defer srv.Close()

	return srv.Serve(context.Background())
}
