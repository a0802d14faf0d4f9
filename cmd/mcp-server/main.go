package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/roivaz/weather-mcp/internal/config"
	"github.com/roivaz/weather-mcp/internal/mcp"
)

func main() {
	root := &cobra.Command{
		Use:   "mcp-server",
		Short: "NWS weather MCP server",
		RunE:  run,
	}

	root.PersistentFlags().String("nws-base-url", "", "NWS API base URL")
	root.PersistentFlags().String("user-agent", "", "User-Agent header sent to the NWS API")
	root.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	srv := mcp.New(mcp.DefaultConfig())

	// Readiness notice goes to stderr; stdout belongs to the protocol.
	fmt.Fprintln(os.Stderr, "Weather MCP Server running on stdio")

	return srv.ServeStdio()
}
