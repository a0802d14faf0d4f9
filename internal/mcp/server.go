package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP *server.MCPServer
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		"weather",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Register tools with their proper schemas using the mcp-go builder
	// pattern.
	toolDefinitions := map[string]mcp.Tool{
		"get-alerts": mcp.NewTool("get-alerts",
			mcp.WithDescription("Get weather alerts for a state"),
			mcp.WithString("state",
				mcp.Required(),
				mcp.MinLength(2),
				mcp.MaxLength(2),
				mcp.Description("Two-letter state code (e.g. CA, NY)"),
			),
		),
		"get-forecast": mcp.NewTool("get-forecast",
			mcp.WithDescription("Get weather forecast for a location"),
			mcp.WithNumber("latitude",
				mcp.Required(),
				mcp.Min(-90),
				mcp.Max(90),
				mcp.Description("Latitude of the location"),
			),
			mcp.WithNumber("longitude",
				mcp.Required(),
				mcp.Min(-180),
				mcp.Max(180),
				mcp.Description("Longitude of the location"),
			),
		),
	}

	for name, adapter := range cfg.ToolAdapters {
		mcpServer.AddTool(toolDefinitions[name], adapter.ToolAdapter)
	}

	return &Server{MCP: mcpServer}
}

// ServeStdio attaches the server to stdin/stdout and blocks until the host
// closes the session.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.MCP)
}
