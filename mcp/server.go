package mcp

import (
	"github.com/azmarkets/wolt-scrap/internal/wolt"
	"github.com/mark3labs/mcp-go/server"
)

// Serve starts the MCP stdio server with all tools registered.
func Serve(client *wolt.Client) error {
	s := server.NewMCPServer(
		"wolt-scrap",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, client)

	return server.ServeStdio(s)
}
