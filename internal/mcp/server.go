// ABOUTME: MCP server setup for the fitdash tracker.
// ABOUTME: Wraps MCP server with tracker and food lookup access.
package mcp

import (
	"context"

	"github.com/harperreed/fitdash/internal/fooddb"
	"github.com/harperreed/fitdash/internal/tracker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with tracker access.
type Server struct {
	mcpServer *mcp.Server
	tracker   *tracker.Tracker
	food      *fooddb.Client
	searches  *fooddb.Latest
}

// NewServer creates a new MCP server over tr. food may be nil, in which
// case online food search is unavailable.
func NewServer(tr *tracker.Tracker, food *fooddb.Client) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fitdash",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		tracker:   tr,
		food:      food,
		searches:  fooddb.NewLatest(),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// day defaults an empty date to today.
func (s *Server) day(date string) string {
	if date == "" {
		return s.tracker.Today()
	}
	return date
}
