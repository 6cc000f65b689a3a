// Package mcpserver exposes the vault operations as MCP (Model Context
// Protocol) tools over stdio or streamable HTTP.
package mcpserver

import (
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const serverVersion = "1.0.0"

// Server wraps the MCP server with one registered backend.
type Server struct {
	mcp *server.MCPServer
}

func newServer(name string) *Server {
	return &Server{
		mcp: server.NewMCPServer(
			name,
			serverVersion,
			server.WithToolCapabilities(false),
			server.WithResourceCapabilities(false, false),
		),
	}
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// HTTPHandler returns the streamable-HTTP transport for mounting on a
// router.
func (s *Server) HTTPHandler() http.Handler {
	return server.NewStreamableHTTPServer(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// alias re-registers a tool definition under a second name, keeping the
// schema intact.
func alias(t mcp.Tool, name string) mcp.Tool {
	t.Name = name
	return t
}

// textOrError renders a handler result per the transport contract: failures
// become a string starting with "Error:", never a raised fault.
func textOrError(out string, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return mcp.NewToolResultError("Error: " + err.Error()), nil
	}
	return mcp.NewToolResultText(out), nil
}
