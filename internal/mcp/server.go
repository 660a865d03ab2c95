package mcp

import (
	"sync/atomic"

	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/ffsite/internal/site"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the template catalog and the
// tutorials to agents.
type Server struct {
	snap     atomic.Pointer[site.Snapshot]
	toolName string
	pageSize int
	mcp      *server.MCPServer
}

// NewServer creates a new MCP server over snap.
func NewServer(snap *site.Snapshot, toolName string, pageSize int) *Server {
	s := &Server{
		toolName: toolName,
		pageSize: pageSize,
	}
	s.snap.Store(snap)

	s.mcp = server.NewMCPServer(
		"ffsite",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(searchTemplatesTool, s.handleSearchTemplates)
	s.mcp.AddTool(getTemplateTool, s.handleGetTemplate)
	s.mcp.AddTool(listTutorialsTool, s.handleListTutorials)
	s.mcp.AddTool(getTutorialTool, s.handleGetTutorial)
}

// Update swaps in freshly loaded content.
func (s *Server) Update(snap *site.Snapshot) { s.snap.Store(snap) }

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
