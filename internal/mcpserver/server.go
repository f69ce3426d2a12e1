// Package mcpserver exposes the sports tools and cached resources over the
// Model Context Protocol. Tool handlers compose the Sportradar client, the
// parser, and the cache; every failure comes back to the host as a
// descriptive error result, never a protocol fault.
package mcpserver

import (
	"log/slog"
	"net/http"

	"github.com/mark3labs/mcp-go/server"

	"github.com/scorebridge/scorebridge/internal/cache"
	"github.com/scorebridge/scorebridge/internal/geocode"
	"github.com/scorebridge/scorebridge/internal/parser"
	"github.com/scorebridge/scorebridge/internal/provider/sportradar"
)

const (
	serverName    = "scorebridge"
	serverVersion = "1.0.0"
)

// Server wires tool handlers to their dependencies.
type Server struct {
	mcp      *server.MCPServer
	client   *sportradar.Client
	parser   *parser.Parser
	store    *cache.Store
	geocoder *geocode.Client
	logger   *slog.Logger
}

// New builds the MCP server and registers all tools and resources.
func New(client *sportradar.Client, p *parser.Parser, store *cache.Store, geocoder *geocode.Client, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		client:   client,
		parser:   p,
		store:    store,
		geocoder: geocoder,
		logger:   logger,
	}

	s.mcp = server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
		server.WithRecovery(),
	)

	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio runs the server over stdin/stdout until the host disconnects.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// SSEHandler returns the HTTP handler for the SSE transport. baseURL is the
// externally visible address the message endpoint is advertised under.
func (s *Server) SSEHandler(baseURL string) http.Handler {
	return server.NewSSEServer(s.mcp, server.WithBaseURL(baseURL))
}
