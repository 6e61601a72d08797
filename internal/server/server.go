// Package server exposes the conversion pipeline as MCP tools, so editor
// agents can regenerate task configurations without shelling out.
package server

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"taskbridge.dev/internal/logging"
)

// Server wraps the MCP server around the conversion pipeline.
type Server struct {
	mcpServer *server.MCPServer
	version   string
}

// NewServer creates the MCP server and registers the conversion tools.
func NewServer(version string) *Server {
	mcpServer := server.NewMCPServer(
		"taskbridge",
		version,
		server.WithToolCapabilities(true),
	)

	s := &Server{
		mcpServer: mcpServer,
		version:   version,
	}

	s.registerConvertTool()
	s.registerPreviewTool()
	s.registerListEditorsTool()

	return s
}

// Serve starts the MCP server over stdio.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeHTTP starts the MCP server as a standalone HTTP server using
// StreamableHTTP transport, shutting down gracefully on SIGINT/SIGTERM.
func (s *Server) ServeHTTP(addr string) error {
	httpServer := server.NewStreamableHTTPServer(s.mcpServer)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logging.Info("shutting down HTTP server")
		if err := httpServer.Shutdown(context.Background()); err != nil {
			logging.Error("error shutting down HTTP server", "error", err)
		}
	}()

	logging.Info("taskbridge MCP server listening", "addr", normalizeAddr(addr))
	return httpServer.Start(addr)
}

// normalizeAddr expands a bare port like ":8080" to "http://localhost:8080".
func normalizeAddr(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr
	}
	if !strings.HasPrefix(addr, "http://") && !strings.HasPrefix(addr, "https://") {
		return "http://" + addr
	}
	return addr
}
