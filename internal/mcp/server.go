// Package mcp exposes the outline extractor as an MCP tool over stdio.
package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"rustmap/internal/outline"
)

// Server manages the MCP server lifecycle around one extractor and its
// result cache.
type Server struct {
	cache *outline.Cache
	mcp   *server.MCPServer
}

// NewServer creates the MCP server and registers the rust_outline tool.
func NewServer(cacheCapacity int) (*Server, error) {
	cache, err := outline.NewCache(outline.New(), cacheCapacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create result cache: %w", err)
	}

	mcpServer := server.NewMCPServer(
		"rustmap",
		"1.0.0",
		server.WithToolCapabilities(true),
	)
	AddRustOutlineTool(mcpServer, cache)

	return &Server{
		cache: cache,
		mcp:   mcpServer,
	}, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown.
func (s *Server) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting MCP server on stdio")
		if err := server.ServeStdio(s.mcp); err != nil {
			errCh <- fmt.Errorf("MCP server error: %w", err)
		}
	}()

	select {
	case <-sigCh:
		slog.Info("received shutdown signal, stopping")
		cancel()
		return nil
	case err := <-errCh:
		cancel()
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close releases the server's resources.
func (s *Server) Close() {
	s.cache.Close()
}
