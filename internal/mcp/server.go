// Package mcp provides an MCP (Model Context Protocol) server for causalpath.
package mcp

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kmills/causalpath/internal/store"
)

// Server wraps the MCP SDK server and exposes the simulator over stdio.
type Server struct {
	server *sdk.Server
	store  *store.RunStore
	root   string
}

// Config holds server configuration.
type Config struct {
	Name    string // Server name (e.g., "causalpath")
	Version string // Server version
	Root    string // Project root directory
}

// NewServer creates a new MCP server with causalpath tools.
func NewServer(cfg *Config) (*Server, error) {
	runStore, err := store.NewRunStore(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to create run store: %w", err)
	}

	mcpServer := sdk.NewServer(&sdk.Implementation{
		Name:    cfg.Name,
		Version: cfg.Version,
	}, &sdk.ServerOptions{
		InitializedHandler: func(ctx context.Context, req *sdk.InitializedRequest) {
			// Client initialized, ready to serve
		},
	})

	s := &Server{
		server: mcpServer,
		store:  runStore,
		root:   cfg.Root,
	}

	if err := s.registerTools(); err != nil {
		runStore.Close()
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	return s, nil
}

// Run starts the MCP server over stdio transport.
// This blocks until the client disconnects or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	err := s.server.Run(ctx, &sdk.StdioTransport{})

	s.store.Close()

	return err
}

// Close closes the server and releases resources.
func (s *Server) Close() error {
	return s.store.Close()
}
