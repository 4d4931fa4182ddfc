// Package server provides a factory for creating the MCP server.
package server

import (
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/txn2/mcp-athena/pkg/middleware"
	"github.com/txn2/mcp-athena/pkg/toolkit"
	athenatk "github.com/txn2/mcp-athena/pkg/toolkits/athena"
)

// Version is set at build time.
var Version = "dev"

// New creates an MCP server with the Athena toolkit registered and the
// tool-call logging middleware installed.
func New(cfg *Config, logger *slog.Logger) (*mcp.Server, toolkit.Toolkit, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    cfg.Server.Name,
		Version: cfg.Server.Version,
	}, nil)

	tk, err := athenatk.New("athena", cfg.Athena)
	if err != nil {
		return nil, nil, fmt.Errorf("creating athena toolkit: %w", err)
	}
	tk.RegisterTools(mcpServer)

	mcpServer.AddReceivingMiddleware(middleware.MCPLoggingMiddleware(cfg.Logging.ToolCall(), logger))

	return mcpServer, tk, nil
}

// NewWithConfig creates a server from a configuration file.
func NewWithConfig(path string, logger *slog.Logger) (*mcp.Server, toolkit.Toolkit, *Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, nil, nil, err
	}

	s, tk, err := New(cfg, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	return s, tk, cfg, nil
}

// NewWithDefaults creates a server with default configuration.
func NewWithDefaults(logger *slog.Logger) (*mcp.Server, toolkit.Toolkit, *Config, error) {
	cfg := DefaultConfig()
	s, tk, err := New(cfg, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	return s, tk, cfg, nil
}
