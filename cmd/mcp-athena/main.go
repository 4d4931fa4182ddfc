// Package main provides the entry point for the mcp-athena server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	mcpserver "github.com/txn2/mcp-athena/internal/server"
	"github.com/txn2/mcp-athena/pkg/health"
	"github.com/txn2/mcp-athena/pkg/toolkit"
)

// shutdownGrace bounds HTTP server drain time on SIGTERM.
const shutdownGrace = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type serverOptions struct {
	configPath  string
	transport   string
	address     string
	showVersion bool
}

func parseFlags() serverOptions {
	opts := serverOptions{}
	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.transport, "transport", "", "Transport type: stdio, http (overrides config)")
	flag.StringVar(&opts.address, "address", "", "Server address for HTTP transport (overrides config)")
	flag.BoolVar(&opts.showVersion, "version", false, "Show version and exit")
	flag.Parse()
	return opts
}

func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()
	return ctx
}

func run() error {
	opts := parseFlags()

	if opts.showVersion {
		fmt.Printf("mcp-athena version %s\n", mcpserver.Version)
		return nil
	}

	ctx := setupSignalHandler()

	mcpServer, tk, cfg, err := createServer(opts)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	defer func() { _ = tk.Close() }()

	applyOverrides(cfg, opts)

	switch cfg.Server.Transport {
	case "stdio":
		return runStdio(ctx, mcpServer)
	case "http":
		return runHTTP(ctx, mcpServer, cfg.Server.Address)
	default:
		return fmt.Errorf("unknown transport: %s", cfg.Server.Transport)
	}
}

func createServer(opts serverOptions) (*mcp.Server, toolkit.Toolkit, *mcpserver.Config, error) {
	logger := buildLogger(opts)
	if opts.configPath != "" {
		return mcpserver.NewWithConfig(opts.configPath, logger)
	}
	return mcpserver.NewWithDefaults(logger)
}

// buildLogger sets the process-wide logger. Logs go to stderr: stdout
// belongs to the stdio MCP transport.
func buildLogger(opts serverOptions) *slog.Logger {
	level := slog.LevelInfo
	if opts.configPath != "" {
		if cfg, err := mcpserver.LoadConfig(opts.configPath); err == nil {
			level = cfg.Logging.SlogLevel()
		}
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// applyOverrides lets CLI flags win over file configuration.
func applyOverrides(cfg *mcpserver.Config, opts serverOptions) {
	if opts.transport != "" {
		cfg.Server.Transport = opts.transport
	}
	if opts.address != "" {
		cfg.Server.Address = opts.address
	}
}

func runStdio(ctx context.Context, s *mcp.Server) error {
	if err := s.Run(ctx, &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("stdio transport: %w", err)
	}
	return nil
}

func runHTTP(ctx context.Context, s *mcp.Server, address string) error {
	checker := health.NewChecker()

	mux := http.NewServeMux()
	mux.Handle("/mcp", mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return s }, nil))
	checker.Register(mux)

	httpServer := &http.Server{
		Addr:              address,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("serving streamable http", "address", address)
		checker.SetReady()
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		checker.SetDraining()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down http server: %w", err)
		}
		return nil
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http transport: %w", err)
		}
		return nil
	}
}
