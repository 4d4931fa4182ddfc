// Package middleware provides MCP protocol-level middleware.
package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// methodToolsCall is the MCP method name for tool invocations.
const methodToolsCall = "tools/call"

// LoggingConfig configures the tool-call logging middleware.
type LoggingConfig struct {
	Enabled bool `yaml:"enabled"`
}

// MCPLoggingMiddleware creates MCP protocol-level middleware that logs
// tools/call requests through slog: tool name, duration, and whether the
// call produced an error result. Other methods are logged at Debug.
func MCPLoggingMiddleware(cfg LoggingConfig, logger *slog.Logger) mcp.Middleware {
	return func(next mcp.MethodHandler) mcp.MethodHandler {
		if !cfg.Enabled {
			return next
		}
		if logger == nil {
			logger = slog.Default()
		}

		return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
			if method != methodToolsCall {
				logger.DebugContext(ctx, "mcp request", "method", method)
				return next(ctx, method, req)
			}

			toolName, err := extractToolName(req)
			if err != nil {
				toolName = "unknown"
			}

			start := time.Now()
			result, err := next(ctx, method, req)
			logToolCall(ctx, logger, toolName, time.Since(start), result, err)

			return result, err
		}
	}
}

// logToolCall emits one log record per completed tool call.
func logToolCall(ctx context.Context, logger *slog.Logger, toolName string, elapsed time.Duration, result mcp.Result, err error) {
	attrs := []any{
		"tool", toolName,
		"duration_ms", elapsed.Milliseconds(),
	}

	if err != nil {
		logger.ErrorContext(ctx, "tool call failed", append(attrs, "error", err)...)
		return
	}

	if ctr, ok := result.(*mcp.CallToolResult); ok && ctr.IsError {
		logger.WarnContext(ctx, "tool call returned error result", attrs...)
		return
	}

	logger.InfoContext(ctx, "tool call completed", attrs...)
}

// extractToolName extracts the tool name from a tools/call request.
func extractToolName(req mcp.Request) (string, error) {
	params := req.GetParams()
	if params == nil {
		return "", fmt.Errorf("missing params")
	}

	callParams, ok := params.(*mcp.CallToolParamsRaw)
	if !ok || callParams == nil {
		return "", fmt.Errorf("unexpected params type: %T", params)
	}
	if callParams.Name == "" {
		return "", fmt.Errorf("missing tool name")
	}

	return callParams.Name, nil
}
