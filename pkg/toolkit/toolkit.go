// Package toolkit defines the interface composable toolkits implement so
// the server can register them uniformly. This package has zero internal
// dependencies to avoid import cycles between the server layer and toolkit
// implementations.
package toolkit

import "github.com/modelcontextprotocol/go-sdk/mcp"

// Toolkit is the interface all composable toolkits must implement.
type Toolkit interface {
	// Kind returns the toolkit type (e.g., "athena").
	Kind() string

	// Name returns the instance name from config.
	Name() string

	// Connection returns the connection name for logging.
	Connection() string

	// RegisterTools registers all tools with the MCP server.
	RegisterTools(s *mcp.Server)

	// Tools returns a list of tool names provided by this toolkit.
	Tools() []string

	// Close releases resources.
	Close() error
}
