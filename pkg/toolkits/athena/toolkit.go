// Package athena provides an Athena toolkit for the MCP server. It exposes
// SQL execution against a fixed database as agent-callable tools, running
// each statement through Athena's asynchronous submit/poll/fetch cycle.
package athena

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/txn2/mcp-athena/pkg/query"
	athenaengine "github.com/txn2/mcp-athena/pkg/query/athena"
	"github.com/txn2/mcp-athena/pkg/toolkit"
)

// Tool names registered by this toolkit.
const (
	toolExecuteQuery   = "execute_athena_query"
	toolListTables     = "list_tables"
	toolDescribeTable  = "describe_table"
	toolGetTableSample = "get_table_sample"
)

// Toolkit implements the Athena toolkit.
type Toolkit struct {
	name   string
	config Config

	// engine is created on first tool call, not at construction: building
	// the real client walks the AWS credential chain and must not block
	// server startup. sync.OnceValues makes the init concurrency-safe.
	engine func() (query.Engine, error)
}

// New creates a new Athena toolkit. The engine client is initialized lazily
// on first use and reused for the process lifetime.
func New(name string, cfg Config) (*Toolkit, error) {
	cfg = applyDefaults(name, cfg)

	t := &Toolkit{name: name, config: cfg}
	t.engine = sync.OnceValues(func() (query.Engine, error) {
		return athenaengine.New(context.Background(), athenaengine.Config{
			Region:       cfg.Region,
			Workgroup:    cfg.Workgroup,
			MaxFetchRows: cfg.MaxFetchRows,
		})
	})
	return t, nil
}

// NewWithEngine creates a toolkit over an existing engine. Used by tests
// and callers that manage their own SDK configuration.
func NewWithEngine(name string, cfg Config, e query.Engine) (*Toolkit, error) {
	if e == nil {
		return nil, fmt.Errorf("engine is required")
	}
	cfg = applyDefaults(name, cfg)

	return &Toolkit{
		name:   name,
		config: cfg,
		engine: func() (query.Engine, error) { return e, nil },
	}, nil
}

// Kind returns the toolkit kind.
func (*Toolkit) Kind() string {
	return "athena"
}

// Name returns the toolkit instance name.
func (t *Toolkit) Name() string {
	return t.name
}

// Connection returns the connection name for logging.
func (t *Toolkit) Connection() string {
	return t.config.ConnectionName
}

// Config returns the toolkit configuration.
func (t *Toolkit) Config() Config {
	return t.config
}

// executeQueryInput defines the input schema for execute_athena_query.
type executeQueryInput struct {
	Query          string `json:"query"`
	OutputLocation string `json:"output_location,omitempty"`
}

// listTablesInput is empty since list_tables has no parameters.
type listTablesInput struct{}

// describeTableInput defines the input schema for describe_table.
type describeTableInput struct {
	TableName string `json:"table_name"`
}

// tableSampleInput defines the input schema for get_table_sample.
type tableSampleInput struct {
	TableName string `json:"table_name"`
	Limit     int    `json:"limit,omitempty"`
}

// RegisterTools registers Athena tools with the MCP server.
func (t *Toolkit) RegisterTools(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name: toolExecuteQuery,
		Description: fmt.Sprintf("Execute a SQL query on AWS Athena in the %s database. "+
			"Returns column names and a preview of the result rows.", t.config.Database),
	}, t.handleExecuteQuery)

	mcp.AddTool(s, &mcp.Tool{
		Name:        toolListTables,
		Description: fmt.Sprintf("List all tables in the %s database.", t.config.Database),
	}, t.handleListTables)

	mcp.AddTool(s, &mcp.Tool{
		Name:        toolDescribeTable,
		Description: fmt.Sprintf("Describe the schema of a specific table in %s.", t.config.Database),
	}, t.handleDescribeTable)

	mcp.AddTool(s, &mcp.Tool{
		Name: toolGetTableSample,
		Description: fmt.Sprintf("Get a sample of rows from a specific table in %s "+
			"(default %d rows).", t.config.Database, defaultSampleLimit),
	}, t.handleGetTableSample)
}

// Tools returns the list of tool names provided by this toolkit.
func (*Toolkit) Tools() []string {
	return []string{
		toolExecuteQuery,
		toolListTables,
		toolDescribeTable,
		toolGetTableSample,
	}
}

// handleExecuteQuery handles the execute_athena_query tool call.
func (t *Toolkit) handleExecuteQuery(ctx context.Context, _ *mcp.CallToolRequest, input executeQueryInput) (*mcp.CallToolResult, any, error) {
	if input.Query == "" {
		return errorResult("query is required"), nil, nil
	}
	return t.runQuery(ctx, input.Query, input.OutputLocation)
}

// handleListTables handles the list_tables tool call.
func (t *Toolkit) handleListTables(ctx context.Context, _ *mcp.CallToolRequest, _ listTablesInput) (*mcp.CallToolResult, any, error) {
	return t.runQuery(ctx, "SHOW TABLES IN "+t.config.Database, "")
}

// handleDescribeTable handles the describe_table tool call.
func (t *Toolkit) handleDescribeTable(ctx context.Context, _ *mcp.CallToolRequest, input describeTableInput) (*mcp.CallToolResult, any, error) {
	if err := validateTableName(input.TableName); err != nil {
		return errorResult(err.Error()), nil, nil //nolint:nilerr // MCP protocol: tool errors are returned in CallToolResult.IsError
	}
	return t.runQuery(ctx, fmt.Sprintf("DESCRIBE %s.%s", t.config.Database, input.TableName), "")
}

// handleGetTableSample handles the get_table_sample tool call.
func (t *Toolkit) handleGetTableSample(ctx context.Context, _ *mcp.CallToolRequest, input tableSampleInput) (*mcp.CallToolResult, any, error) {
	if err := validateTableName(input.TableName); err != nil {
		return errorResult(err.Error()), nil, nil //nolint:nilerr // MCP protocol: tool errors are returned in CallToolResult.IsError
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultSampleLimit
	}
	if err := validateSampleLimit(limit, t.config.MaxSampleLimit); err != nil {
		return errorResult(err.Error()), nil, nil //nolint:nilerr // MCP protocol: tool errors are returned in CallToolResult.IsError
	}

	return t.runQuery(ctx, fmt.Sprintf("SELECT * FROM %s.%s LIMIT %d", t.config.Database, input.TableName, limit), "")
}

// runQuery runs one submit/poll/fetch cycle and normalizes every failure
// mode into a text result. Tool handlers never propagate a Go error for
// query failures; the agent always receives readable text.
func (t *Toolkit) runQuery(ctx context.Context, sql, outputLocation string) (*mcp.CallToolResult, any, error) {
	engine, err := t.engine()
	if err != nil {
		return errorResult("initializing athena client: " + err.Error()), nil, nil //nolint:nilerr // MCP protocol: tool errors are returned in CallToolResult.IsError
	}

	if outputLocation == "" {
		outputLocation = t.config.OutputLocation
	}

	out, err := query.Run(ctx, engine, query.Request{
		SQL:            sql,
		Database:       t.config.Database,
		OutputLocation: outputLocation,
	}, query.RunOptions{
		Wait: query.WaitOptions{
			Interval:    time.Duration(t.config.PollInterval),
			MaxAttempts: t.config.MaxPollAttempts,
		},
		MaxRows: t.config.MaxFetchRows,
	})
	if err != nil {
		var timeout *query.TimeoutError
		if errors.As(err, &timeout) {
			return textResult(formatTimeout(timeout, time.Duration(t.config.PollInterval))), nil, nil
		}
		return errorResult(err.Error()), nil, nil //nolint:nilerr // MCP protocol: tool errors are returned in CallToolResult.IsError
	}

	return textResult(formatOutcome(out, t.config.PreviewRows)), nil, nil
}

// Close releases resources. The Athena SDK client holds no connections
// that need closing.
func (*Toolkit) Close() error {
	return nil
}

// textResult creates a success CallToolResult.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// errorResult creates an error CallToolResult.
func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: "Error: " + msg}},
		IsError: true,
	}
}

// Verify interface compliance.
var _ toolkit.Toolkit = (*Toolkit)(nil)
