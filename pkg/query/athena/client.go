// Package athena implements the query engine abstraction on AWS Athena.
package athena

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/athena"
)

const (
	// defaultRegion matches the deployment the server was built for.
	defaultRegion = "eu-west-1"

	// defaultFetchPageSize is the GetQueryResults page size. The API caps
	// MaxResults at 1000.
	defaultFetchPageSize = 1000

	// defaultMaxFetchRows bounds how many rows Results will accumulate
	// across pages, header row included.
	defaultMaxFetchRows = 1000
)

// API is the subset of the AWS SDK Athena client used by the engine.
// Narrowing to an interface keeps the engine mockable in tests.
type API interface {
	StartQueryExecution(ctx context.Context, params *athena.StartQueryExecutionInput, optFns ...func(*athena.Options)) (*athena.StartQueryExecutionOutput, error)
	GetQueryExecution(ctx context.Context, params *athena.GetQueryExecutionInput, optFns ...func(*athena.Options)) (*athena.GetQueryExecutionOutput, error)
	GetQueryResults(ctx context.Context, params *athena.GetQueryResultsInput, optFns ...func(*athena.Options)) (*athena.GetQueryResultsOutput, error)
	StopQueryExecution(ctx context.Context, params *athena.StopQueryExecutionInput, optFns ...func(*athena.Options)) (*athena.StopQueryExecutionOutput, error)
}

// Verify the SDK client satisfies the interface.
var _ API = (*athena.Client)(nil)

// Config holds Athena engine configuration.
type Config struct {
	Region        string `yaml:"region"`
	Workgroup     string `yaml:"workgroup"`
	FetchPageSize int32  `yaml:"fetch_page_size"`
	MaxFetchRows  int    `yaml:"max_fetch_rows"`
}

// applyDefaults applies default values to the configuration.
func applyDefaults(cfg Config) Config {
	if cfg.Region == "" {
		cfg.Region = defaultRegion
	}
	if cfg.FetchPageSize <= 0 || cfg.FetchPageSize > defaultFetchPageSize {
		cfg.FetchPageSize = defaultFetchPageSize
	}
	if cfg.MaxFetchRows <= 0 {
		cfg.MaxFetchRows = defaultMaxFetchRows
	}
	return cfg
}

// New creates an engine backed by a real Athena client using the ambient
// AWS credential chain.
func New(ctx context.Context, cfg Config) (*Engine, error) {
	cfg = applyDefaults(cfg)

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	return NewWithAPI(athena.NewFromConfig(awsCfg), cfg), nil
}

// NewWithAPI creates an engine with an existing client. Used by tests and
// callers that manage their own SDK configuration.
func NewWithAPI(api API, cfg Config) *Engine {
	return &Engine{api: api, cfg: applyDefaults(cfg)}
}
