package athena

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// defaultDatabase is the logical database all statements run against.
	defaultDatabase = "drm_text2sql_db"

	// defaultOutputLocation is where Athena writes full result sets.
	defaultOutputLocation = "s3://glab-drm-query-results/"

	// defaultRegion is the Athena service region.
	defaultRegion = "eu-west-1"

	// defaultPollInterval is the pause between status polls.
	defaultPollInterval = 1 * time.Second

	// defaultMaxPollAttempts bounds the poll loop.
	defaultMaxPollAttempts = 30

	// defaultPreviewRows is how many data rows are rendered in a report.
	defaultPreviewRows = 10

	// defaultSampleLimit is the row count for get_table_sample.
	defaultSampleLimit = 10

	// defaultMaxSampleLimit caps the caller-supplied sample limit.
	defaultMaxSampleLimit = 1000
)

// Duration is a time.Duration that unmarshals from YAML strings like "2s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config holds Athena toolkit configuration.
type Config struct {
	Region          string   `yaml:"region"`
	Database        string   `yaml:"database"`
	OutputLocation  string   `yaml:"output_location"`
	Workgroup       string   `yaml:"workgroup"`
	PollInterval    Duration `yaml:"poll_interval"`
	MaxPollAttempts int      `yaml:"max_poll_attempts"`
	PreviewRows     int      `yaml:"preview_rows"`
	MaxFetchRows    int      `yaml:"max_fetch_rows"`
	MaxSampleLimit  int      `yaml:"max_sample_limit"`
	ConnectionName  string   `yaml:"connection_name"`
}

// applyDefaults applies default values to the configuration.
func applyDefaults(name string, cfg Config) Config {
	if cfg.Region == "" {
		cfg.Region = defaultRegion
	}
	if cfg.Database == "" {
		cfg.Database = defaultDatabase
	}
	if cfg.OutputLocation == "" {
		cfg.OutputLocation = defaultOutputLocation
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = Duration(defaultPollInterval)
	}
	if cfg.MaxPollAttempts <= 0 {
		cfg.MaxPollAttempts = defaultMaxPollAttempts
	}
	if cfg.PreviewRows <= 0 {
		cfg.PreviewRows = defaultPreviewRows
	}
	if cfg.MaxSampleLimit <= 0 {
		cfg.MaxSampleLimit = defaultMaxSampleLimit
	}
	if cfg.ConnectionName == "" {
		cfg.ConnectionName = name
	}
	return cfg
}
