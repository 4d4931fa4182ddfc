package server

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/txn2/mcp-athena/pkg/middleware"
	athenatk "github.com/txn2/mcp-athena/pkg/toolkits/athena"
)

// Config holds the complete server configuration.
type Config struct {
	Server  ServerConfig    `yaml:"server"`
	Athena  athenatk.Config `yaml:"athena"`
	Logging LoggingConfig   `yaml:"logging"`
}

// ServerConfig configures the MCP server.
type ServerConfig struct {
	Name      string `yaml:"name"`
	Version   string `yaml:"version"`
	Transport string `yaml:"transport"` // "stdio", "http"
	Address   string `yaml:"address"`
}

// LoggingConfig configures slog output and the tool-call middleware.
type LoggingConfig struct {
	Level string `yaml:"level"` // "debug", "info", "warn", "error"

	// DisableToolCall turns off per-call logging; on by default.
	DisableToolCall bool `yaml:"disable_tool_call"`
}

// ToolCall returns the middleware configuration.
func (c LoggingConfig) ToolCall() middleware.LoggingConfig {
	return middleware.LoggingConfig{Enabled: !c.DisableToolCall}
}

// SlogLevel parses the configured level, defaulting to info.
func (c LoggingConfig) SlogLevel() slog.Level {
	switch c.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoadConfig loads configuration from a file.
// The path is expected to come from command line arguments, controlled by the administrator.
func LoadConfig(path string) (*Config, error) {
	// #nosec G304 -- path is from CLI args, controlled by admin
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables
	data = []byte(expandEnvVars(string(data)))

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// expandEnvVars expands ${VAR} patterns in the string.
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	return re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		return os.Getenv(varName)
	})
}

// applyDefaults applies default values to the config. Athena toolkit
// defaults are applied by the toolkit itself.
func applyDefaults(cfg *Config) {
	if cfg.Server.Name == "" {
		cfg.Server.Name = "mcp-athena"
	}
	if cfg.Server.Version == "" {
		cfg.Server.Version = Version
	}
	if cfg.Server.Transport == "" {
		cfg.Server.Transport = "stdio"
	}
	if cfg.Server.Address == "" {
		cfg.Server.Address = ":8080"
	}
}
