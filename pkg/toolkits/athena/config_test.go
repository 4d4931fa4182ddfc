package athena

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestApplyDefaults(t *testing.T) {
	cfg := applyDefaults("prod", Config{})

	assert.Equal(t, defaultRegion, cfg.Region)
	assert.Equal(t, defaultDatabase, cfg.Database)
	assert.Equal(t, defaultOutputLocation, cfg.OutputLocation)
	assert.Equal(t, Duration(defaultPollInterval), cfg.PollInterval)
	assert.Equal(t, defaultMaxPollAttempts, cfg.MaxPollAttempts)
	assert.Equal(t, defaultPreviewRows, cfg.PreviewRows)
	assert.Equal(t, defaultMaxSampleLimit, cfg.MaxSampleLimit)
	assert.Equal(t, "prod", cfg.ConnectionName)
}

func TestApplyDefaults_PreservesExplicitValues(t *testing.T) {
	cfg := applyDefaults("prod", Config{
		Database:        "analytics",
		MaxPollAttempts: 60,
		ConnectionName:  "primary",
	})

	assert.Equal(t, "analytics", cfg.Database)
	assert.Equal(t, 60, cfg.MaxPollAttempts)
	assert.Equal(t, "primary", cfg.ConnectionName)
}

func TestDuration_UnmarshalYAML(t *testing.T) {
	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte("poll_interval: 500ms\n"), &cfg))
	assert.Equal(t, Duration(500*time.Millisecond), cfg.PollInterval)

	require.Error(t, yaml.Unmarshal([]byte("poll_interval: banana\n"), &cfg))
	require.Error(t, yaml.Unmarshal([]byte("poll_interval: [1]\n"), &cfg))
}
