package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithEnv_SampleConfig(t *testing.T) {
	cfg, err := LoadWithEnv[Config]("config")

	require.NoError(t, err)
	assert.Equal(t, "billdesk", cfg.Env.ServiceName)
	assert.Equal(t, 8090, cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	assert.Equal(t, "http://localhost:8000/api/v1", cfg.Gateway.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Notify.DefaultDuration)
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	t.Setenv("GATEWAY_BASEURL", "http://staging.billing.internal/api/v1")
	t.Setenv("HTTP_PORT", "9100")

	cfg, err := LoadWithEnv[Config]("config")

	require.NoError(t, err)
	assert.Equal(t, "http://staging.billing.internal/api/v1", cfg.Gateway.BaseURL)
	assert.Equal(t, 9100, cfg.HTTP.Port)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("nonexistent")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestNew_AppliesDefaults(t *testing.T) {
	cfg, err := New()

	require.NoError(t, err)
	// The sample file leaves the credential path empty; New resolves it to
	// the per-user config directory.
	assert.NotEmpty(t, cfg.Credentials.Path)
	assert.Contains(t, cfg.Credentials.Path, "billdesk")
	assert.Positive(t, cfg.Gateway.Timeout)
}
