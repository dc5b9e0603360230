package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.RefreshTokenTTL)
	require.NotNil(t, cfg.Outbox)
	assert.Equal(t, 20, cfg.Outbox.BatchSize)
	assert.Equal(t, 8, cfg.Outbox.MaxAttempts)
	assert.Equal(t, 10*time.Minute, cfg.Outbox.DispatchLease)
	require.NotNil(t, cfg.Order)
	assert.Equal(t, "Asia/Jakarta", cfg.Order.Timezone)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Outbox: &OutboxConfig{BatchSize: 3, PollInterval: time.Second},
		Order:  &OrderConfig{Timezone: "UTC"},
	}
	cfg.HTTP.MaxRequestBodySize = "2MB"

	applyDefaults(cfg)

	assert.Equal(t, "2MB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 3, cfg.Outbox.BatchSize)
	assert.Equal(t, time.Second, cfg.Outbox.PollInterval)
	assert.Equal(t, "UTC", cfg.Order.Timezone)
}

func TestLoadDotEnv(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		err := loadDotEnv(filepath.Join(t.TempDir(), ".env"))
		require.NoError(t, err)
	})

	t.Run("exports variables", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("HARVEST_DOTENV_MARKER=loaded\n"), 0o600))
		t.Cleanup(func() { _ = os.Unsetenv("HARVEST_DOTENV_MARKER") })

		require.NoError(t, loadDotEnv(path))
		assert.Equal(t, "loaded", os.Getenv("HARVEST_DOTENV_MARKER"))
	})
}

func TestOrderConfigLocation(t *testing.T) {
	loc, err := (&OrderConfig{}).Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	loc, err = (&OrderConfig{Timezone: "UTC"}).Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	_, err = (&OrderConfig{Timezone: "Mars/Olympus"}).Location()
	assert.Error(t, err)
}
