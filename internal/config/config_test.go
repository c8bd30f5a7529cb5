package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigToml = `
[development]
host = "localhost"
port = 8080
log_level = "trace"
log_to_stdout = true
postgres_host = "localhost"
postgres_port = "5432"
postgres_db_name = "coachbit"
redis_host = "localhost"
redis_port = "6379"
modify_rate_limit_allowed_per_min = 30
session_ttl_hours = 24

[production]
host = ""
port = 9000
log_level = "debug"
logs_path = "/var/log/coachbit/service.log"
sentry_enabled = true
postgres_host = "db-host"
postgres_port = "5432"
postgres_db_name = "coachbit"
redis_host = "redis-host"
redis_port = "6379"
prometheus_metrics_host = ""
prometheus_metrics_port = "2112"
modify_rate_limit_allowed_per_min = 10
session_ttl_hours = 12
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigToml), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeTestConfig(t)

	t.Run("development", func(t *testing.T) {
		cfg, err := Load("development", path)
		require.NoError(t, err)
		assert.Equal(t, "development", cfg.Environment)
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "trace", cfg.LogLevel)
		assert.True(t, cfg.LogToStdout)
		assert.False(t, cfg.SentryEnabled)
		assert.Equal(t, 30, cfg.ModifyRateLimitAllowedPerMin)
		assert.Equal(t, 24, cfg.SessionTTLHours)
	})

	t.Run("production_short_name", func(t *testing.T) {
		cfg, err := Load("prod", path)
		require.NoError(t, err)
		assert.Equal(t, "prod", cfg.Environment)
		assert.Equal(t, 9000, cfg.Port)
		assert.True(t, cfg.SentryEnabled)
		assert.Equal(t, "/var/log/coachbit/service.log", cfg.LogsPath)
		assert.Equal(t, 12, cfg.SessionTTLHours)
	})

	t.Run("unknown_env", func(t *testing.T) {
		_, err := Load("staging", path)
		require.Error(t, err)
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := Load("development", filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
	})
}
