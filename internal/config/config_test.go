package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	vars := map[string]string{
		"GEOTEMP_PRIMARY__ENV":                 "development",
		"GEOTEMP_SERVER__PORT":                 "8080",
		"GEOTEMP_SERVER__READ_TIMEOUT":         "30",
		"GEOTEMP_SERVER__WRITE_TIMEOUT":        "30",
		"GEOTEMP_SERVER__IDLE_TIMEOUT":         "60",
		"GEOTEMP_SERVER__CORS_ALLOWED_ORIGINS": "http://localhost:3000, http://localhost:5173",
		"GEOTEMP_DATABASE__HOST":               "localhost",
		"GEOTEMP_DATABASE__PORT":               "5432",
		"GEOTEMP_DATABASE__USER":               "geotemp",
		"GEOTEMP_DATABASE__PASSWORD":           "secret",
		"GEOTEMP_DATABASE__NAME":               "geotemp",
		"GEOTEMP_DATABASE__SSL_MODE":           "disable",
		"GEOTEMP_DATABASE__MAX_OPEN_CONNS":     "10",
		"GEOTEMP_DATABASE__MAX_IDLE_CONNS":     "5",
		"GEOTEMP_DATABASE__CONN_MAX_LIFETIME":  "300",
		"GEOTEMP_DATABASE__CONN_MAX_IDLE_TIME": "60",
		"GEOTEMP_REDIS__ADDRESS":               "localhost:6379",
	}
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "database.host", envKey("GEOTEMP_DATABASE__HOST"))
	assert.Equal(t, "database.ssl_mode", envKey("GEOTEMP_DATABASE__SSL_MODE"))
	assert.Equal(t, "observability.logging.level", envKey("GEOTEMP_OBSERVABILITY__LOGGING__LEVEL"))
}

func TestLoadConfig(t *testing.T) {
	t.Run("applies defaults for optional blocks", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.Server.CORSAllowedOrigins)

		require.NotNil(t, cfg.Observability)
		assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
		assert.Equal(t, "development", cfg.Observability.Environment)

		require.NotNil(t, cfg.RateLimit)
		assert.Equal(t, int64(120), cfg.RateLimit.Requests)
		assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	})

	t.Run("missing required value", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("GEOTEMP_DATABASE__HOST", "")

		_, err := LoadConfig()
		assert.Error(t, err)
	})
}

func TestObservabilityConfig_Validate(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	assert.NoError(t, cfg.Validate())

	cfg.Logging.Level = "verbose"
	assert.Error(t, cfg.Validate())
}

func TestObservabilityConfig_HealthCheckEnabled(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	assert.True(t, cfg.HealthCheckEnabled("database"))
	assert.False(t, cfg.HealthCheckEnabled("kafka"))

	cfg.HealthChecks.Enabled = false
	assert.False(t, cfg.HealthCheckEnabled("database"))
}
