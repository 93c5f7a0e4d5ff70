package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, ":8080", cfg.Server.Addr())
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "portfolio.db", cfg.Storage.DatabasePath)
	assert.Equal(t, "portfolio:", cfg.Storage.RedisPrefix)
	assert.Equal(t, "admin123", cfg.Admin.DefaultPassword)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTP.Host)
	assert.True(t, cfg.Visits.Enabled)
	assert.Equal(t, 365*24*time.Hour, cfg.Visits.Retention)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("STORAGE_DRIVER", " Redis ")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("TRACK_VISITS", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr())
	assert.Equal(t, DriverRedis, cfg.Storage.Driver)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.Visits.Enabled)
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestValidate(t *testing.T) {
	cases := map[string]struct {
		env     map[string]string
		wantErr string
	}{
		"unknown driver":    {map[string]string{"STORAGE_DRIVER": "mongo"}, "unknown STORAGE_DRIVER"},
		"redis without url": {map[string]string{"STORAGE_DRIVER": "redis"}, "REDIS_URL is required"},
		"bad port":          {map[string]string{"PORT": "0"}, "PORT must be between"},
		"bad log format":    {map[string]string{"LOG_FORMAT": "xml"}, "unknown LOG_FORMAT"},
		"bad retention":     {map[string]string{"VISIT_RETENTION": "-1h"}, "VISIT_RETENTION"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	cfg := Config{
		Server:  ServerConfig{Port: 8080},
		Log:     LogConfig{Format: "text"},
		Storage: StorageConfig{Driver: DriverSQLite},
		Visits:  VisitsConfig{Retention: time.Hour},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_PATH")
	assert.Contains(t, err.Error(), "ADMIN_DEFAULT_PASSWORD")
}

func TestMemoryDriverNeedsNothingElse(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
}
