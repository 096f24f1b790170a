package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admanager/internal/config/configs"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, configs.DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "admanager.db", cfg.SQLite.Path)
	assert.Equal(t, configs.SchemeCounting, cfg.IDs.Scheme)
	assert.Equal(t, "admanager:", cfg.Redis.Prefix)
	assert.Equal(t, "localhost", cfg.Psql.Addr.Hostname())
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "redis")
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("ID_SCHEME", "timestamp")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("BIGQUERY_PROJECT_ID", "proj")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, configs.DriverRedis, cfg.Storage.Driver)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, configs.SchemeTimestamp, cfg.IDs.Scheme)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.Equal(t, "proj", cfg.BigQuery.ProjectID)
}

func TestLoadRejectsUnknownValues(t *testing.T) {
	t.Run("driver", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "mongo")
		_, err := Load()
		assert.ErrorContains(t, err, "mongo")
	})
	t.Run("scheme", func(t *testing.T) {
		t.Setenv("ID_SCHEME", "uuid")
		_, err := Load()
		assert.ErrorContains(t, err, "uuid")
	})
	t.Run("s3 bucket", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "s3")
		_, err := Load()
		assert.ErrorContains(t, err, "S3_BUCKET")
	})
}
