package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("CONFIG_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "3306", cfg.Database.Port)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, 60, cfg.Redis.TTLSec)
	assert.Equal(t, "bizreview.events", cfg.AMQP.Exchange)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("PORT", "9090")
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("INSTANCE_CONNECTION_NAME", "proj:region:inst")
	t.Setenv("PUBLIC_BASE_URL", "https://api.example.com/")
	t.Setenv("AUTH_JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.False(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "proj:region:inst", cfg.Database.InstanceConnectionName)
	assert.Equal(t, "https://api.example.com", cfg.PublicBaseURL)
	assert.Equal(t, "s3cret", cfg.Auth.Secret)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("DB_MAX_IDLE_CONNS", "invalid")
	t.Setenv("DB_AUTO_MIGRATE", "maybe")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Database.MaxIdleConns)
	assert.True(t, cfg.Database.AutoMigrate)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bizreview.env")
	require.NoError(t, os.WriteFile(path, []byte("DB_NAME=fromfile\nREDIS_ADDR=cache:6379\n"), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("DB_NAME", "")
	t.Setenv("REDIS_ADDR", "override:6379")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "fromfile", cfg.Database.Name)
	assert.Equal(t, "override:6379", cfg.Redis.Addr)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}
