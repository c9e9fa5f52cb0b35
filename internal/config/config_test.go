package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "database:\n  user: feed\n  dbname: feed\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 20, cfg.Feed.DefaultLimit)
	assert.Equal(t, 100, cfg.Feed.MaxLimit)
	assert.Equal(t, "postgres", cfg.Reconcile.Lock)
	assert.Equal(t, time.Duration(0), cfg.Reconcile.Interval)
	assert.Equal(t, "cms_articles", cfg.RabbitMQ.QueueName)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_ExpandsEnvInFile(t *testing.T) {
	t.Setenv("FEED_TEST_DB_PASSWORD", "s3cret")
	path := writeConfig(t, "database:\n  password: ${FEED_TEST_DB_PASSWORD}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Database.Password)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("FEEDHUB_DATABASE_HOST", "db.internal")
	t.Setenv("FEEDHUB_RECONCILE_INTERVAL", "1h")
	t.Setenv("FEEDHUB_FEED_MAX_LIMIT", "50")
	path := writeConfig(t, "database:\n  host: localhost\nreconcile:\n  interval: 5m\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, time.Hour, cfg.Reconcile.Interval)
	assert.Equal(t, 50, cfg.Feed.MaxLimit)
}

func TestLoad_RejectsUnknownLock(t *testing.T) {
	path := writeConfig(t, "reconcile:\n  lock: etcd\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "read config file")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "h", Port: 5433, User: "u", Password: "p", DBName: "d", SSLMode: "disable"}
	assert.Equal(t, "host=h port=5433 user=u password=p dbname=d sslmode=disable", d.DSN())
	assert.Equal(t, "postgres://u:p@h:5433/d?sslmode=disable", d.URL())
}

func TestLoad_RejectsRedisLockShorterThanRun(t *testing.T) {
	path := writeConfig(t, "reconcile:\n  lock: redis\n  timeout: 30m\n  lock_ttl: 10m\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "lock_ttl")
}

func TestLoad_AcceptsRedisLockCoveringRun(t *testing.T) {
	path := writeConfig(t, "reconcile:\n  lock: redis\n  timeout: 10m\n  lock_ttl: 15m\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "redis", cfg.Reconcile.Lock)
}
