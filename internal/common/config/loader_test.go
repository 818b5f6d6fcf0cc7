// internal/common/config/loader_test.go
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

func TestLoadFromFile_Defaults(t *testing.T) {
	path := writeConfig(t, "app:\n  name: matcher-test\n")

	cfg, err := LoadFromFile(path)

	require.NoError(t, err)
	assert.Equal(t, "matcher-test", cfg.App.Name)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, ":8000", cfg.Server.Address())
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, 10, cfg.Matching.DefaultTopN)
	assert.Equal(t, 0.3, cfg.Matching.DefaultMinScore)
	assert.True(t, cfg.Matching.SeedOnStartup)
	assert.Nil(t, cfg.Matching.RegionEntries())
	assert.False(t, cfg.Camunda.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "matcher", cfg.Database.Redis.KeyPrefix)
}

func TestLoadFromFile_FullConfig(t *testing.T) {
	t.Setenv("MATCHER_TEST_PG_PASSWORD", "s3cret")

	path := writeConfig(t, `
app:
  name: internship-matcher
  environment: staging
server:
  host: 127.0.0.1
  port: 9090
  shutdown_timeout: 2500
storage:
  driver: postgres
database:
  postgres:
    host: db.internal
    database: matcher
    user: matcher
    password: ${MATCHER_TEST_PG_PASSWORD}
matching:
  default_top_n: 25
  default_min_score: 0
  seed_on_startup: false
  regions:
    - city: Jaipur
      regions: [Rajasthan, North India]
camunda:
  enabled: true
  broker_address: zeebe:26500
workers:
  compute-match-score:
    enabled: true
  find-internship-matches:
    enabled: false
    timeout: 5000
logging:
  level: debug
  format: console
`)

	cfg, err := LoadFromFile(path)

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Address())
	assert.Equal(t, 2500*time.Millisecond, GetDuration(cfg.Server.ShutdownTimeout))
	assert.Equal(t, DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "s3cret", cfg.Database.Postgres.Password)
	assert.Equal(t, 5432, cfg.Database.Postgres.Port)
	assert.Contains(t, cfg.Database.Postgres.GetDSN(), "dbname=matcher")
	assert.Contains(t, cfg.Database.Postgres.GetDSN(), "sslmode=disable")

	assert.Equal(t, 25, cfg.Matching.DefaultTopN)
	assert.Equal(t, 0.0, cfg.Matching.DefaultMinScore)
	assert.False(t, cfg.Matching.SeedOnStartup)
	assert.Equal(t, map[string][]string{"Jaipur": {"Rajasthan", "North India"}}, cfg.Matching.RegionEntries())

	assert.True(t, cfg.Camunda.Enabled)
	assert.Equal(t, "zeebe:26500", cfg.Camunda.BrokerAddress)
	assert.True(t, IsWorkerEnabled(cfg, "compute-match-score"))
	assert.False(t, IsWorkerEnabled(cfg, "find-internship-matches"))
	assert.True(t, IsWorkerEnabled(cfg, "unknown-worker"))

	worker := GetWorkerConfig(cfg, "find-internship-matches")
	assert.Equal(t, 5000, worker.Timeout)
	assert.Equal(t, 5, worker.MaxJobsActive)
	assert.Equal(t, 3, worker.MaxRetries)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadFromFile_Invalid(t *testing.T) {
	t.Setenv("ZEEBE_ADDRESS", "")

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "unknown driver",
			body:    "storage:\n  driver: mongo\n",
			wantErr: "storage.driver",
		},
		{
			name:    "redis without address",
			body:    "storage:\n  driver: redis\n",
			wantErr: "database.redis.address",
		},
		{
			name:    "postgres without host",
			body:    "storage:\n  driver: postgres\n",
			wantErr: "database.postgres.host",
		},
		{
			name:    "min score above one",
			body:    "matching:\n  default_min_score: 1.5\n",
			wantErr: "default_min_score",
		},
		{
			name:    "negative top n",
			body:    "matching:\n  default_top_n: -1\n",
			wantErr: "default_top_n",
		},
		{
			name:    "camunda without broker",
			body:    "camunda:\n  enabled: true\n",
			wantErr: "camunda.broker_address",
		},
		{
			name:    "region without city",
			body:    "matching:\n  regions:\n    - regions: [Rajasthan]\n",
			wantErr: "city",
		},
		{
			name:    "port out of range",
			body:    "server:\n  port: 70000\n",
			wantErr: "server.port",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFromFile(writeConfig(t, tt.body))

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestOverrideEmptyConfig(t *testing.T) {
	t.Setenv("DB_USER", "env-user")
	t.Setenv("REDIS_PASSWORD", "env-redis")
	t.Setenv("ZEEBE_ADDRESS", "env-zeebe:26500")

	cfg := &Config{}
	cfg.Database.Postgres.User = "file-user"
	overrideEmptyConfig(cfg)

	assert.Equal(t, "file-user", cfg.Database.Postgres.User)
	assert.Equal(t, "env-redis", cfg.Database.Redis.Password)
	assert.Equal(t, "env-zeebe:26500", cfg.Camunda.BrokerAddress)
}

func TestLoadFromFile_UnsetPlaceholder(t *testing.T) {
	t.Setenv("DB_USER", "from-env")
	path := writeConfig(t, `
database:
  postgres:
    user: ${MATCHER_TEST_SURELY_UNSET_USER}
  redis:
    password: ${MATCHER_TEST_SURELY_UNSET_PASSWORD}
`)

	cfg, err := LoadFromFile(path)

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Database.Postgres.User)
	assert.Empty(t, cfg.Database.Redis.Password)
}
