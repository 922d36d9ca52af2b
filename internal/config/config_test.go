package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0644))
	return dir
}

func TestLoadConfigDefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "file", cfg.Persistence.Driver)
	assert.Equal(t, "data/data_tests.json", cfg.Persistence.TestsFile)
	assert.Equal(t, "data/data_stats.json", cfg.Persistence.StatsFile)
	assert.Equal(t, "memory", cfg.Session.Store)
	assert.Equal(t, 120, cfg.Session.TTLMinutes)
	assert.Equal(t, 6000, cfg.RateLimit.MaxRequests)
}

func TestLoadConfigReadsFile(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "9090"
  mode: release
persistence:
  driver: postgres
database:
  host: db
  port: 5432
  dbname: quiz
session:
  store: redis
  ttl_minutes: 30
cors:
  allowed_origins: ["http://localhost:3000"]
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "postgres", cfg.Persistence.Driver)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "quiz", cfg.Database.DBName)
	assert.Equal(t, "redis", cfg.Session.Store)
	assert.Equal(t, 30, cfg.Session.TTLMinutes)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	dir := writeConfig(t, "server:\n  port: \"9090\"\n")
	t.Setenv("SERVER_PORT", "7070")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Server.Port)
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	dir := writeConfig(t, "persistence:\n  driver: sqlite\n")

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	dir := writeConfig(t, "server: [unterminated\n")

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestValidateRequiresDataFilesForFileDriver(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	cfg.Persistence.StatsFile = ""
	assert.Error(t, cfg.Validate())

	cfg.Persistence.Driver = "mysql"
	assert.NoError(t, cfg.Validate())
}

func TestConfigFile(t *testing.T) {
	assert.Equal(t, filepath.Join("configs", "config.yaml"), ConfigFile("configs"))
}
