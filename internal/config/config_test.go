package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db.internal"
port = 5433
user = "fms"
dbname = "fms_carbooking"

[auth]
jwt_secret = "file-secret"

[booking]
slot_catalog = "fine"

[redis]
enabled = true
addr = "cache.internal:6379"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "fine", cfg.Booking.SlotCatalog)
	assert.True(t, cfg.Redis.Enabled)

	// Defaults fill the gaps
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 30, cfg.Redis.TTL)
	assert.Equal(t, 86400, cfg.Auth.TokenTTL)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "logs/app.log", cfg.Logs.File)
}

func TestLoad_DSN(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
port = 5432
user = "fms"
password = "pw"
dbname = "fms_carbooking"
sslmode = "require"

[auth]
jwt_secret = "s"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t,
		"host=localhost port=5432 user=fms password=pw dbname=fms_carbooking sslmode=require",
		cfg.Database.DSN())
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
password = "file-password"

[auth]
jwt_secret = "file-secret"
`)

	t.Setenv("DB_HOST", "db.prod.internal")
	t.Setenv("DB_PASSWORD", "env-password")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("LINE_CHANNEL_TOKEN", "env-line-token")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "db.prod.internal", cfg.Database.Host)
	assert.Equal(t, "env-password", cfg.Database.Password)
	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "env-line-token", cfg.Line.ChannelToken)
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080
`)

	t.Setenv("JWT_SECRET", "")

	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "jwt_secret")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
