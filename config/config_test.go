package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "server:\n  jwt:\n    secret: s3cret\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1", cfg.HTTP.Host)
	require.Equal(t, 8080, cfg.HTTP.Port)
	require.Equal(t, "mysql", cfg.DB.Driver)
	require.Equal(t, "s3cret", cfg.JWT.Secret)
	require.Equal(t, "invita", cfg.JWT.Issuer)
	require.Equal(t, 60, cfg.JWT.ExpMin)
}

func TestLoad_MissingSecretIsFatal(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9000\n")

	_, err := Load(path)
	require.ErrorIs(t, err, ErrMissingSecret)
}

func TestLoad_SecretFromEnv(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9000\n")
	t.Setenv("INVITA_JWT_SECRET", "env-secret")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "env-secret", cfg.JWT.Secret)
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, `server:
  host: 0.0.0.0
  port: 9001
  db:
    driver: sqlite
    path: /tmp/invita-test.db
  redis:
    addr: 127.0.0.1:6379
    ttl_sec: 30
  jwt:
    secret: s3cret
    exp_min: 15
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	require.Equal(t, 9001, cfg.HTTP.Port)
	require.Equal(t, "sqlite", cfg.DB.Driver)
	require.Equal(t, "/tmp/invita-test.db", cfg.DB.Path)
	require.Equal(t, "127.0.0.1:6379", cfg.Redis.Addr)
	require.Equal(t, 30, cfg.Redis.TTLSec)
	require.Equal(t, 15, cfg.JWT.ExpMin)
}
