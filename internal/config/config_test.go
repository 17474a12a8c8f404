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
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "env: development\n"))
	require.NoError(t, err)

	assert.Equal(t, defaultPort, cfg.Port)
	assert.True(t, cfg.IsDev())
	assert.Contains(t, cfg.DSN, "tcp(127.0.0.1:3306)/site_core")
	assert.Contains(t, cfg.DSN, "parseTime=true")
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.False(t, cfg.StorageEnabled())
}

func TestLoadFull(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
port: 8080
env: production
database:
  host: db.internal
  port: 3307
  user: site
  password: secret
  name: brand
redis:
  host: cache.internal
  password: hunter2
  db: 2
s3:
  endpoint: https://s3.example.com
  access_key_id: AK
  secret_access_key: SK
  bucket: images
  region: eu-central-1
  custom_domain: https://cdn.example.com
allowed_origins:
  - example.com
  - "*.example.com"
jwt_secret: supersecret
admin_password: $2a$10$abcdefghijklmnopqrstuv
`))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.False(t, cfg.IsDev())
	assert.Contains(t, cfg.DSN, "site:secret@tcp(db.internal:3307)/brand")
	assert.Equal(t, "redis://:hunter2@cache.internal:6379/2", cfg.RedisURL)
	assert.True(t, cfg.StorageEnabled())
	assert.Equal(t, "images", cfg.S3.Bucket)
	assert.Equal(t, "https://cdn.example.com", cfg.S3.CustomDomain)
	assert.Equal(t, []string{"example.com", "*.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, "supersecret", cfg.JWTSecret)
}

func TestLoadExplicitDSNWins(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
dsn: user:pass@tcp(10.0.0.1:3306)/other?parseTime=true
database:
  host: ignored
`))
	require.NoError(t, err)
	assert.Equal(t, "user:pass@tcp(10.0.0.1:3306)/other?parseTime=true", cfg.DSN)
}

func TestLoadRejectsBadPort(t *testing.T) {
	_, err := Load(writeConfig(t, "port: 99999\n"))
	assert.Error(t, err)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeConfig(t, "listen_port: 8080\n"))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}
