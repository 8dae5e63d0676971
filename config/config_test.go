package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
env:
  env: test
  serviceName: guildbook
http:
  port: 8080
secretKey:
  access: secret
persistence:
  saveRetries: 3
  retryBackoff: 50ms
storage:
  provider: blob
  bucketUrl: mem://
`

func TestLoadWithEnv_AppliesEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(sampleYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("PERSISTENCE_RETRYBACKOFF", "1s")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "guildbook", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "secret", cfg.SecretKey.Access)
	assert.Equal(t, 3, cfg.Persistence.SaveRetries)
	assert.Equal(t, time.Second, cfg.Persistence.RetryBackoff)
	assert.Equal(t, "blob", cfg.Storage.Provider)
	assert.Equal(t, "mem://", cfg.Storage.BucketURL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, 24*time.Hour, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 50, cfg.Guild.ListLimit)
	assert.Equal(t, 1, cfg.Persistence.SaveRetries)
	assert.Equal(t, 200*time.Millisecond, cfg.Persistence.RetryBackoff)
	assert.Equal(t, "postgres", cfg.Storage.Provider)
	assert.Equal(t, "none", cfg.PubSub.Provider)

	cfg = &Config{Persistence: &PersistenceConfig{SaveRetries: 0, RetryBackoff: time.Second}}
	applyDefaults(cfg)
	assert.Zero(t, cfg.Persistence.SaveRetries)
	assert.Equal(t, time.Second, cfg.Persistence.RetryBackoff)
}
