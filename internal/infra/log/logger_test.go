package logs

import (
	"bytes"
	"encoding/json"
	"testing"

	"guildbook/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_JSON(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "warn"

	var buf bytes.Buffer
	logger, err := NewWithWriter(cfg, &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "guild_id", "g1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "g1", entry["guild_id"])
}

func TestNewWithWriter_UnknownLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "loud"

	_, err := NewWithWriter(cfg, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestParseLogLevel_DefaultsToInfo(t *testing.T) {
	level, err := parseLogLevel("")
	require.NoError(t, err)
	assert.Equal(t, "INFO", level.String())
}

func TestNewWithWriter_RedactsSecrets(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "guildbook"

	var buf bytes.Buffer
	logger, err := NewWithWriter(cfg, &buf)
	require.NoError(t, err)

	logger.Info("login", "guild_password", "segredo", "accessToken", "abc", "guild_id", "g1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, redacted, entry["guild_password"])
	assert.Equal(t, redacted, entry["accessToken"])
	assert.Equal(t, "g1", entry["guild_id"])
	assert.Equal(t, "guildbook", entry["service"])
}
