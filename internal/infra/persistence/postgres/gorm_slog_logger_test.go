package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"guildbook/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGormLogger(cfg *config.Config) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg), &buf
}

func TestRedactSQLMasksPasswordHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("segredo"), bcrypt.MinCost)
	assert.NoError(t, err)

	sql := `INSERT INTO "guilds" ("id","password_hash") VALUES ('g-1','` + string(hash) + `')`
	got := redactSQL(sql)

	assert.NotContains(t, got, string(hash))
	assert.Contains(t, got, "[REDACTED]")
}

func TestRedactSQLTruncatesSnapshots(t *testing.T) {
	sql := "UPDATE guilds SET data = '" + strings.Repeat("x", 4*maxLoggedSQLLength) + "'"

	got := redactSQL(sql)

	assert.True(t, strings.HasPrefix(got, "UPDATE guilds SET data"))
	assert.Contains(t, got, "bytes)")
	assert.Less(t, len(got), len(sql))
}

func TestTraceSkipsRecordNotFound(t *testing.T) {
	l, buf := newTestGormLogger(&config.Config{})

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestTraceLogsFailures(t *testing.T) {
	l, buf := newTestGormLogger(&config.Config{})

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, assert.AnError)

	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), assert.AnError.Error())
}

func TestTraceUsesConfiguredSlowThreshold(t *testing.T) {
	cfg := &config.Config{Persistence: &config.PersistenceConfig{SlowQueryThreshold: time.Millisecond}}
	l, buf := newTestGormLogger(cfg)

	l.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) { return "SELECT 1", 1 }, nil)

	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestTraceQuietBelowInfo(t *testing.T) {
	l, buf := newTestGormLogger(&config.Config{})

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, nil)

	assert.Empty(t, buf.String())
}
