package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolWaitAttrs(t *testing.T) {
	prev := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	tests := []struct {
		name       string
		cur        sql.DBStats
		wantWaited bool
		wantLevel  slog.Level
	}{
		{name: "no new waits", cur: prev, wantWaited: false, wantLevel: slog.LevelDebug},
		{
			name:       "short waits",
			cur:        sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 10*time.Millisecond},
			wantWaited: true,
			wantLevel:  slog.LevelDebug,
		},
		{
			name:       "long waits",
			cur:        sql.DBStats{WaitCount: 11, WaitDuration: 2 * time.Second},
			wantWaited: true,
			wantLevel:  slog.LevelWarn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs, level, waited := poolWaitAttrs(prev, tt.cur)

			assert.Equal(t, tt.wantWaited, waited)
			assert.Equal(t, tt.wantLevel, level)
			if waited {
				assert.NotEmpty(t, attrs)
			}
		})
	}
}
