package archive

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"guildbook/internal/domain/entity"
	"guildbook/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestArchiver(t *testing.T) service.EventArchiver {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewBlobArchiver(bucket, "", slog.New(slog.DiscardHandler))
}

func event(id, guildID string, at time.Time) *service.LedgerEvent {
	return &service.LedgerEvent{
		EventID:    id,
		GuildID:    guildID,
		GuildName:  "Lâmina Rubra",
		Operation:  "finance.deposit",
		Persisted:  true,
		Wallet:     entity.Wallet{TS: 100},
		OccurredAt: at,
	}
}

func TestArchive_AppendsInOrder(t *testing.T) {
	ctx := context.Background()
	a := newTestArchiver(t)
	day := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

	require.NoError(t, a.Archive(ctx, event("e1", "g1", day)))
	require.NoError(t, a.Archive(ctx, event("e2", "g1", day.Add(time.Hour))))

	events, err := a.Events(ctx, "g1", day)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "e1", events[0].EventID)
	assert.Equal(t, "e2", events[1].EventID)
	assert.Equal(t, 100.0, events[1].Wallet.TS)
}

func TestArchive_IgnoresRedelivery(t *testing.T) {
	ctx := context.Background()
	a := newTestArchiver(t)
	day := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

	require.NoError(t, a.Archive(ctx, event("e1", "g1", day)))
	require.NoError(t, a.Archive(ctx, event("e1", "g1", day)))

	events, err := a.Events(ctx, "g1", day)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestArchive_SeparatesGuildsAndDays(t *testing.T) {
	ctx := context.Background()
	a := newTestArchiver(t)
	day := time.Date(2026, 3, 4, 23, 30, 0, 0, time.UTC)

	require.NoError(t, a.Archive(ctx, event("e1", "g1", day)))
	require.NoError(t, a.Archive(ctx, event("e2", "g1", day.Add(time.Hour))))
	require.NoError(t, a.Archive(ctx, event("e3", "g2", day)))

	first, err := a.Events(ctx, "g1", day)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "e1", first[0].EventID)

	next, err := a.Events(ctx, "g1", day.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, next, 1)
	assert.Equal(t, "e2", next[0].EventID)

	empty, err := a.Events(ctx, "g3", day)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestArchive_RejectsEventWithoutGuild(t *testing.T) {
	a := newTestArchiver(t)

	err := a.Archive(context.Background(), event("e1", "", time.Now()))
	assert.Error(t, err)
}
