package blobstore

import (
	"context"
	"testing"
	"time"

	"guildbook/internal/domain/entity"
	"guildbook/internal/domain/repository"
	"guildbook/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewStore(bucket)
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	return store
}

func TestGuildRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo := newTestStore(t).GuildRepository()

	state := entity.NewGuildState("g-1", "Lanternas")
	state.Wallet.TO = 7
	record := &entity.GuildRecord{ID: "g-1", GuildName: "Lanternas", PasswordHash: "hash", State: state}
	require.NoError(t, repo.Save(ctx, record))
	assert.False(t, record.UpdatedAt.IsZero())

	found, err := repo.FindByID(ctx, "g-1")
	require.NoError(t, err)
	assert.Equal(t, "hash", found.PasswordHash)
	assert.Equal(t, 7.0, found.State.Wallet.TO)
	assert.NotNil(t, found.State.Members)
}

func TestGuildRepository_SaveKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	repo := newTestStore(t).GuildRepository()

	require.NoError(t, repo.Save(ctx, &entity.GuildRecord{ID: "g-1", GuildName: "A"}))
	first, err := repo.FindByID(ctx, "g-1")
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, &entity.GuildRecord{ID: "g-1", GuildName: "B"}))
	second, err := repo.FindByID(ctx, "g-1")
	require.NoError(t, err)

	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
	assert.Equal(t, "B", second.GuildName)
}

func TestGuildRepository_SaveStateKeepsPasswordHash(t *testing.T) {
	ctx := context.Background()
	repo := newTestStore(t).GuildRepository()

	require.NoError(t, repo.Save(ctx, &entity.GuildRecord{ID: "g-1", GuildName: "A", PasswordHash: "h-new"}))
	created, err := repo.FindByID(ctx, "g-1")
	require.NoError(t, err)

	state := entity.NewGuildState("g-1", "B")
	state.Wallet.TS = 42
	require.NoError(t, repo.SaveState(ctx, "g-1", "B", state))

	found, err := repo.FindByID(ctx, "g-1")
	require.NoError(t, err)
	assert.Equal(t, "h-new", found.PasswordHash)
	assert.Equal(t, "B", found.GuildName)
	assert.Equal(t, 42.0, found.State.Wallet.TS)
	assert.Equal(t, created.CreatedAt, found.CreatedAt)
	assert.True(t, found.UpdatedAt.After(created.UpdatedAt))
}

func TestGuildRepository_SaveStateOnDeletedGuild(t *testing.T) {
	ctx := context.Background()
	repo := newTestStore(t).GuildRepository()

	require.NoError(t, repo.Save(ctx, &entity.GuildRecord{ID: "g-1", GuildName: "A", PasswordHash: "h"}))
	require.NoError(t, repo.Delete(ctx, "g-1"))

	err := repo.SaveState(ctx, "g-1", "A", entity.NewGuildState("g-1", "A"))
	assert.True(t, errors.Is(err, repository.ErrGuildNotFound))

	_, err = repo.FindByID(ctx, "g-1")
	assert.True(t, errors.Is(err, repository.ErrGuildNotFound))
}

func TestGuildRepository_MissingGuild(t *testing.T) {
	ctx := context.Background()
	repo := newTestStore(t).GuildRepository()

	_, err := repo.FindByID(ctx, "nope")
	assert.True(t, errors.Is(err, repository.ErrGuildNotFound))

	err = repo.Delete(ctx, "nope")
	assert.True(t, errors.Is(err, repository.ErrGuildNotFound))
}

func TestGuildRepository_ListRecent(t *testing.T) {
	ctx := context.Background()
	repo := newTestStore(t).GuildRepository()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Save(ctx, &entity.GuildRecord{ID: id, GuildName: "Guild " + id}))
	}

	summaries, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "c", summaries[0].ID)
	assert.Equal(t, "b", summaries[1].ID)

	require.NoError(t, repo.Delete(ctx, "c"))
	summaries, err = repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, summaries, 2)
}

func TestAdminRepository(t *testing.T) {
	ctx := context.Background()
	repo := newTestStore(t).AdminRepository()

	_, err := repo.Get(ctx)
	assert.True(t, errors.Is(err, repository.ErrAdminNotFound))

	require.NoError(t, repo.Save(ctx, &entity.AdminCredential{PasswordHash: "h1"}))
	cred, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "h1", cred.PasswordHash)
}

func TestTransactionManager_CommitAndRollback(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	tm := store.TransactionManager()

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		require.NoError(t, f.NewGuildRepository().Save(ctx, &entity.GuildRecord{ID: "g-1", GuildName: "A"}))
		require.NoError(t, f.NewAdminRepository().Save(ctx, &entity.AdminCredential{PasswordHash: "h"}))

		// staged writes are visible inside the transaction only
		_, err := f.NewGuildRepository().FindByID(ctx, "g-1")
		require.NoError(t, err)
		_, err = store.GuildRepository().FindByID(ctx, "g-1")
		assert.True(t, errors.Is(err, repository.ErrGuildNotFound))

		return nil
	})
	require.NoError(t, err)

	_, err = store.GuildRepository().FindByID(ctx, "g-1")
	require.NoError(t, err)

	boom := errors.New("boom")
	err = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		require.NoError(t, f.NewGuildRepository().Delete(ctx, "g-1"))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = store.GuildRepository().FindByID(ctx, "g-1")
	assert.NoError(t, err)
}

func TestOpenBucket_DefaultsToMemory(t *testing.T) {
	bucket, err := OpenBucket(context.Background(), "")
	require.NoError(t, err)
	require.NoError(t, bucket.Close())
}
