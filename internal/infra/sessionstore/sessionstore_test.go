package sessionstore

import (
	"os"
	"path/filepath"
	"testing"

	"guildbook/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveLoadClear(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "nested", "session.yaml"))

	_, err := store.Load()
	assert.True(t, errors.Is(err, ErrNoSession))

	want := Session{Server: "http://localhost:8080", GuildID: "guild-1", Password: "segredo"}
	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, *got)

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	require.NoError(t, store.Clear())
	_, err = store.Load()
	assert.True(t, errors.Is(err, ErrNoSession))

	require.NoError(t, store.Clear())
}

func TestStore_SaveReplaces(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "session.yaml"))

	require.NoError(t, store.Save(Session{Server: "a", GuildID: "g1", Password: "p1"}))
	require.NoError(t, store.Save(Session{Server: "b", GuildID: "g2", Password: "p2"}))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "g2", got.GuildID)
	assert.Equal(t, "b", got.Server)
}

func TestStore_LoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unterminated"), 0o600))

	_, err := New(path).Load()
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoSession))
}

func TestStore_LoadWithoutGuildIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: http://x\n"), 0o600))

	_, err := New(path).Load()
	assert.True(t, errors.Is(err, ErrNoSession))
}
