package storage_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reviewdash/internal/storage"
)

func newStore(t *testing.T) *storage.Store {
	t.Helper()
	return storage.New(filepath.Join(t.TempDir(), "dashboard.json"))
}

func TestStore_GetMissingKey(t *testing.T) {
	store := newStore(t)

	var members []string
	err := store.Get(storage.KeyTeamMembers, &members)

	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestStore_RoundTrip(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.Set(storage.KeyTeamMembers, []string{"Alice", "Bob"}))

	var members []string
	require.NoError(t, store.Get(storage.KeyTeamMembers, &members))
	assert.Equal(t, []string{"Alice", "Bob"}, members)
}

func TestStore_KeysAreIndependent(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.Set(storage.KeyTeamMembers, []string{"Alice"}))
	require.NoError(t, store.Set(storage.KeyAssignments, []string{"not really assignments"}))

	var members []string
	require.NoError(t, store.Get(storage.KeyTeamMembers, &members))
	assert.Equal(t, []string{"Alice"}, members)
}

func TestStore_IdempotentSave(t *testing.T) {
	// Writing back exactly what was loaded must reproduce the same bytes.
	store := newStore(t)
	require.NoError(t, store.Set(storage.KeyAssignments, []string{"a", "b", "c"}))

	before, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	var loaded []string
	require.NoError(t, store.Get(storage.KeyAssignments, &loaded))
	require.NoError(t, store.Set(storage.KeyAssignments, loaded))

	after, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestStore_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	store := storage.New(path)

	var members []string
	err := store.Get(storage.KeyTeamMembers, &members)

	require.Error(t, err)
	assert.False(t, errors.Is(err, storage.ErrKeyNotFound))
}

func TestStore_MalformedBlob(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"teamMembersList": "not-an-array"}`), 0o644))
	store := storage.New(path)

	var members []string
	err := store.Get(storage.KeyTeamMembers, &members)

	require.Error(t, err)
	assert.False(t, errors.Is(err, storage.ErrKeyNotFound))
}
