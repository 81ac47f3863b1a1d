package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// setupTestStore creates a new store backed by a temp database.
// The store is closed when the test completes.
func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "sites.db")
	s, err := NewSQLiteStore(dbPath)
	require.NoError(t, err, "Failed to create test store")
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteStore_GetMissingKey(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.Get(context.Background(), "sites")
	require.ErrorIs(t, err, ErrNotFound, "missing key should return ErrNotFound")
}

func TestSQLiteStore_SetThenGet(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	err := s.Set(ctx, "sites", []byte(`[{"name":"Google"}]`))
	require.NoError(t, err, "Set should succeed")

	value, err := s.Get(ctx, "sites")
	require.NoError(t, err, "Get should succeed after Set")
	require.Equal(t, []byte(`[{"name":"Google"}]`), value)
}

func TestSQLiteStore_SetReplaces(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "sites", []byte("first")))
	require.NoError(t, s.Set(ctx, "sites", []byte("second")))

	value, err := s.Get(ctx, "sites")
	require.NoError(t, err)
	require.Equal(t, []byte("second"), value, "second write should replace the first")
}

func TestSQLiteStore_Delete(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "pendingSite", []byte(`{}`)))
	require.NoError(t, s.Delete(ctx, "pendingSite"))

	_, err := s.Get(ctx, "pendingSite")
	require.ErrorIs(t, err, ErrNotFound, "deleted key should be gone")

	// Deleting again is not an error
	require.NoError(t, s.Delete(ctx, "pendingSite"))
}

func TestSQLiteStore_KeysAreIndependent(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "sites", []byte("a")))
	require.NoError(t, s.Set(ctx, "migrated", []byte("b")))
	require.NoError(t, s.Delete(ctx, "migrated"))

	value, err := s.Get(ctx, "sites")
	require.NoError(t, err)
	require.Equal(t, []byte("a"), value, "deleting one key should not touch another")
}

func TestSQLiteStore_Reopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "sites.db")
	ctx := context.Background()

	s, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "sites", []byte("persisted")))
	require.NoError(t, s.Close())

	s2, err := NewSQLiteStore(dbPath)
	require.NoError(t, err, "reopening an existing database should succeed")
	t.Cleanup(func() { _ = s2.Close() })

	value, err := s2.Get(ctx, "sites")
	require.NoError(t, err)
	require.Equal(t, []byte("persisted"), value, "values should survive reopen")
}
