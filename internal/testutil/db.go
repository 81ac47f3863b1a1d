// Package testutil provides test utilities for store setup.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ryoma-abe/site-launcher/internal/store"
)

// NewTestStore creates a SQLite store backed by a temp database.
// The store is closed when the test completes.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "sites.db")
	s, err := store.NewSQLiteStore(dbPath)
	require.NoError(t, err, "Failed to create test store")
	t.Cleanup(func() { _ = s.Close() })
	return s
}
