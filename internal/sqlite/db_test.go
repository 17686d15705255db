package sqlite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates a new in-memory SQLite database for testing
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	err = db.Bootstrap()
	require.NoError(t, err, "failed to bootstrap schema")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// TestBootstrap verifies the schema is created and is idempotent
func TestBootstrap(t *testing.T) {
	db := NewTestDB(t)

	for _, table := range []string{"residents", "complaints"} {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		require.NoError(t, err, "failed to query table %s", table)
		require.Equal(t, 1, count, "table %s not found", table)
	}

	// Running Bootstrap again must not fail or duplicate anything.
	require.NoError(t, db.Bootstrap())
}

// TestForeignKeys verifies that foreign key constraints are enabled
func TestForeignKeys(t *testing.T) {
	db := NewTestDB(t)

	var enabled int
	err := db.QueryRow("PRAGMA foreign_keys").Scan(&enabled)
	require.NoError(t, err)
	require.Equal(t, 1, enabled, "foreign keys not enabled")
}
