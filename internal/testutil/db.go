package testutil

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/kristofferme/leader/internal/db"
	"github.com/stretchr/testify/require"
)

// NewDB opens a migrated SQLite database in a temp directory. It is closed
// when the test finishes.
func NewDB(t *testing.T) *sqlx.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "journal.db")
	conn, err := db.Init("sqlite", path+"?_pragma=foreign_keys(1)")
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
	})

	err = db.RunMigrations(conn.DB, "sqlite")
	require.NoError(t, err)

	return conn
}
