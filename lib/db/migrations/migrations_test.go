package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestMigrationsRunOnceAndAreIdempotent(t *testing.T) {
	sqlDb, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrations.db"))
	require.NoError(t, err)
	defer sqlDb.Close()

	manager := NewMigrationManager(sqlDb, DialectSQLite, nil)
	require.NoError(t, manager.Run())

	current, err := manager.GetCurrentVersion()
	require.NoError(t, err)
	require.Equal(t, len(GetMigrations()), current)

	require.NoError(t, NewMigrationManager(sqlDb, DialectSQLite, nil).Run())

	var applied int
	require.NoError(t, sqlDb.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&applied))
	require.Equal(t, len(GetMigrations()), applied)

	for _, table := range []string{"documents", "fiber_sessions"} {
		var name string
		err := sqlDb.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name = ?", table).Scan(&name)
		require.NoError(t, err, "table %s", table)
	}
}
