package migrations

import (
	"database/sql"
)

// migration002FiberSessions backs the login session store.
func migration002FiberSessions() Migration {
	return Migration{
		Version:     2,
		Description: "Create fiber_sessions table",
		Up: func(db *sql.DB, dialect Dialect) error {
			var query string

			switch dialect {
			case DialectPostgres:
				query = `CREATE TABLE IF NOT EXISTS fiber_sessions (
					session_key TEXT PRIMARY KEY,
					session_data BYTEA,
					expires_at BIGINT,
					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
				)`
			default:
				query = `CREATE TABLE IF NOT EXISTS fiber_sessions (
					session_key TEXT PRIMARY KEY,
					session_data BLOB,
					expires_at INTEGER,
					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
				)`
			}

			_, err := db.Exec(query)
			if err != nil {
				return err
			}

			_, err = db.Exec(`CREATE INDEX IF NOT EXISTS idx_fiber_sessions_expires ON fiber_sessions (expires_at)`)
			return err
		},
	}
}
