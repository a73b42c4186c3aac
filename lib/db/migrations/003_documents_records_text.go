package migrations

import (
	"database/sql"
)

// migration003RecordsText moves Postgres databases created with a JSONB
// records column over to TEXT. SQLite already stores TEXT.
func migration003RecordsText() Migration {
	return Migration{
		Version:     3,
		Description: "Store document records as TEXT",
		Up: func(db *sql.DB, dialect Dialect) error {
			if dialect != DialectPostgres {
				return nil
			}
			_, err := db.Exec(`ALTER TABLE documents ALTER COLUMN records TYPE TEXT USING records::text`)
			return err
		},
	}
}
