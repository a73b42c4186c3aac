package migrations

import (
	"database/sql"
)

// migration001Documents creates the table holding loaded version documents.
// Records are stored as the serialized JSON array in a TEXT column on every
// dialect. JSONB would refuse the \u0000 escape that valid uploads may carry.
func migration001Documents() Migration {
	return Migration{
		Version:     1,
		Description: "Create documents table",
		Up: func(db *sql.DB, _ Dialect) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS documents (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					records TEXT NOT NULL,
					record_count INTEGER NOT NULL DEFAULT 0,
					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP DEFAULT NULL
				)`,
				`CREATE INDEX IF NOT EXISTS idx_documents_created ON documents (created_at)`,
			}

			for _, query := range queries {
				if _, err := db.Exec(query); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
