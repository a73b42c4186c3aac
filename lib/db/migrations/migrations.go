package migrations

import (
	"database/sql"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
)

// Migration represents a single database migration
type Migration struct {
	Version     int
	Description string
	Up          func(db *sql.DB, dialect Dialect) error
}

// Dialect represents the SQL dialect for different databases
type Dialect int

const (
	DialectSQLite Dialect = iota
	DialectPostgres
)

// MigrationManager handles database migrations
type MigrationManager struct {
	db         *sql.DB
	dialect    Dialect
	migrations []Migration
	logger     *zap.SugaredLogger
}

// NewMigrationManager creates a new migration manager. A nil logger discards
// progress output.
func NewMigrationManager(db *sql.DB, dialect Dialect, logger *zap.SugaredLogger) *MigrationManager {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &MigrationManager{
		db:         db,
		dialect:    dialect,
		migrations: GetMigrations(),
		logger:     logger,
	}
}

// GetMigrations returns all available migrations
func GetMigrations() []Migration {
	return []Migration{
		migration001Documents(),
		migration002FiberSessions(),
		migration003RecordsText(),
	}
}

// Run executes all pending migrations
func (m *MigrationManager) Run() error {
	if err := m.createMigrationsTable(); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	currentVersion, err := m.getCurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}

	sort.Slice(m.migrations, func(i, j int) bool {
		return m.migrations[i].Version < m.migrations[j].Version
	})

	for _, migration := range m.migrations {
		if migration.Version <= currentVersion {
			continue
		}
		m.logger.Infof("Running migration %d: %s", migration.Version, migration.Description)
		if err := migration.Up(m.db, m.dialect); err != nil {
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}
		if err := m.setVersion(migration.Version, migration.Description); err != nil {
			return fmt.Errorf("failed to update migration version: %w", err)
		}
	}

	return nil
}

func (m *MigrationManager) createMigrationsTable() error {
	_, err := m.db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		description TEXT,
		applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	return err
}

func (m *MigrationManager) getCurrentVersion() (int, error) {
	var version int
	row := m.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&version); err != nil {
		return 0, err
	}
	return version, nil
}

func (m *MigrationManager) setVersion(version int, description string) error {
	query := "INSERT INTO schema_migrations (version, description, applied_at) VALUES (?, ?, ?)"
	if m.dialect == DialectPostgres {
		query = "INSERT INTO schema_migrations (version, description, applied_at) VALUES ($1, $2, $3)"
	}
	_, err := m.db.Exec(query, version, description, time.Now())
	return err
}

// GetCurrentVersion returns the current migration version (public method)
func (m *MigrationManager) GetCurrentVersion() (int, error) {
	return m.getCurrentVersion()
}
