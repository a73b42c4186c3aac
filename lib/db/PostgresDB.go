package db

import (
	"database/sql"
	"fmt"
	"net/url"

	sq "github.com/Masterminds/squirrel"
	"github.com/neonleaf/neonleaf-go/lib/db/migrations"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

type PostgresOptions struct {
	Username string
	Password string
	Host     string
	Port     int
	Database string
	SSLMode  string
}

func (o PostgresOptions) URL() string {
	sslMode := o.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(o.Username, o.Password),
		Host:     fmt.Sprintf("%s:%d", o.Host, o.Port),
		Path:     o.Database,
		RawQuery: "sslmode=" + url.QueryEscape(sslMode),
	}
	return u.String()
}

type PostgresDB struct {
	sqlStore
	options PostgresOptions
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// NewPostgresDB This function creates a new PostgresDB and returns a pointer to it.
func NewPostgresDB(options PostgresOptions, logger *zap.SugaredLogger) (*PostgresDB, error) {
	sqlDb, err := sql.Open("postgres", options.URL())
	if err != nil {
		return nil, err
	}
	if err := sqlDb.Ping(); err != nil {
		sqlDb.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	migrationManager := migrations.NewMigrationManager(sqlDb, migrations.DialectPostgres, logger)
	if err := migrationManager.Run(); err != nil {
		sqlDb.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &PostgresDB{
		sqlStore: sqlStore{
			builder: psql,
			sqlDB:   sqlDb,
		},
		options: options,
	}, nil
}

var _ DataStore = (*PostgresDB)(nil)
