package utils

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/neonleaf/neonleaf-go/lib/db"
	"github.com/neonleaf/neonleaf-go/lib/settings"
	"go.uber.org/zap"
)

func GetDB(retrievedSettings settings.Settings, setupLogger *zap.SugaredLogger) (db.DataStore, error) {
	switch retrievedSettings.DBType {
	case settings.SQLITE:
		filename := retrievedSettings.DBSettings.Filename
		setupLogger.Infof("Using SQLite database at %s", filename)
		if dir := filepath.Dir(filename); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, err
			}
		}
		return db.NewSQLiteDB(filename, setupLogger)
	case settings.MEMORY:
		setupLogger.Info("Using in-memory database (documents will be lost on restart)")
		return db.NewMemoryDataStore(), nil
	case settings.POSTGRES:
		setupLogger.Infof("Using Postgres database at %s with database %s", retrievedSettings.DBSettings.Host, retrievedSettings.DBSettings.Database)

		port, err := retrievedSettings.DBSettings.PostgresPort()
		if err != nil {
			return nil, err
		}

		return db.NewPostgresDB(db.PostgresOptions{
			Username: retrievedSettings.DBSettings.User,
			Password: retrievedSettings.DBSettings.Password,
			Host:     retrievedSettings.DBSettings.Host,
			Database: retrievedSettings.DBSettings.Database,
			Port:     port,
			SSLMode:  retrievedSettings.DBSettings.SSLMode,
		}, setupLogger)
	}
	return nil, errors.New("unsupported database type")
}
