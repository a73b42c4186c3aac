package settings

import (
	"strings"

	"github.com/spf13/viper"
)

type ConfigKey struct {
	Key         string
	Default     any
	Description string
}

const envPrefix = "NEONLEAF"

func EnvVar(key string) string {
	return envPrefix + "_" + strings.ToUpper(
		strings.ReplaceAll(key, ".", "_"),
	)
}

var Registry = []ConfigKey{
	// ---------------------------------------------------------------------
	// Core
	// ---------------------------------------------------------------------
	{Key: Title, Default: "NeonLeaf", Description: "Application title"},
	{Key: IP, Default: "0.0.0.0", Description: "Bind address"},
	{Key: Port, Default: "9001", Description: "HTTP server port"},
	{Key: Loglevel, Default: "INFO", Description: "Log level (DEBUG, INFO, WARN, ERROR)"},
	{Key: DevMode, Default: false, Description: "Development mode"},

	// ---------------------------------------------------------------------
	// Gate
	// ---------------------------------------------------------------------
	{Key: GateEnabled, Default: true, Description: "Require the shared password before any document access"},
	{Key: GatePassword, Default: "Sampras", Description: "Shared password checked by the gate"},

	// ---------------------------------------------------------------------
	// Documents
	// ---------------------------------------------------------------------
	{Key: PageSize, Default: 5, Description: "Records per page"},
	{Key: ImportMaxFileSize, Default: 50 * 1024 * 1024, Description: "Maximum upload size in bytes, 0 disables the limit"},

	// ---------------------------------------------------------------------
	// Database
	// ---------------------------------------------------------------------
	{Key: DBType, Default: SQLITE, Description: "Database type (memory, sqlite, postgres)"},
	{Key: DBSettingsHost, Default: "localhost", Description: "Database host"},
	{Key: DBSettingsPort, Default: "5432", Description: "Database port"},
	{Key: DBSettingsDatabase, Default: "neonleaf", Description: "Database name"},
	{Key: DBSettingsUser, Default: "", Description: "Database user"},
	{Key: DBSettingsPassword, Default: "", Description: "Database password"},
	{Key: DBSettingsSSLMode, Default: "disable", Description: "Postgres sslmode"},
	{Key: DBSettingsFilename, Default: "var/neonleaf.db", Description: "SQLite database filename"},

	// ---------------------------------------------------------------------
	// HTTP
	// ---------------------------------------------------------------------
	{Key: EnableMetrics, Default: true, Description: "Expose /metrics"},
	{Key: CookieSameSite, Default: "lax", Description: "SameSite attribute of the session cookie"},
	{Key: CookieSessionLifetime, Default: 10 * 24 * 60 * 60 * 1000, Description: "Session lifetime in milliseconds"},
}

func ApplyRegistryDefaults() {
	for _, c := range Registry {
		viper.SetDefault(c.Key, c.Default)
	}
}
