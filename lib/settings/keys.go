package settings

const (
	Title = "title"
	IP    = "ip"
	Port  = "port"

	GateEnabled  = "gate.enabled"
	GatePassword = "gate.password"

	PageSize          = "pageSize"
	ImportMaxFileSize = "importMaxFileSize"

	DBType             = "dbType"
	DBSettingsHost     = "dbSettings.host"
	DBSettingsPort     = "dbSettings.port"
	DBSettingsDatabase = "dbSettings.database"
	DBSettingsUser     = "dbSettings.user"
	DBSettingsPassword = "dbSettings.password"
	DBSettingsSSLMode  = "dbSettings.sslmode"
	DBSettingsFilename = "dbSettings.filename"

	Loglevel      = "loglevel"
	EnableMetrics = "enableMetrics"
	DevMode       = "devMode"

	CookieSameSite        = "cookie.sameSite"
	CookieSessionLifetime = "cookie.sessionLifetime"
)

// SettingsPathEnv points ReadConfig at a settings file outside the working directory.
const SettingsPathEnv = "NEONLEAF_SETTINGS_PATH"
