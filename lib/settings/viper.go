package settings

import (
	"errors"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// ReadConfig resets viper and loads settings from jsonStr, or from settings.json
// (or the file named by NEONLEAF_SETTINGS_PATH) when jsonStr is empty. Missing
// files fall back to defaults; environment variables override both.
func ReadConfig(jsonStr string) (*Settings, error) {
	viper.Reset()
	viper.SetConfigType("json")
	if path := os.Getenv(SettingsPathEnv); path != "" && jsonStr == "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("settings")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	ApplyRegistryDefaults()

	if jsonStr != "" {
		if err := viper.ReadConfig(strings.NewReader(jsonStr)); err != nil {
			return nil, err
		}
	} else if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	dbTypeToUse, err := ParseDBType(viper.GetString(DBType))
	if err != nil {
		return nil, err
	}

	s := &Settings{
		Title: viper.GetString(Title),
		IP:    viper.GetString(IP),
		Port:  viper.GetString(Port),

		Gate: GateSettings{
			Enabled:  viper.GetBool(GateEnabled),
			Password: viper.GetString(GatePassword),
		},

		PageSize:          viper.GetInt(PageSize),
		ImportMaxFileSize: viper.GetInt64(ImportMaxFileSize),

		DBType: dbTypeToUse,
		DBSettings: &DBSettings{
			Host:     viper.GetString(DBSettingsHost),
			Port:     viper.GetString(DBSettingsPort),
			Database: viper.GetString(DBSettingsDatabase),
			User:     viper.GetString(DBSettingsUser),
			Password: viper.GetString(DBSettingsPassword),
			SSLMode:  viper.GetString(DBSettingsSSLMode),
			Filename: viper.GetString(DBSettingsFilename),
		},

		LogLevel:      viper.GetString(Loglevel),
		EnableMetrics: viper.GetBool(EnableMetrics),
		DevMode:       viper.GetBool(DevMode),

		Cookie: Cookie{
			SameSite:        viper.GetString(CookieSameSite),
			SessionLifetime: viper.GetInt64(CookieSessionLifetime),
		},
	}

	if err := s.Validate(validator.New(validator.WithRequiredStructEnabled())); err != nil {
		return nil, err
	}
	return s, nil
}

// InitSettings loads the settings into Displayed and exits on invalid configuration.
func InitSettings(logger *zap.SugaredLogger) *Settings {
	s, err := ReadConfig("")
	if err != nil {
		logger.Fatalf("error reading settings: %v", err)
	}
	Displayed = *s
	if used := viper.ConfigFileUsed(); used != "" {
		logger.Infof("Loaded settings from %s", used)
	}
	return &Displayed
}
