package settings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

type GateSettings struct {
	Enabled  bool
	Password string `validate:"required_if=Enabled true"`
}

type DBSettings struct {
	Host     string
	Port     string
	Database string
	User     string
	Password string
	SSLMode  string
	Filename string
}

type Cookie struct {
	SameSite string `validate:"oneof=lax strict none Lax Strict None"`
	// SessionLifetime in milliseconds.
	SessionLifetime int64 `validate:"gte=0"`
}

type Settings struct {
	Title string
	IP    string
	Port  string `validate:"required,numeric"`

	Gate GateSettings

	PageSize          int   `validate:"gte=1"`
	ImportMaxFileSize int64 `validate:"gte=0"`

	DBType     IDBType `validate:"oneof=memory sqlite postgres"`
	DBSettings *DBSettings

	LogLevel      string
	EnableMetrics bool
	DevMode       bool

	Cookie Cookie
}

var Displayed Settings

func (s *Settings) Address() string {
	return s.IP + ":" + s.Port
}

func (s *Settings) SessionLifetime() time.Duration {
	return time.Duration(s.Cookie.SessionLifetime) * time.Millisecond
}

// PostgresPort parses the configured port, defaulting to 5432.
func (s *DBSettings) PostgresPort() (int, error) {
	if s.Port == "" {
		return 5432, nil
	}
	port, err := strconv.Atoi(s.Port)
	if err != nil {
		return 0, fmt.Errorf("invalid database port %q: %w", s.Port, err)
	}
	return port, nil
}

func (s *Settings) Validate(validatorEvaluator *validator.Validate) error {
	return validatorEvaluator.Struct(s)
}
