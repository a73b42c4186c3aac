package utils

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func SetupLogger() *zap.SugaredLogger {
	logger := zap.Must(zap.NewDevelopment())
	return logger.Sugar()
}

// SetupLoggerWithLevel builds the development logger at the configured level.
// Unknown levels fall back to INFO.
func SetupLoggerWithLevel(level string, opts ...zap.Option) *zap.SugaredLogger {
	config := zap.NewDevelopmentConfig()
	parsed, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		parsed = zapcore.InfoLevel
	}
	config.Level = zap.NewAtomicLevelAt(parsed)
	return zap.Must(config.Build(opts...)).Sugar()
}
