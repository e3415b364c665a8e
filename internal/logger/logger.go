package logger

import (
	"os"

	"go.uber.org/zap"
)

// New builds the process logger. APP_ENV=production selects the JSON
// production config, anything else the human-readable development config.
func New() (*zap.Logger, error) {
	if os.Getenv("APP_ENV") == "production" {
		return zap.NewProduction()
	}

	return zap.NewDevelopment()
}
