package config

import (
	"os"

	"go.uber.org/zap"
)

// NewLogger builds the process logger. Development gets the human-readable
// console encoder, everything else the production JSON encoder.
func NewLogger() *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if os.Getenv("APP_ENV") == "development" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
