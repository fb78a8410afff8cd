package config

import (
	"os"

	"go.uber.org/zap"
)

// Logger is the process-wide logger. It is a no-op until InitLogger runs.
var Logger = zap.NewNop()

// InitLogger builds the process logger: JSON in production, console otherwise.
func InitLogger() *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)
	if os.Getenv("APP_ENV") == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("❌ failed to build logger: " + err.Error())
	}
	Logger = l
	return l
}
