package config

import (
	"errors"
	"os"

	"fjacquet/quicklog/internal/logging"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from a .env file in the working directory, if any.
// Variables already set in the environment win.
func LoadEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// LoadEnvOrWarn calls LoadEnv and reports a failure on logger instead of
// returning it; the process keeps running with its current environment.
func LoadEnvOrWarn(logger logging.Logger) {
	if err := LoadEnv(); err != nil {
		logger.WithError(err).Warn("Could not load .env file, continuing with the environment as is")
	}
}

// NewLogger builds the application logger from the log section.
func NewLogger(config *Config) logging.Logger {
	return logging.NewLogrusAdapter(config.Log.Level, config.Log.Format)
}
