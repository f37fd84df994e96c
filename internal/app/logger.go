package app

import (
	"os"

	"github.com/sirupsen/logrus"

	"drivelog/internal/config"
)

// NewLogger creates the JSON logger shared by the server and tools.
func NewLogger(cfg config.LogConfig) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
