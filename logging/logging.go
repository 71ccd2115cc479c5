// SPDX-License-Identifier: MIT
// Package: latgen/logging

// Package logging builds the logrus logger used by the latgen command.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/katalvlaran/latgen/config"
)

// Setup returns a logger configured from cfg and a function that releases
// its output. Logs go to stderr, or to a rotated file when cfg.File is set.
// An unknown level falls back to info with a warning.
func Setup(cfg config.Log) (*logrus.Logger, func() error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetOutput(os.Stderr)

	closer := func() error { return nil }
	if cfg.File != "" {
		// lumberjack creates missing parent directories on first write.
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}
		logger.SetOutput(lj)
		closer = lj.Close
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", cfg.Level)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger, closer
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
