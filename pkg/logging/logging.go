// Package logging builds the logrus loggers used by the CLI and the terminal
// UI. Commands log to stderr; the UI owns the terminal and logs to a rotating
// file instead.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSizeMB  = 1
	maxBackups = 3
)

// New returns a text logger writing to w at the given level. An empty level
// means info.
func New(level string, w io.Writer) (*log.Logger, error) {
	if level == "" {
		level = "info"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	if w == nil {
		w = os.Stderr
	}
	logger := log.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)
	logger.SetFormatter(&log.TextFormatter{
		DisableColors:    true,
		FullTimestamp:    true,
		QuoteEmptyFields: true,
	})
	return logger, nil
}

// Rotating opens a size-rotated log file, creating its directory.
func Rotating(path string) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logging: ensure log directory: %w", err)
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
	}, nil
}
