package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openLogger builds the process logger from cfg. Without a log file it
// writes text to stderr; with one it writes JSON lines to a rotated file.
// The returned Closer releases the file.
func openLogger(cfg LogConfig, stderr io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	if cfg.File == "" {
		return newLogger(stderr, level), nopCloser{}, nil
	}

	w := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    32, // MB
		MaxBackups: 3,
		MaxAge:     14,
		Compress:   true,
	}
	l := newLogger(w, level)
	l.SetFormatter(log.JSONFormatter)

	return l, w, nil
}
