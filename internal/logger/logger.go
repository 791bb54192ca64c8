// Package logger owns the process-wide structured logger.
//
// Logs go to stderr so stdout stays reserved for the plan.
package logger

import (
	"io"
	"log/slog"
	"sync"
)

// Config controls logger construction.
type Config struct {
	Output io.Writer
	Debug  bool
	JSON   bool
}

var (
	mu     sync.RWMutex
	global = slog.New(slog.DiscardHandler)
)

// New builds a logger for cfg without installing it.
func New(cfg Config) *slog.Logger {
	if cfg.Output == nil {
		return slog.New(slog.DiscardHandler)
	}

	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if cfg.Debug {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}

	if cfg.JSON {
		return slog.New(slog.NewJSONHandler(cfg.Output, opts))
	}

	return slog.New(slog.NewTextHandler(cfg.Output, opts))
}

// Setup installs a logger built from cfg as the process logger.
func Setup(cfg Config) *slog.Logger {
	l := New(cfg)

	mu.Lock()
	global = l
	mu.Unlock()

	return l
}

// L returns the process logger. It discards everything until Setup runs.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()

	return global
}
