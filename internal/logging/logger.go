// Package logging configures the process-wide logrus logger. The terminal
// belongs to the TUI, so output goes to a file or nowhere.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// Config controls the log sink.
type Config struct {
	// Level is the minimum level ("debug", "info", "warn", "error").
	Level string
	// Format is "text" (default) or "json".
	Format string
	// File is the log file path. Empty disables logging.
	File string
}

var (
	base    = newDiscardLogger()
	baseMu  sync.Mutex
	loggers = make(map[string]*logrus.Entry)
)

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Setup configures the shared logger. The returned closer releases the log
// file; it is never nil. When the file cannot be opened, logging is disabled
// and the error is returned so the caller can warn before the TUI starts.
func Setup(cfg Config) (io.Closer, error) {
	baseMu.Lock()
	defer baseMu.Unlock()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	base.SetLevel(level)

	switch cfg.Format {
	case "json":
		base.SetFormatter(&logrus.JSONFormatter{})
	default:
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	}

	if cfg.File == "" {
		base.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}

	path := expandPath(cfg.File)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		base.SetOutput(io.Discard)
		return io.NopCloser(nil), err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		base.SetOutput(io.Discard)
		return io.NopCloser(nil), err
	}
	base.SetOutput(f)
	return f, nil
}

// NewLogger returns the logger for a component, tagged with its name.
func NewLogger(component string) *logrus.Entry {
	baseMu.Lock()
	defer baseMu.Unlock()

	if entry, ok := loggers[component]; ok {
		return entry
	}
	entry := base.WithField("component", component)
	loggers[component] = entry
	return entry
}

// expandPath expands a leading tilde.
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
