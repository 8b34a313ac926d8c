package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// The shell owns stdout and stderr, so structured logs go to a file. With no
// file configured the logger discards everything.

var (
	mu     sync.RWMutex
	global = slog.New(slog.NewJSONHandler(io.Discard, nil))
)

// Setup routes the package logger to the given file. It returns a cleanup
// function closing the file; with an empty path it leaves the discard
// handler in place.
func Setup(path string, debug bool) (func() error, error) {
	if path == "" {
		return func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, err
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	mu.Lock()
	global = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	mu.Unlock()

	cleanup := func() error {
		mu.Lock()
		global = slog.New(slog.NewJSONHandler(io.Discard, nil))
		mu.Unlock()
		return f.Close()
	}
	return cleanup, nil
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}
