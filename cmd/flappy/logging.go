package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// openLog returns a logger appending to path and a func closing the file.
// The play screen owns the terminal, so a game never logs to stderr.
// Without a usable path logs are discarded.
func openLog(path string, level log.Level) (*log.Logger, func()) {
	discard := func() (*log.Logger, func()) {
		return log.New(io.Discard), func() {}
	}
	if path == "" {
		return discard()
	}
	if path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return discard()
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return discard()
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           level,
	})
	return logger, func() { f.Close() }
}
