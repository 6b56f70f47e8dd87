package core

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// InitLogger builds the application logger from config. When toFile is true
// (the TUI is about to own the terminal) logs go to the configured file only;
// otherwise they go to a console writer on stderr.
func InitLogger(cfg *Config, toFile bool) (zerolog.Logger, func(), error) {
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	cleanup := func() {}
	var out io.Writer

	if toFile {
		path := cfg.LogFile
		if path == "" {
			path = filepath.Join(os.TempDir(), "notewatch.log")
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return zerolog.Nop(), cleanup, fmt.Errorf("creating log dir: %w", err)
		}
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return zerolog.Nop(), cleanup, fmt.Errorf("opening log file %s: %w", path, err)
		}
		out = f
		cleanup = func() { f.Close() }
	} else {
		out = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
	}

	logger := zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	return logger, cleanup, nil
}
