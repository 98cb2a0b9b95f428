// Package logging builds the zerolog logger used by the reader.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// New returns a logger that writes JSON lines to file.
//
// The terminal belongs to the TUI, so an empty file yields a disabled logger rather
// than one writing to stdout. The level parameter can be one of: trace, debug, info,
// warn, error, fatal, panic.
func New(level string, file string) (zerolog.Logger, func(), error) {
	closer := func() {}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), closer, fmt.Errorf("parse log level: %w", err)
	}

	if file == "" {
		return zerolog.Nop(), closer, nil
	}

	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return zerolog.Nop(), closer, fmt.Errorf("create logs dir: %w", err)
	}
	osFile, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), closer, fmt.Errorf("open log file: %w", err)
	}
	closer = func() { _ = osFile.Close() }

	l := zerolog.New(osFile).
		With().
		Timestamp().
		Logger().
		Level(lvl)

	return l, closer, nil
}
