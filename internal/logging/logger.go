// AgroPredict - Crop Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/agropredict

package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration.
type Config struct {
	// Level is the minimum level: trace, debug, info, warn, error, fatal, panic or disabled.
	Level string

	// Format is json (default) or console.
	Format string

	// Caller adds file:line to each entry.
	Caller    bool
	Timestamp bool

	// Output defaults to os.Stderr.
	Output io.Writer
}

var (
	log zerolog.Logger
	mu  sync.RWMutex
)

//nolint:gochecknoinits // logging must work before main calls Init
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
	Init(Config{Timestamp: true})
}

// Init configures the global logger. The server calls it once at startup and
// agroctl once per command.
func Init(cfg Config) {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	c := zerolog.New(out).With()
	if cfg.Timestamp {
		c = c.Timestamp()
	}
	if cfg.Caller {
		c = c.Caller()
	}

	mu.Lock()
	defer mu.Unlock()
	zerolog.SetGlobalLevel(parseLevel(cfg.Level))
	log = c.Logger()
}

// parseLevel maps a configured level name to zerolog, falling back to info.
func parseLevel(level string) zerolog.Level {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "warning" {
		level = "warn"
	}
	l, err := zerolog.ParseLevel(level)
	if err != nil || l == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return l
}

// Logger returns a copy of the global logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// WithComponent returns a child logger tagged with a component name.
func WithComponent(name string) zerolog.Logger {
	return Logger().With().Str("component", name).Logger()
}

// Debug starts a debug-level message.
func Debug() *zerolog.Event {
	l := Logger()
	return l.Debug()
}

// Info starts an info-level message.
//
//	logging.Info().Str("model", "tensorflow").Msg("Model bundle loaded")
func Info() *zerolog.Event {
	l := Logger()
	return l.Info()
}

// Warn starts a warn-level message.
func Warn() *zerolog.Event {
	l := Logger()
	return l.Warn()
}

// Error starts an error-level message.
func Error() *zerolog.Event {
	l := Logger()
	return l.Error()
}

// Fatal exits the process with status 1 once the message is written.
func Fatal() *zerolog.Event {
	l := Logger()
	return l.Fatal()
}

// GetLevel returns the current global log level.
func GetLevel() zerolog.Level {
	return zerolog.GlobalLevel()
}

// SetLevelString changes the global level on config hot-reload.
func SetLevelString(level string) {
	zerolog.SetGlobalLevel(parseLevel(level))
}
