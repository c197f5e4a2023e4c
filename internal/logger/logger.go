// Package logger configures the application-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the shared logger instance. Packages log through this rather than
// configuring their own outputs.
var Logger = log.Logger

// Config controls log level and output format.
type Config struct {
	Level  string `json:"level,omitempty"`  // debug, info, warn, error
	Format string `json:"format,omitempty"` // "json" (default) or "pretty"
}

// Init applies the configuration to the shared logger. Unknown levels fall
// back to info.
func Init(cfg Config) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var output io.Writer = os.Stderr
	if cfg.Format == "pretty" {
		output = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}

	Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
	log.Logger = Logger
}

// Debug starts a debug-level event on the shared logger.
func Debug() *zerolog.Event {
	return Logger.Debug()
}

// Info starts an info-level event on the shared logger.
func Info() *zerolog.Event {
	return Logger.Info()
}

// Warn starts a warn-level event on the shared logger.
func Warn() *zerolog.Event {
	return Logger.Warn()
}

// Error starts an error-level event on the shared logger.
func Error() *zerolog.Event {
	return Logger.Error()
}
