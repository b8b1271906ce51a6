// Package logging builds the structured slog.Logger every host-layer
// component logs through (Level/Format/Config shape over log/slog),
// kept as its own package since it's project-wide ambient infrastructure
// several packages depend on.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Level is the logging verbosity threshold.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Format is the slog handler's output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Config holds the logger's level, output format, and destination.
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
}

// DefaultConfig returns a logger config with sensible defaults: info
// level, text output to stderr (so stdout stays free for the report
// writer).
func DefaultConfig() Config {
	return Config{
		Level:  LevelInfo,
		Format: FormatText,
		Output: os.Stderr,
	}
}

// New builds a structured logger from cfg.
func New(cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	var handler slog.Handler
	switch cfg.Format {
	case FormatText:
		handler = slog.NewTextHandler(output, opts)
	case FormatJSON:
		handler = slog.NewJSONHandler(output, opts)
	default:
		handler = slog.NewTextHandler(output, opts)
	}
	return slog.New(handler)
}

func parseLevel(level Level) slog.Level {
	switch level {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetDefault installs logger as the package-level slog default.
func SetDefault(logger *slog.Logger) {
	slog.SetDefault(logger)
}
</content>
