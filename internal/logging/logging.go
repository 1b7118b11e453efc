// Package logging provides zerolog construction and context helpers used
// across the gridcap CLI. Loggers travel on the context so that library
// code never needs a package-level logger of its own.
package logging

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config controls how the root logger is built.
type Config struct {
	// Level is a zerolog level name ("debug", "info", ...). Unparseable
	// values fall back to info.
	Level string
	// Format selects "console" or "json" output.
	Format string
	// File, when non-empty, receives log output instead of stderr.
	File string
	// Caller adds file:line to every event.
	Caller bool
}

// Result holds the constructed logger plus file-handle bookkeeping.
type Result struct {
	Logger    zerolog.Logger
	UsingFile bool
	FilePath  string

	file *os.File
}

// Close releases the log file handle, if one was opened.
func (r *Result) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// New builds a logger from cfg. A file destination that cannot be opened
// degrades to stderr rather than failing the command.
func New(cfg Config) Result {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	var res Result
	var out io.Writer = os.Stderr
	if cfg.File != "" {
		f, openErr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if openErr == nil {
			out = f
			res.UsingFile = true
			res.FilePath = cfg.File
			res.file = f
		}
	}

	if cfg.Format != "json" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	logger := zerolog.New(out).Level(lvl).With().Timestamp()
	if cfg.Caller {
		logger = logger.Caller()
	}
	res.Logger = logger.Logger()
	return res
}

// ComponentLogger returns a child logger tagged with a component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// FromContext returns the logger stored on ctx, or a disabled default
// when none was attached.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}
