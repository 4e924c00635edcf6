// Package logger is the diagnostic log of the contrast CLI. Reports are written
// to stdout by the reporters; this log goes to stderr.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Verbose bool      // Debug entries, otherwise warnings and errors only
	JSON    bool      // One JSON object per line instead of console output
	Writer  io.Writer // Defaults to stderr
}

// Logger records what an audit did. All methods are safe on a nil receiver,
// so a nil *Logger disables logging.
type Logger struct {
	zl zerolog.Logger
}

// New creates a Logger.
func New(opts Options) *Logger {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.WarnLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	output := writer
	if !opts.JSON {
		output = zerolog.ConsoleWriter{Out: writer, TimeFormat: time.Kitchen}
	}

	return &Logger{zl: zerolog.New(output).Level(level).With().Timestamp().Logger()}
}

// File returns a logger whose entries name the CSS file being processed.
func (l *Logger) File(path string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{zl: l.zl.With().Str("file", path).Logger()}
}

// Debug logs a step of the audit. kv holds alternating keys and values:
//
//	log.Debug("resolved tokens", "tokens", 12, "colors", 11)
func (l *Logger) Debug(msg string, kv ...any) {
	if l == nil {
		return
	}
	l.zl.Debug().Fields(kv).Msg(msg)
}

// Warn logs input that was accepted with a fallback.
func (l *Logger) Warn(msg string, kv ...any) {
	if l == nil {
		return
	}
	l.zl.Warn().Fields(kv).Msg(msg)
}

// Error logs a failure the audit skipped past.
func (l *Logger) Error(err error, msg string, kv ...any) {
	if l == nil {
		return
	}
	l.zl.Error().Err(err).Fields(kv).Msg(msg)
}
