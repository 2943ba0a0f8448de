package logger

import (
	"io"
	"log/slog"
	"os"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Type selects the slog handler used to format records.
type Type int

const (
	TypeText Type = iota
	TypeJSON
)

type Options struct {
	Buffer io.Writer
	Level  Level
	Type   Type
}

var (
	DefaultLogger = New(Options{os.Stdout, DefaultLevel, TypeText})

	// Nop drops every record. Useful for tests and for embedding the
	// renderer where stdout belongs to the display.
	Nop = New(Options{Buffer: io.Discard, Level: ErrorLevel})
)

type logger struct {
	buffer io.Writer
	*slog.Logger
}

func New(opts Options) Logger {
	if opts.Buffer == nil {
		opts.Buffer = os.Stderr
	}
	var handler slog.Handler
	switch opts.Type {
	case TypeJSON:
		handler = slog.NewJSONHandler(opts.Buffer, &slog.HandlerOptions{
			Level: levels[opts.Level],
		})
	case TypeText:
		fallthrough
	default:
		handler = slog.NewTextHandler(opts.Buffer, &slog.HandlerOptions{
			Level: levels[opts.Level],
		})
	}
	return &logger{
		buffer: opts.Buffer,
		Logger: slog.New(handler),
	}
}

// With returns a Logger that adds args to every record. Loggers that were
// not built by New are returned unchanged.
func With(l Logger, args ...any) Logger {
	inner, ok := l.(*logger)
	if !ok {
		return l
	}
	return &logger{
		buffer: inner.buffer,
		Logger: inner.Logger.With(args...),
	}
}
