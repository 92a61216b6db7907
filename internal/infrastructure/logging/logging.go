package logging

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

type options struct {
	stdout bool
}

type Option func(*options)

// WithStdout controls whether records are written to stdout. It is on by
// default.
func WithStdout(on bool) Option {
	return func(o *options) { o.stdout = on }
}

// New returns a JSON logger on stdout. When file is set, output is also
// written to a size-rotated log file.
func New(level slog.Level, file string, opts ...Option) *slog.Logger {
	o := options{stdout: true}
	for _, opt := range opts {
		opt(&o)
	}

	var writers []io.Writer
	if o.stdout {
		writers = append(writers, os.Stdout)
	}
	if file != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   file,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     30, // days
			Compress:   true,
		})
	}

	var w io.Writer
	switch len(writers) {
	case 0:
		w = io.Discard
	case 1:
		w = writers[0]
	default:
		w = io.MultiWriter(writers...)
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
