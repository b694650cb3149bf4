// Package logger builds the structured diagnostics logger. Diagnostics
// never go to stdout or stderr; without a sink they are discarded.
package logger

import (
	"io"
	"log/slog"
	"time"
)

type Config struct {
	Sink  io.Writer
	Debug bool
}

// New returns a JSON logger writing to cfg.Sink with UTC RFC3339Nano
// timestamps. Debug lowers the level and adds source locations.
func New(cfg Config) *slog.Logger {
	sink := cfg.Sink
	if sink == nil {
		sink = io.Discard
	}

	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	}
	if cfg.Debug {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}

	return slog.New(slog.NewJSONHandler(sink, opts))
}
