package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects the log level, handler format and an optional file sink.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // text or json
	File   string // rotated JSON log, empty to disable
}

// FromEnv reads SAR2_LOG_LEVEL, SAR2_LOG_FORMAT and SAR2_LOG_FILE.
func FromEnv() Options {
	return Options{
		Level:  os.Getenv("SAR2_LOG_LEVEL"),
		Format: os.Getenv("SAR2_LOG_FORMAT"),
		File:   os.Getenv("SAR2_LOG_FILE"),
	}
}

// New returns a logger configured with a text handler writing to STDERR.
// STDOUT is left to generated output.
func New() *slog.Logger {
	l, _ := NewWithOptions(os.Stderr, Options{})
	return l
}

// NewWithOptions builds a logger writing to w and, when opts.File is set,
// to a size-rotated JSON file as well. The returned func closes the file
// sink and must be called before exit.
func NewWithOptions(w io.Writer, opts Options) (*slog.Logger, func() error) {
	ho := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}
	var h slog.Handler
	if strings.EqualFold(opts.Format, "json") {
		h = slog.NewJSONHandler(w, ho)
	} else {
		h = slog.NewTextHandler(w, ho)
	}
	if opts.File != "" {
		sink := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			Compress:   true,
		}
		h = fanout{h, slog.NewJSONHandler(sink, ho)}
		return slog.New(h), sink.Close
	}
	return slog.New(h), func() error { return nil }
}

// ParseLevel maps a level name to slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}

type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, l slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, l) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range f {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}

type ctxKey struct{}

// NewContext returns a copy of ctx with the logger stored.
func NewContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves a logger from ctx or returns slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}
