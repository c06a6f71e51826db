// Package logger builds the server's slog logger. Records are written as
//
//	2006-01-02T15:04:05.000Z [LEVEL] message | key=value, key2=value2
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/youruser/playercard/internal/util"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	LevelTrace slog.Level = -8
	LevelFail  slog.Level = 12
)

func levelName(l slog.Level) string {
	switch {
	case l <= LevelTrace:
		return "TRACE"
	case l <= slog.LevelDebug:
		return "DEBUG"
	case l <= slog.LevelInfo:
		return "INFO"
	case l <= slog.LevelWarn:
		return "WARN"
	case l <= slog.LevelError:
		return "ERROR"
	default:
		return "FAIL"
	}
}

// ParseLevel converts a config level name. Unknown names map to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "fail":
		return LevelFail
	default:
		return slog.LevelInfo
	}
}

// Handler writes one line per record.
type Handler struct {
	w     io.Writer
	mu    *sync.Mutex
	level slog.Level
	attrs []slog.Attr
	group string
}

func NewHandler(w io.Writer, level slog.Level) *Handler {
	return &Handler{w: w, level: level, mu: &sync.Mutex{}}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var buf strings.Builder
	buf.WriteString(r.Time.UTC().Format("2006-01-02T15:04:05.000Z"))
	buf.WriteString(" [")
	buf.WriteString(levelName(r.Level))
	buf.WriteString("] ")
	buf.WriteString(r.Message)

	n := 0
	write := func(a slog.Attr) {
		if n == 0 {
			buf.WriteString(" | ")
		} else {
			buf.WriteString(", ")
		}
		n++
		if h.group != "" {
			buf.WriteString(h.group)
			buf.WriteString(".")
		}
		buf.WriteString(a.Key)
		buf.WriteString("=")
		buf.WriteString(a.Value.String())
	}
	for _, a := range h.attrs {
		write(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		write(a)
		return true
	})
	buf.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, buf.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &Handler{w: h.w, mu: h.mu, level: h.level, attrs: merged, group: h.group}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	g := name
	if h.group != "" {
		g = h.group + "." + name
	}
	return &Handler{w: h.w, mu: h.mu, level: h.level, attrs: h.attrs, group: g}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger writing to a rotating file at path, or to stderr when
// path is empty. Close the returned io.Closer on shutdown.
func New(path string, level slog.Level, maxSizeMB int) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return slog.New(NewHandler(os.Stderr, level)), nopCloser{}, nil
	}
	if err := util.EnsureParentDir(path); err != nil {
		return nil, nil, err
	}
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: 3,
		MaxAge:     28,
	}
	return slog.New(NewHandler(lj, level)), lj, nil
}

// Trace logs at LevelTrace.
func Trace(l *slog.Logger, msg string, args ...any) {
	l.Log(context.Background(), LevelTrace, msg, args...)
}

// Fail logs at LevelFail.
func Fail(l *slog.Logger, msg string, args ...any) {
	l.Log(context.Background(), LevelFail, msg, args...)
}
