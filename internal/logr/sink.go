package logr

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-logr/logr"
)

var _ logr.LogSink = (*logSink)(nil)

// logSink adapts a slog handler to a logr sink, mapping v-levels onto slog
// levels below info.
type logSink struct {
	handler slog.Handler
}

func newLogSink(h slog.Handler) logr.LogSink {
	return &logSink{handler: h}
}

func (s *logSink) Init(logr.RuntimeInfo) {}

func (s *logSink) Enabled(level int) bool {
	return s.handler.Enabled(context.Background(), toSlogLevel(level))
}

func (s *logSink) Info(level int, msg string, keysAndValues ...any) {
	s.log(toSlogLevel(level), msg, keysAndValues)
}

func (s *logSink) Error(err error, msg string, keysAndValues ...any) {
	s.log(slog.LevelError, msg, append([]any{"error", err}, keysAndValues...))
}

func (s *logSink) WithValues(keysAndValues ...any) logr.LogSink {
	return &logSink{handler: s.handler.WithAttrs(toAttrs(keysAndValues))}
}

func (s *logSink) WithName(name string) logr.LogSink {
	return &logSink{handler: s.handler.WithAttrs([]slog.Attr{slog.String("logger", name)})}
}

func (s *logSink) log(level slog.Level, msg string, keysAndValues []any) {
	r := slog.NewRecord(time.Now(), level, msg, 0)
	r.Add(keysAndValues...)
	_ = s.handler.Handle(context.Background(), r)
}

func toAttrs(keysAndValues []any) []slog.Attr {
	r := slog.NewRecord(time.Time{}, 0, "", 0)
	r.Add(keysAndValues...)
	attrs := make([]slog.Attr, 0, r.NumAttrs())
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, a)
		return true
	})
	return attrs
}

// levelHandler wraps a handler, raising its minimum level.
type levelHandler struct {
	level   slog.Leveler
	handler slog.Handler
}

// NewLevelHandler returns a handler that only passes records at or above
// level to h.
func NewLevelHandler(level slog.Leveler, h slog.Handler) slog.Handler {
	if lh, ok := h.(*levelHandler); ok {
		h = lh.handler
	}
	return &levelHandler{level: level, handler: h}
}

func (h *levelHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *levelHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.handler.Handle(ctx, r)
}

func (h *levelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return NewLevelHandler(h.level, h.handler.WithAttrs(attrs))
}

func (h *levelHandler) WithGroup(name string) slog.Handler {
	return NewLevelHandler(h.level, h.handler.WithGroup(name))
}
